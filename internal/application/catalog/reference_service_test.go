package catalog

import (
	"context"
	"testing"

	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/cache"
	"github.com/kdirani/farms/internal/infrastructure/persistence"
	"github.com/kdirani/farms/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReferenceService(t *testing.T) (*ReferenceService, *cache.MemoryPageCache) {
	db := testutil.NewSQLiteDB(t, persistence.AutoMigrate)
	pages := cache.NewMemoryPageCache()
	svc := NewReferenceService(
		persistence.NewGormMedicineRepository(db),
		persistence.NewGormExpenseTypeRepository(db),
		pages,
	)
	return svc, pages
}

func TestReferenceService_Medicines(t *testing.T) {
	svc, pages := newReferenceService(t)
	ctx := context.Background()
	require.NoError(t, pages.Set(ctx, cache.PageKey(PageMedicines, ""), []byte("stale"), 0))

	day := 7
	created, err := svc.CreateMedicine(ctx, CreateMedicineRequest{Name: "Amoxicillin", DayOfAdministration: &day})
	require.NoError(t, err)
	_, err = svc.CreateMedicine(ctx, CreateMedicineRequest{Name: "Vitamin AD3E"})
	require.NoError(t, err)

	_, found, err := pages.Get(ctx, cache.PageKey(PageMedicines, ""))
	require.NoError(t, err)
	assert.False(t, found, "medicine page should be invalidated")

	list, err := svc.ListMedicines(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Amoxicillin", list[0].Name)
	assert.Equal(t, 7, *list[0].DayOfAdministration)

	_, err = svc.DeleteMedicine(ctx, created.ID)
	require.NoError(t, err)
	_, err = svc.DeleteMedicine(ctx, created.ID)
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err))
}

func TestReferenceService_DuplicateExpenseType(t *testing.T) {
	svc, _ := newReferenceService(t)
	ctx := context.Background()

	_, err := svc.CreateExpenseType(ctx, CreateExpenseTypeRequest{Name: "Transport"})
	require.NoError(t, err)
	_, err = svc.CreateExpenseType(ctx, CreateExpenseTypeRequest{Name: "Transport"})

	require.Error(t, err)
	assert.Equal(t, "CONFLICT", shared.ErrorCode(err))
}

func TestReferenceService_NegativeDay(t *testing.T) {
	svc, _ := newReferenceService(t)
	day := -1

	_, err := svc.CreateMedicine(context.Background(), CreateMedicineRequest{Name: "X", DayOfAdministration: &day})

	assert.Equal(t, "INVALID_INPUT", shared.ErrorCode(err))
}
