package medication

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/attachment"
	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/cache"
	"github.com/kdirani/farms/internal/infrastructure/persistence"
	"github.com/kdirani/farms/internal/infrastructure/storage"
	"github.com/kdirani/farms/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *ledger.ExpenseService) {
	db := testutil.NewSQLiteDB(t, persistence.AutoMigrate)
	scope := persistence.NewGormTransactionScope(db)
	pages := cache.NewMemoryPageCache()
	attachments := persistence.NewGormAttachmentRepository(db)
	files := attachment.NewService(attachments, attachments, storage.NewMemoryBlobStore(""), pages, 0)
	svc := NewService(scope, persistence.NewGormMedicationRepository(db), files, pages)
	return svc, ledger.NewExpenseService(scope, persistence.NewGormExpenseRepository(db), pages)
}

func TestService_Lifecycle(t *testing.T) {
	svc, expenses := newService(t)
	ctx := context.Background()
	warehouseID := uuid.New()
	day := 3

	created, err := svc.Create(ctx, CreateRequest{
		InvoiceNumber:   "MC-1",
		WarehouseID:     warehouseID,
		ConsumptionDate: "2024-06-10",
		Items: []ItemRequest{{
			MedicineID:         uuid.New(),
			AdministrationDay:  &day,
			AdministrationDate: "2024-06-12",
			Quantity:           decimal.NewFromInt(3),
			Price:              decimal.RequireFromString("12.5"),
		}},
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("37.5").Equal(created.TotalValue))
	require.Len(t, created.Items, 1)
	assert.Equal(t, "2024-06-12", created.Items[0].AdministrationDate)

	change, err := expenses.Add(ctx, document.KindMedicineConsumption, created.ID, ledger.ExpenseInput{
		ExpenseTypeID: uuid.New(),
		Amount:        decimal.RequireFromString("2.5"),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(change.TotalValue))

	added, err := svc.AddItem(ctx, created.ID, ItemRequest{MedicineID: uuid.New(), Quantity: decimal.NewFromInt(1), Value: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(added.TotalValue))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
	assert.Len(t, got.Expenses, 1)
	assert.True(t, decimal.NewFromInt(50).Equal(got.TotalValue))

	list, err := svc.List(ctx, &warehouseID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.DeleteItem(ctx, uuid.New(), added.ID)
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err), "item of another record")

	removed, err := svc.DeleteItem(ctx, created.ID, added.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(removed.TotalValue))

	_, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	_, err = svc.Get(ctx, created.ID)
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err))
}

func TestService_CreateRejectsMissingMedicine(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Create(context.Background(), CreateRequest{
		InvoiceNumber:   "MC-2",
		WarehouseID:     uuid.New(),
		ConsumptionDate: "2024-06-10",
		Items:           []ItemRequest{{Quantity: decimal.NewFromInt(1)}},
	})
	assert.Equal(t, "INVALID_INPUT", shared.ErrorCode(err))
}
