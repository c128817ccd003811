//go:build integration

package persistence

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/domain/catalog"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concurrent expense lines on one invoice must all land in total_value.
// Without the parent row lock two writers could each sum a stale set of
// lines and the last write would drop the other's amount.
func TestExpenseService_ConcurrentAdds_Postgres(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	ctx := context.Background()
	s := seedFarm(t, db)

	et, err := catalog.NewExpenseType("Transport")
	require.NoError(t, err)
	require.NoError(t, NewGormExpenseTypeRepository(db).Save(ctx, et))

	inv := newTestInvoice(t, s, "B-1", time.Now())
	inv.Expenses = nil
	inv.RecalculateTotal()
	require.NoError(t, NewGormInvoiceRepository(db).Create(ctx, inv))

	svc := ledger.NewExpenseService(NewGormTransactionScope(db), NewGormExpenseRepository(db), nil)

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Add(ctx, document.KindInvoice, inv.ID, ledger.ExpenseInput{
				ExpenseTypeID: et.ID,
				Amount:        dec("1.5"),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := NewGormInvoiceRepository(db).FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Len(t, got.Expenses, writers)
	// 10 * 2.5 from the item plus 20 * 1.5
	assert.True(t, dec("55").Equal(got.TotalValue), got.TotalValue.String())
}
