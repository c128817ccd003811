package invoice

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/attachment"
	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/farm"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/cache"
	"github.com/kdirani/farms/internal/infrastructure/persistence"
	"github.com/kdirani/farms/internal/infrastructure/storage"
	"github.com/kdirani/farms/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc         *Service
	expenses    *ledger.ExpenseService
	files       *attachment.Service
	blobs       *storage.MemoryBlobStore
	pages       *cache.MemoryPageCache
	warehouseID uuid.UUID
	batchID     uuid.UUID
	feedTypeID  uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewSQLiteDB(t, persistence.AutoMigrate)
	ctx := context.Background()

	f, err := farm.NewFarm("North Farm", "Hama")
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormFarmRepository(db).Save(ctx, f))
	w, err := farm.NewWarehouse(f.ID, "Main Store")
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormWarehouseRepository(db).Save(ctx, w))
	batch, err := farm.NewPoultryStatus(f.ID, "Batch 12", 5000, 0)
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormPoultryStatusRepository(db).Save(ctx, batch))

	scope := persistence.NewGormTransactionScope(db)
	pages := cache.NewMemoryPageCache()
	blobs := storage.NewMemoryBlobStore("")
	attachments := persistence.NewGormAttachmentRepository(db)
	files := attachment.NewService(attachments, attachments, blobs, pages, 0)

	return &fixture{
		svc:         NewService(scope, persistence.NewGormInvoiceRepository(db), files, pages),
		expenses:    ledger.NewExpenseService(scope, persistence.NewGormExpenseRepository(db), pages),
		files:       files,
		blobs:       blobs,
		pages:       pages,
		warehouseID: w.ID,
		batchID:     batch.ID,
		feedTypeID:  uuid.New(),
	}
}

func (f *fixture) header(t string, number string) HeaderRequest {
	return HeaderRequest{
		InvoiceType:     t,
		InvoiceNumber:   number,
		InvoiceDate:     "2024-03-15",
		InvoiceTime:     "09:30",
		WarehouseID:     f.warehouseID,
		PoultryStatusID: &f.batchID,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("total covers items and expenses", func(t *testing.T) {
		f := newFixture(t)
		resp, err := f.svc.Create(ctx, CreateInvoiceRequest{
			HeaderRequest: f.header("buy", "B-001"),
			Items: []ItemRequest{
				{Quantity: dec("10"), Price: dec("2.5")},
				{Quantity: dec("1"), Price: dec("30"), Value: dec("40")},
			},
			Expenses: []ledger.ExpenseInput{
				{ExpenseTypeID: f.feedTypeID, Amount: dec("5"), AccountName: "cash"},
			},
		})
		require.NoError(t, err)

		assert.True(t, dec("70").Equal(resp.TotalValue), "got %s", resp.TotalValue)
		require.Len(t, resp.Items, 2)
		assert.True(t, dec("25").Equal(resp.Items[0].Value))
		assert.True(t, dec("40").Equal(resp.Items[1].Value))
		assert.Equal(t, "2024-03-15", resp.InvoiceDate)

		stored, err := f.svc.Get(ctx, resp.ID)
		require.NoError(t, err)
		assert.True(t, dec("70").Equal(stored.TotalValue))
		assert.Len(t, stored.Expenses, 1)
	})

	t.Run("number is unique per type", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, CreateInvoiceRequest{HeaderRequest: f.header("sell", "S-7")})
		require.NoError(t, err)

		_, err = f.svc.Create(ctx, CreateInvoiceRequest{HeaderRequest: f.header("sell", "S-7")})
		assert.Equal(t, "CONFLICT", shared.ErrorCode(err))

		_, err = f.svc.Create(ctx, CreateInvoiceRequest{HeaderRequest: f.header("buy", "S-7")})
		assert.NoError(t, err)
	})

	t.Run("negative quantity stores nothing", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, CreateInvoiceRequest{
			HeaderRequest: f.header("buy", "B-2"),
			Items:         []ItemRequest{{Quantity: dec("-1"), Price: dec("3")}},
		})
		assert.Equal(t, "INVALID_INPUT", shared.ErrorCode(err))

		list, err := f.svc.List(ctx, ListInvoicesRequest{})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("bad date", func(t *testing.T) {
		f := newFixture(t)
		h := f.header("buy", "B-3")
		h.InvoiceDate = "15/03/2024"
		_, err := f.svc.Create(ctx, CreateInvoiceRequest{HeaderRequest: h})
		assert.Equal(t, "INVALID_INPUT", shared.ErrorCode(err))
	})
}

func TestService_GetEnriched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.svc.Create(ctx, CreateInvoiceRequest{HeaderRequest: f.header("sell", "S-100")})
	require.NoError(t, err)

	resp, err := f.svc.GetEnriched(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Main Store", resp.WarehouseName)
	assert.Equal(t, "North Farm", resp.FarmName)
	assert.Equal(t, "Batch 12", resp.PoultryBatchName)

	_, err = f.svc.GetEnriched(ctx, uuid.New())
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err))
}

func TestService_LinesRecomputeTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv, err := f.svc.Create(ctx, CreateInvoiceRequest{
		HeaderRequest: f.header("buy", "B-50"),
		Items:         []ItemRequest{{Quantity: dec("4"), Price: dec("10")}},
	})
	require.NoError(t, err)

	detailKey := cache.PageKey("/invoices/"+inv.ID.String(), "")
	require.NoError(t, f.pages.Set(ctx, detailKey, []byte("cached"), 0))

	added, err := f.svc.AddItem(ctx, inv.ID, ItemRequest{Quantity: dec("2"), Price: dec("7.25")})
	require.NoError(t, err)
	assert.True(t, dec("54.5").Equal(added.TotalValue), "got %s", added.TotalValue)

	_, found, err := f.pages.Get(ctx, detailKey)
	require.NoError(t, err)
	assert.False(t, found)

	exp, err := f.expenses.Add(ctx, document.KindInvoice, inv.ID, ledger.ExpenseInput{
		ExpenseTypeID: f.feedTypeID,
		Amount:        dec("12"),
	})
	require.NoError(t, err)
	assert.True(t, dec("66.5").Equal(exp.TotalValue))

	other, err := f.svc.Create(ctx, CreateInvoiceRequest{HeaderRequest: f.header("buy", "B-51")})
	require.NoError(t, err)
	_, err = f.svc.DeleteItem(ctx, other.ID, added.ID)
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err), "item of another invoice")
	_, err = f.expenses.Delete(ctx, document.KindInvoice, other.ID, exp.ID)
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err), "expense of another invoice")
	unchanged, err := f.svc.Get(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, dec("66.5").Equal(unchanged.TotalValue))

	removed, err := f.svc.DeleteItem(ctx, inv.ID, added.ID)
	require.NoError(t, err)
	assert.True(t, dec("52").Equal(removed.TotalValue))

	afterExpense, err := f.expenses.Delete(ctx, document.KindInvoice, inv.ID, exp.ID)
	require.NoError(t, err)
	assert.True(t, dec("40").Equal(afterExpense.TotalValue))

	_, err = f.svc.AddItem(ctx, uuid.New(), ItemRequest{Quantity: dec("1"), Price: dec("1")})
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err))
}

func TestService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first, err := f.svc.Create(ctx, CreateInvoiceRequest{HeaderRequest: f.header("buy", "B-1")})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, CreateInvoiceRequest{HeaderRequest: f.header("buy", "B-2")})
	require.NoError(t, err)

	h := f.header("buy", "B-2")
	_, err = f.svc.Update(ctx, first.ID, UpdateInvoiceRequest{HeaderRequest: h})
	assert.Equal(t, "CONFLICT", shared.ErrorCode(err))

	h = f.header("buy", "B-1")
	h.Notes = "  delivered late "
	updated, err := f.svc.Update(ctx, first.ID, UpdateInvoiceRequest{HeaderRequest: h})
	require.NoError(t, err)
	assert.Equal(t, "delivered late", updated.Notes)

	_, err = f.svc.SetChecked(ctx, first.ID, true)
	require.NoError(t, err)
	got, err := f.svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, got.Checked)
}

func TestService_DeleteRemovesAttachments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv, err := f.svc.Create(ctx, CreateInvoiceRequest{
		HeaderRequest: f.header("sell", "S-9"),
		Items:         []ItemRequest{{Quantity: dec("1"), Price: dec("1")}},
	})
	require.NoError(t, err)

	uploaded, err := f.files.Upload(ctx, document.KindInvoice, inv.ID, attachment.FileUpload{
		Name:        "scan.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("\x89PNG"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uploaded.StorageKey, "invoices/sell/"))
	require.Equal(t, 1, f.blobs.Len())

	_, err = f.svc.Delete(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, f.blobs.Len())

	_, err = f.svc.Get(ctx, inv.ID)
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err))
	_, err = f.svc.Delete(ctx, inv.ID)
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err))
}

func TestService_ListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, n := range []string{"B-1", "B-2"} {
		_, err := f.svc.Create(ctx, CreateInvoiceRequest{HeaderRequest: f.header("buy", n)})
		require.NoError(t, err)
	}
	_, err := f.svc.Create(ctx, CreateInvoiceRequest{HeaderRequest: f.header("sell", "S-1")})
	require.NoError(t, err)

	buys, err := f.svc.List(ctx, ListInvoicesRequest{InvoiceType: "buy"})
	require.NoError(t, err)
	assert.Len(t, buys, 2)

	all, err := f.svc.List(ctx, ListInvoicesRequest{WarehouseID: &f.warehouseID, Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "Main Store", all[0].WarehouseName)
}
