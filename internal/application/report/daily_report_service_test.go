package report

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/attachment"
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

type dailyFixture struct {
	svc   *DailyReportService
	files *attachment.Service
	blobs *storage.MemoryBlobStore
	pages *cache.MemoryPageCache
}

func newDailyFixture(t *testing.T) *dailyFixture {
	db := testutil.NewSQLiteDB(t, persistence.AutoMigrate)
	pages := cache.NewMemoryPageCache()
	blobs := storage.NewMemoryBlobStore("")
	attachments := persistence.NewGormAttachmentRepository(db)
	files := attachment.NewService(attachments, attachments, blobs, pages, 0)
	return &dailyFixture{
		svc:   NewDailyReportService(persistence.NewGormDailyReportRepository(db), files, pages),
		files: files,
		blobs: blobs,
		pages: pages,
	}
}

func validReport(warehouseID uuid.UUID, date string) CreateDailyReportRequest {
	return CreateDailyReportRequest{
		WarehouseID:         warehouseID,
		ReportDate:          date,
		EggsHealthy:         900,
		EggsDeformed:        30,
		EggsSold:            600,
		EggsGift:            10,
		PreviousEggsBalance: 200,
		CartonConsumption:   20,
		ChicksBefore:        1000,
		ChicksDead:          4,
		FeedDailyKg:         decimal.RequireFromString("115.5"),
	}
}

func TestDailyReportService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("derives computed figures", func(t *testing.T) {
		f := newDailyFixture(t)
		resp, err := f.svc.Create(ctx, validReport(uuid.New(), "2024-02-01"))
		require.NoError(t, err)
		assert.Equal(t, 930, resp.ProductionEggs)
		assert.Equal(t, 520, resp.CurrentEggsBalance)
		assert.Equal(t, 996, resp.ChicksAfter)
		assert.Equal(t, "2024-02-01", resp.ReportDate)
	})

	t.Run("one report per warehouse and day", func(t *testing.T) {
		f := newDailyFixture(t)
		warehouseID := uuid.New()
		_, err := f.svc.Create(ctx, validReport(warehouseID, "2024-02-01"))
		require.NoError(t, err)

		_, err = f.svc.Create(ctx, validReport(warehouseID, "2024-02-01"))
		assert.Equal(t, "CONFLICT", shared.ErrorCode(err))

		_, err = f.svc.Create(ctx, validReport(warehouseID, "2024-02-02"))
		assert.NoError(t, err)
		_, err = f.svc.Create(ctx, validReport(uuid.New(), "2024-02-01"))
		assert.NoError(t, err)
	})

	tests := []struct {
		name   string
		mutate func(*CreateDailyReportRequest)
	}{
		{"more dead than before", func(r *CreateDailyReportRequest) { r.ChicksDead = 1001 }},
		{"negative balance", func(r *CreateDailyReportRequest) { r.EggsSold = 5000 }},
		{"negative count", func(r *CreateDailyReportRequest) { r.CartonConsumption = -1 }},
		{"negative feed", func(r *CreateDailyReportRequest) { r.FeedRatio = decimal.NewFromInt(-1) }},
		{"bad date", func(r *CreateDailyReportRequest) { r.ReportDate = "2024-13-01" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDailyFixture(t)
			req := validReport(uuid.New(), "2024-02-01")
			tt.mutate(&req)
			_, err := f.svc.Create(ctx, req)
			assert.Equal(t, "INVALID_INPUT", shared.ErrorCode(err))
		})
	}
}

func TestDailyReportService_ListCheckDelete(t *testing.T) {
	f := newDailyFixture(t)
	ctx := context.Background()
	warehouseID := uuid.New()

	var ids []uuid.UUID
	for _, d := range []string{"2024-03-01", "2024-03-02", "2024-03-03"} {
		r, err := f.svc.Create(ctx, validReport(warehouseID, d))
		require.NoError(t, err)
		ids = append(ids, r.ID)
	}

	list, err := f.svc.List(ctx, ListDailyReportsRequest{WarehouseID: &warehouseID, From: "2024-03-02"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-03-03", list[0].ReportDate)

	_, err = f.svc.SetChecked(ctx, ids[0], true)
	require.NoError(t, err)
	got, err := f.svc.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.True(t, got.Checked)

	_, err = f.files.Upload(ctx, document.KindDailyReport, ids[0], attachment.FileUpload{
		Name: "tally.csv", ContentType: "text/csv", Size: 5, Body: strings.NewReader("a,b,c"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, f.blobs.Len())

	_, err = f.svc.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 0, f.blobs.Len())
	_, err = f.svc.Get(ctx, ids[0])
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err))
}
