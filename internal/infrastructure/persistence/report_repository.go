package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/report"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDailyReportRepository implements report.Repository using GORM
type GormDailyReportRepository struct {
	db *gorm.DB
}

// NewGormDailyReportRepository creates a new GormDailyReportRepository
func NewGormDailyReportRepository(db *gorm.DB) *GormDailyReportRepository {
	return &GormDailyReportRepository{db: db}
}

// Create inserts a report
func (r *GormDailyReportRepository) Create(ctx context.Context, rep *report.DailyReport) error {
	return translateError(r.db.WithContext(ctx).Create(models.DailyReportModelFromDomain(rep)).Error, "daily report")
}

// FindByID finds a report by its ID
func (r *GormDailyReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*report.DailyReport, error) {
	var m models.DailyReportModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "daily report")
	}
	return m.ToDomain(), nil
}

// FindAll lists reports, newest first
func (r *GormDailyReportRepository) FindAll(ctx context.Context, filter report.Filter) ([]report.DailyReport, error) {
	q := r.db.WithContext(ctx).Order("report_date DESC")
	if filter.WarehouseID != nil {
		q = q.Where("warehouse_id = ?", *filter.WarehouseID)
	}
	if filter.From != nil {
		q = q.Where("report_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("report_date <= ?", *filter.To)
	}
	var rows []models.DailyReportModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]report.DailyReport, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// ExistsForDate reports whether the warehouse already has a report for date
func (r *GormDailyReportRepository) ExistsForDate(ctx context.Context, warehouseID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DailyReportModel{}).
		Where("warehouse_id = ? AND report_date = ?", warehouseID, date).
		Count(&count).Error
	return count > 0, err
}

// SetChecked flips the reviewed flag
func (r *GormDailyReportRepository) SetChecked(ctx context.Context, id uuid.UUID, checked bool) error {
	res := r.db.WithContext(ctx).Model(&models.DailyReportModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"checked": checked, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.NotFound("daily report")
	}
	return nil
}

// Delete removes a report
func (r *GormDailyReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.DailyReportModel{}, id, "daily report")
}

var _ report.Repository = (*GormDailyReportRepository)(nil)
