package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/report"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreateDailyReportRequest carries the figures entered for one day.
// Production, current balance and chicks after are always derived.
type CreateDailyReportRequest struct {
	WarehouseID         uuid.UUID       `json:"warehouse_id" binding:"required"`
	ReportDate          string          `json:"report_date" binding:"required,datetime=2006-01-02"`
	ReportTime          string          `json:"report_time" binding:"max=20"`
	EggsHealthy         int             `json:"production_eggs_healthy" binding:"min=0"`
	EggsDeformed        int             `json:"production_eggs_deformed" binding:"min=0"`
	EggsSold            int             `json:"eggs_sold" binding:"min=0"`
	EggsGift            int             `json:"eggs_gift" binding:"min=0"`
	PreviousEggsBalance int             `json:"previous_eggs_balance" binding:"min=0"`
	CartonConsumption   int             `json:"carton_consumption" binding:"min=0"`
	ChicksBefore        int             `json:"chicks_before" binding:"min=0"`
	ChicksDead          int             `json:"chicks_dead" binding:"min=0"`
	FeedDailyKg         decimal.Decimal `json:"feed_daily_kg" binding:"decimal_gte0"`
	FeedMonthlyKg       decimal.Decimal `json:"feed_monthly_kg" binding:"decimal_gte0"`
	FeedRatio           decimal.Decimal `json:"feed_ratio" binding:"decimal_gte0"`
	Notes               string          `json:"notes" binding:"max=2000"`
}

func (r CreateDailyReportRequest) toDomain() (report.Input, error) {
	date, err := shared.ParseDate("report_date", r.ReportDate)
	if err != nil {
		return report.Input{}, err
	}
	return report.Input{
		WarehouseID:         r.WarehouseID,
		ReportDate:          date,
		ReportTime:          r.ReportTime,
		EggsHealthy:         r.EggsHealthy,
		EggsDeformed:        r.EggsDeformed,
		EggsSold:            r.EggsSold,
		EggsGift:            r.EggsGift,
		PreviousEggsBalance: r.PreviousEggsBalance,
		CartonConsumption:   r.CartonConsumption,
		ChicksBefore:        r.ChicksBefore,
		ChicksDead:          r.ChicksDead,
		FeedDailyKg:         r.FeedDailyKg,
		FeedMonthlyKg:       r.FeedMonthlyKg,
		FeedRatio:           r.FeedRatio,
		Notes:               r.Notes,
	}, nil
}

// ListDailyReportsRequest filters the report listing
type ListDailyReportsRequest struct {
	WarehouseID *uuid.UUID `form:"-"`
	From        string     `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To          string     `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// DailyReportResponse is a daily report in API responses
type DailyReportResponse struct {
	ID                  uuid.UUID       `json:"id"`
	WarehouseID         uuid.UUID       `json:"warehouse_id"`
	ReportDate          string          `json:"report_date"`
	ReportTime          string          `json:"report_time,omitempty"`
	EggsHealthy         int             `json:"production_eggs_healthy"`
	EggsDeformed        int             `json:"production_eggs_deformed"`
	ProductionEggs      int             `json:"production_eggs"`
	EggsSold            int             `json:"eggs_sold"`
	EggsGift            int             `json:"eggs_gift"`
	PreviousEggsBalance int             `json:"previous_eggs_balance"`
	CurrentEggsBalance  int             `json:"current_eggs_balance"`
	CartonConsumption   int             `json:"carton_consumption"`
	ChicksBefore        int             `json:"chicks_before"`
	ChicksDead          int             `json:"chicks_dead"`
	ChicksAfter         int             `json:"chicks_after"`
	FeedDailyKg         decimal.Decimal `json:"feed_daily_kg"`
	FeedMonthlyKg       decimal.Decimal `json:"feed_monthly_kg"`
	FeedRatio           decimal.Decimal `json:"feed_ratio"`
	Checked             bool            `json:"checked"`
	Notes               string          `json:"notes,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// ToDailyReportResponse converts a domain report
func ToDailyReportResponse(r *report.DailyReport) DailyReportResponse {
	return DailyReportResponse{
		ID:                  r.ID,
		WarehouseID:         r.WarehouseID,
		ReportDate:          r.ReportDate.Format(shared.DateLayout),
		ReportTime:          r.ReportTime,
		EggsHealthy:         r.EggsHealthy,
		EggsDeformed:        r.EggsDeformed,
		ProductionEggs:      r.ProductionEggs,
		EggsSold:            r.EggsSold,
		EggsGift:            r.EggsGift,
		PreviousEggsBalance: r.PreviousEggsBalance,
		CurrentEggsBalance:  r.CurrentEggsBalance,
		CartonConsumption:   r.CartonConsumption,
		ChicksBefore:        r.ChicksBefore,
		ChicksDead:          r.ChicksDead,
		ChicksAfter:         r.ChicksAfter,
		FeedDailyKg:         r.FeedDailyKg,
		FeedMonthlyKg:       r.FeedMonthlyKg,
		FeedRatio:           r.FeedRatio,
		Checked:             r.Checked,
		Notes:               r.Notes,
		CreatedAt:           r.CreatedAt,
	}
}
