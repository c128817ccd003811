// Package report models the daily production report filed per warehouse.
package report

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DailyReport captures one day of egg production, flock and feed figures.
type DailyReport struct {
	shared.BaseEntity
	WarehouseID uuid.UUID
	ReportDate  time.Time
	ReportTime  string

	EggsHealthy         int
	EggsDeformed        int
	ProductionEggs      int
	EggsSold            int
	EggsGift            int
	PreviousEggsBalance int
	CurrentEggsBalance  int
	CartonConsumption   int

	ChicksBefore int
	ChicksDead   int
	ChicksAfter  int

	FeedDailyKg   decimal.Decimal
	FeedMonthlyKg decimal.Decimal
	FeedRatio     decimal.Decimal

	Checked bool
	Notes   string
}

// Input holds the figures entered for a report
type Input struct {
	WarehouseID         uuid.UUID
	ReportDate          time.Time
	ReportTime          string
	EggsHealthy         int
	EggsDeformed        int
	EggsSold            int
	EggsGift            int
	PreviousEggsBalance int
	CartonConsumption   int
	ChicksBefore        int
	ChicksDead          int
	FeedDailyKg         decimal.Decimal
	FeedMonthlyKg       decimal.Decimal
	FeedRatio           decimal.Decimal
	Notes               string
}

// New validates the input and derives the computed columns:
// production = healthy + deformed, current balance = previous + production
// - sold - gift, chicks after = before - dead.
func New(in Input) (*DailyReport, error) {
	if in.WarehouseID == uuid.Nil {
		return nil, shared.Invalid("warehouse id is required")
	}
	if in.ReportDate.IsZero() {
		return nil, shared.Invalid("report date is required")
	}
	for _, n := range []int{
		in.EggsHealthy, in.EggsDeformed, in.EggsSold, in.EggsGift,
		in.PreviousEggsBalance, in.CartonConsumption, in.ChicksBefore, in.ChicksDead,
	} {
		if n < 0 {
			return nil, shared.Invalid("report figures cannot be negative")
		}
	}
	for _, d := range []decimal.Decimal{in.FeedDailyKg, in.FeedMonthlyKg, in.FeedRatio} {
		if d.IsNegative() {
			return nil, shared.Invalid("feed figures cannot be negative")
		}
	}
	if in.ChicksDead > in.ChicksBefore {
		return nil, shared.Invalid("dead chicks cannot exceed chicks before")
	}
	production := in.EggsHealthy + in.EggsDeformed
	current := in.PreviousEggsBalance + production - in.EggsSold - in.EggsGift
	if current < 0 {
		return nil, shared.Invalid("eggs sold and gifted exceed the available balance")
	}
	return &DailyReport{
		BaseEntity:          shared.NewBaseEntity(),
		WarehouseID:         in.WarehouseID,
		ReportDate:          truncateDay(in.ReportDate),
		ReportTime:          strings.TrimSpace(in.ReportTime),
		EggsHealthy:         in.EggsHealthy,
		EggsDeformed:        in.EggsDeformed,
		ProductionEggs:      production,
		EggsSold:            in.EggsSold,
		EggsGift:            in.EggsGift,
		PreviousEggsBalance: in.PreviousEggsBalance,
		CurrentEggsBalance:  current,
		CartonConsumption:   in.CartonConsumption,
		ChicksBefore:        in.ChicksBefore,
		ChicksDead:          in.ChicksDead,
		ChicksAfter:         in.ChicksBefore - in.ChicksDead,
		FeedDailyKg:         in.FeedDailyKg,
		FeedMonthlyKg:       in.FeedMonthlyKg,
		FeedRatio:           in.FeedRatio,
		Notes:               strings.TrimSpace(in.Notes),
	}, nil
}

// SetChecked marks the report as reviewed
func (r *DailyReport) SetChecked(checked bool) {
	r.Checked = checked
	r.Touch()
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Filter narrows report listings
type Filter struct {
	WarehouseID *uuid.UUID
	From        *time.Time
	To          *time.Time
}

// Repository persists daily reports
type Repository interface {
	Create(ctx context.Context, r *DailyReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*DailyReport, error)
	FindAll(ctx context.Context, filter Filter) ([]DailyReport, error)
	ExistsForDate(ctx context.Context, warehouseID uuid.UUID, date time.Time) (bool, error)
	SetChecked(ctx context.Context, id uuid.UUID, checked bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
