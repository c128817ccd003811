package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/report"
	"github.com/shopspring/decimal"
)

// DailyReportModel is the daily_reports table
type DailyReportModel struct {
	BaseModel
	WarehouseID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_report_warehouse_date"`
	ReportDate             time.Time       `gorm:"type:date;not null;uniqueIndex:idx_daily_report_warehouse_date"`
	ReportTime             string          `gorm:"size:20"`
	ProductionEggsHealthy  int             `gorm:"not null;default:0"`
	ProductionEggsDeformed int             `gorm:"not null;default:0"`
	ProductionEggs         int             `gorm:"not null;default:0"`
	EggsSold               int             `gorm:"not null;default:0"`
	EggsGift               int             `gorm:"not null;default:0"`
	PreviousEggsBalance    int             `gorm:"not null;default:0"`
	CurrentEggsBalance     int             `gorm:"not null;default:0"`
	CartonConsumption      int             `gorm:"not null;default:0"`
	ChicksBefore           int             `gorm:"not null;default:0"`
	ChicksDead             int             `gorm:"not null;default:0"`
	ChicksAfter            int             `gorm:"not null;default:0"`
	FeedDailyKg            decimal.Decimal `gorm:"type:numeric(12,3);not null;default:0"`
	FeedMonthlyKg          decimal.Decimal `gorm:"type:numeric(12,3);not null;default:0"`
	FeedRatio              decimal.Decimal `gorm:"type:numeric(8,3);not null;default:0"`
	Checked                bool            `gorm:"not null;default:false"`
	Notes                  string          `gorm:"type:text"`
}

// TableName returns the table name
func (DailyReportModel) TableName() string { return "daily_reports" }

// ToDomain converts the row to a domain report
func (m *DailyReportModel) ToDomain() *report.DailyReport {
	return &report.DailyReport{
		BaseEntity:          m.BaseModel.ToDomain(),
		WarehouseID:         m.WarehouseID,
		ReportDate:          m.ReportDate,
		ReportTime:          m.ReportTime,
		EggsHealthy:         m.ProductionEggsHealthy,
		EggsDeformed:        m.ProductionEggsDeformed,
		ProductionEggs:      m.ProductionEggs,
		EggsSold:            m.EggsSold,
		EggsGift:            m.EggsGift,
		PreviousEggsBalance: m.PreviousEggsBalance,
		CurrentEggsBalance:  m.CurrentEggsBalance,
		CartonConsumption:   m.CartonConsumption,
		ChicksBefore:        m.ChicksBefore,
		ChicksDead:          m.ChicksDead,
		ChicksAfter:         m.ChicksAfter,
		FeedDailyKg:         m.FeedDailyKg,
		FeedMonthlyKg:       m.FeedMonthlyKg,
		FeedRatio:           m.FeedRatio,
		Checked:             m.Checked,
		Notes:               m.Notes,
	}
}

// DailyReportModelFromDomain converts a domain report to a row
func DailyReportModelFromDomain(r *report.DailyReport) *DailyReportModel {
	m := &DailyReportModel{
		WarehouseID:            r.WarehouseID,
		ReportDate:             r.ReportDate,
		ReportTime:             r.ReportTime,
		ProductionEggsHealthy:  r.EggsHealthy,
		ProductionEggsDeformed: r.EggsDeformed,
		ProductionEggs:         r.ProductionEggs,
		EggsSold:               r.EggsSold,
		EggsGift:               r.EggsGift,
		PreviousEggsBalance:    r.PreviousEggsBalance,
		CurrentEggsBalance:     r.CurrentEggsBalance,
		CartonConsumption:      r.CartonConsumption,
		ChicksBefore:           r.ChicksBefore,
		ChicksDead:             r.ChicksDead,
		ChicksAfter:            r.ChicksAfter,
		FeedDailyKg:            r.FeedDailyKg,
		FeedMonthlyKg:          r.FeedMonthlyKg,
		FeedRatio:              r.FeedRatio,
		Checked:                r.Checked,
		Notes:                  r.Notes,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}
