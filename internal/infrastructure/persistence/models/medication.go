package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/medication"
	"github.com/shopspring/decimal"
)

// MedicineConsumptionModel is the medicine_consumption_invoices table
type MedicineConsumptionModel struct {
	BaseModel
	InvoiceNumber   string          `gorm:"size:50;not null;uniqueIndex"`
	WarehouseID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PoultryStatusID *uuid.UUID      `gorm:"type:uuid"`
	ConsumptionDate time.Time       `gorm:"type:date;not null;index"`
	ConsumptionTime string          `gorm:"size:20"`
	TotalValue      decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Notes           string          `gorm:"type:text"`
}

// TableName returns the table name
func (MedicineConsumptionModel) TableName() string { return "medicine_consumption_invoices" }

// ToDomain converts the row to a domain consumption without lines
func (m *MedicineConsumptionModel) ToDomain() *medication.Consumption {
	return &medication.Consumption{
		BaseEntity:      m.BaseModel.ToDomain(),
		Number:          m.InvoiceNumber,
		WarehouseID:     m.WarehouseID,
		PoultryStatusID: m.PoultryStatusID,
		Date:            m.ConsumptionDate,
		Time:            m.ConsumptionTime,
		TotalValue:      m.TotalValue,
		Notes:           m.Notes,
	}
}

// MedicineConsumptionModelFromDomain converts a domain consumption to a row
func MedicineConsumptionModelFromDomain(c *medication.Consumption) *MedicineConsumptionModel {
	m := &MedicineConsumptionModel{
		InvoiceNumber:   c.Number,
		WarehouseID:     c.WarehouseID,
		PoultryStatusID: c.PoultryStatusID,
		ConsumptionDate: c.Date,
		ConsumptionTime: c.Time,
		TotalValue:      c.TotalValue,
		Notes:           c.Notes,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// MedicineConsumptionItemModel is the medicine_consumption_items table
type MedicineConsumptionItemModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID          uuid.UUID `gorm:"type:uuid;not null;index"`
	MedicineID         uuid.UUID `gorm:"type:uuid;not null"`
	AdministrationDay  *int
	AdministrationDate *time.Time      `gorm:"type:date"`
	Quantity           decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
	Price              decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Value              decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	CreatedAt          time.Time
}

// TableName returns the table name
func (MedicineConsumptionItemModel) TableName() string { return "medicine_consumption_items" }

// ToDomain converts the row to a domain item
func (m *MedicineConsumptionItemModel) ToDomain() *medication.Item {
	return &medication.Item{
		ID:                 m.ID,
		InvoiceID:          m.InvoiceID,
		MedicineID:         m.MedicineID,
		AdministrationDay:  m.AdministrationDay,
		AdministrationDate: m.AdministrationDate,
		Quantity:           m.Quantity,
		Price:              m.Price,
		Value:              m.Value,
	}
}

// MedicineConsumptionItemModelFromDomain converts a domain item to a row
func MedicineConsumptionItemModelFromDomain(it *medication.Item) *MedicineConsumptionItemModel {
	return &MedicineConsumptionItemModel{
		ID:                 it.ID,
		InvoiceID:          it.InvoiceID,
		MedicineID:         it.MedicineID,
		AdministrationDay:  it.AdministrationDay,
		AdministrationDate: it.AdministrationDate,
		Quantity:           it.Quantity,
		Price:              it.Price,
		Value:              it.Value,
		CreatedAt:          time.Now(),
	}
}
