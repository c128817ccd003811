package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/manufacturing"
	"github.com/shopspring/decimal"
)

// ManufacturingInvoiceModel is the manufacturing_invoices table
type ManufacturingInvoiceModel struct {
	BaseModel
	InvoiceNumber     string          `gorm:"size:50;not null;uniqueIndex"`
	WarehouseID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	BlendName         string          `gorm:"size:200"`
	MaterialNameID    *uuid.UUID      `gorm:"type:uuid"`
	UnitID            *uuid.UUID      `gorm:"type:uuid"`
	Quantity          decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
	ManufacturingDate time.Time       `gorm:"type:date;not null;index"`
	ManufacturingTime string          `gorm:"size:20"`
	TotalValue        decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Notes             string          `gorm:"type:text"`
}

// TableName returns the table name
func (ManufacturingInvoiceModel) TableName() string { return "manufacturing_invoices" }

// ToDomain converts the row to a domain manufacturing invoice without lines
func (m *ManufacturingInvoiceModel) ToDomain() *manufacturing.Invoice {
	return &manufacturing.Invoice{
		BaseEntity:     m.BaseModel.ToDomain(),
		Number:         m.InvoiceNumber,
		WarehouseID:    m.WarehouseID,
		BlendName:      m.BlendName,
		MaterialNameID: m.MaterialNameID,
		UnitID:         m.UnitID,
		Quantity:       m.Quantity,
		Date:           m.ManufacturingDate,
		Time:           m.ManufacturingTime,
		TotalValue:     m.TotalValue,
		Notes:          m.Notes,
	}
}

// ManufacturingInvoiceModelFromDomain converts a domain manufacturing invoice to a row
func ManufacturingInvoiceModelFromDomain(inv *manufacturing.Invoice) *ManufacturingInvoiceModel {
	m := &ManufacturingInvoiceModel{
		InvoiceNumber:     inv.Number,
		WarehouseID:       inv.WarehouseID,
		BlendName:         inv.BlendName,
		MaterialNameID:    inv.MaterialNameID,
		UnitID:            inv.UnitID,
		Quantity:          inv.Quantity,
		ManufacturingDate: inv.Date,
		ManufacturingTime: inv.Time,
		TotalValue:        inv.TotalValue,
		Notes:             inv.Notes,
	}
	m.FromDomainBaseEntity(inv.BaseEntity)
	return m
}

// ManufacturingItemModel is the manufacturing_invoice_items table
type ManufacturingItemModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	MaterialNameID *uuid.UUID      `gorm:"type:uuid"`
	UnitID         *uuid.UUID      `gorm:"type:uuid"`
	Quantity       decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
	BlendCount     int             `gorm:"not null;default:0"`
	Weight         decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
	Price          decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Value          decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	CreatedAt      time.Time
}

// TableName returns the table name
func (ManufacturingItemModel) TableName() string { return "manufacturing_invoice_items" }

// ToDomain converts the row to a domain item
func (m *ManufacturingItemModel) ToDomain() *manufacturing.Item {
	return &manufacturing.Item{
		ID:             m.ID,
		InvoiceID:      m.InvoiceID,
		MaterialNameID: m.MaterialNameID,
		UnitID:         m.UnitID,
		Quantity:       m.Quantity,
		BlendCount:     m.BlendCount,
		Weight:         m.Weight,
		Price:          m.Price,
		Value:          m.Value,
	}
}

// ManufacturingItemModelFromDomain converts a domain item to a row
func ManufacturingItemModelFromDomain(it *manufacturing.Item) *ManufacturingItemModel {
	return &ManufacturingItemModel{
		ID:             it.ID,
		InvoiceID:      it.InvoiceID,
		MaterialNameID: it.MaterialNameID,
		UnitID:         it.UnitID,
		Quantity:       it.Quantity,
		BlendCount:     it.BlendCount,
		Weight:         it.Weight,
		Price:          it.Price,
		Value:          it.Value,
		CreatedAt:      time.Now(),
	}
}
