package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the invoices table
type InvoiceModel struct {
	BaseModel
	InvoiceType     string          `gorm:"size:10;not null;uniqueIndex:idx_invoice_type_number"`
	InvoiceNumber   string          `gorm:"size:50;not null;uniqueIndex:idx_invoice_type_number"`
	InvoiceDate     time.Time       `gorm:"type:date;not null;index"`
	InvoiceTime     string          `gorm:"size:20"`
	WarehouseID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PoultryStatusID *uuid.UUID      `gorm:"type:uuid"`
	TotalValue      decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Checked         bool            `gorm:"not null;default:false"`
	Notes           string          `gorm:"type:text"`
}

// TableName returns the table name
func (InvoiceModel) TableName() string { return "invoices" }

// ToDomain converts the row to a domain invoice without lines
func (m *InvoiceModel) ToDomain() *invoice.Invoice {
	return &invoice.Invoice{
		BaseEntity:      m.BaseModel.ToDomain(),
		Type:            invoice.Type(m.InvoiceType),
		Number:          m.InvoiceNumber,
		Date:            m.InvoiceDate,
		Time:            m.InvoiceTime,
		WarehouseID:     m.WarehouseID,
		PoultryStatusID: m.PoultryStatusID,
		TotalValue:      m.TotalValue,
		Checked:         m.Checked,
		Notes:           m.Notes,
	}
}

// InvoiceModelFromDomain converts a domain invoice header to a row
func InvoiceModelFromDomain(inv *invoice.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		InvoiceType:     string(inv.Type),
		InvoiceNumber:   inv.Number,
		InvoiceDate:     inv.Date,
		InvoiceTime:     inv.Time,
		WarehouseID:     inv.WarehouseID,
		PoultryStatusID: inv.PoultryStatusID,
		TotalValue:      inv.TotalValue,
		Checked:         inv.Checked,
		Notes:           inv.Notes,
	}
	m.FromDomainBaseEntity(inv.BaseEntity)
	return m
}

// InvoiceItemModel is the invoice_items table
type InvoiceItemModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	MaterialNameID *uuid.UUID      `gorm:"type:uuid"`
	UnitID         *uuid.UUID      `gorm:"type:uuid"`
	Quantity       decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
	Weight         decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
	Price          decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Value          decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	CreatedAt      time.Time
}

// TableName returns the table name
func (InvoiceItemModel) TableName() string { return "invoice_items" }

// ToDomain converts the row to a domain item
func (m *InvoiceItemModel) ToDomain() *invoice.Item {
	return &invoice.Item{
		ID:             m.ID,
		InvoiceID:      m.InvoiceID,
		MaterialNameID: m.MaterialNameID,
		UnitID:         m.UnitID,
		Quantity:       m.Quantity,
		Weight:         m.Weight,
		Price:          m.Price,
		Value:          m.Value,
	}
}

// InvoiceItemModelFromDomain converts a domain item to a row
func InvoiceItemModelFromDomain(it *invoice.Item) *InvoiceItemModel {
	return &InvoiceItemModel{
		ID:             it.ID,
		InvoiceID:      it.InvoiceID,
		MaterialNameID: it.MaterialNameID,
		UnitID:         it.UnitID,
		Quantity:       it.Quantity,
		Weight:         it.Weight,
		Price:          it.Price,
		Value:          it.Value,
		CreatedAt:      time.Now(),
	}
}

// EnrichedInvoiceRow is the result of joining an invoice with the names
// of its warehouse, farm and poultry batch.
type EnrichedInvoiceRow struct {
	InvoiceModel
	WarehouseName    *string
	FarmName         *string
	PoultryBatchName *string
}
