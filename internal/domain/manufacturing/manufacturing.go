// Package manufacturing models feed blending batches produced in a warehouse.
package manufacturing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Invoice records one manufacturing run: the blend produced and the
// materials consumed to make it.
type Invoice struct {
	shared.BaseEntity
	Number         string
	WarehouseID    uuid.UUID
	BlendName      string
	MaterialNameID *uuid.UUID
	UnitID         *uuid.UUID
	Quantity       decimal.Decimal
	Date           time.Time
	Time           string
	TotalValue     decimal.Decimal
	Notes          string
	Items          []Item
	Expenses       []document.Expense
}

// Header is the caller-supplied part of a manufacturing invoice
type Header struct {
	Number         string
	WarehouseID    uuid.UUID
	BlendName      string
	MaterialNameID *uuid.UUID
	UnitID         *uuid.UUID
	Quantity       decimal.Decimal
	Date           time.Time
	Time           string
	Notes          string
}

// New validates the header and creates an empty batch
func New(h Header) (*Invoice, error) {
	number, err := shared.RequireName("invoice number", h.Number, 50)
	if err != nil {
		return nil, err
	}
	if h.WarehouseID == uuid.Nil {
		return nil, shared.Invalid("warehouse id is required")
	}
	if h.Date.IsZero() {
		return nil, shared.Invalid("manufacturing date is required")
	}
	if err := shared.RequireNonNegative("quantity", h.Quantity); err != nil {
		return nil, err
	}
	return &Invoice{
		BaseEntity:     shared.NewBaseEntity(),
		Number:         number,
		WarehouseID:    h.WarehouseID,
		BlendName:      strings.TrimSpace(h.BlendName),
		MaterialNameID: h.MaterialNameID,
		UnitID:         h.UnitID,
		Quantity:       h.Quantity,
		Date:           h.Date,
		Time:           strings.TrimSpace(h.Time),
		Notes:          strings.TrimSpace(h.Notes),
	}, nil
}

// RecalculateTotal derives TotalValue from loaded items and expenses
func (m *Invoice) RecalculateTotal() decimal.Decimal {
	var values, amounts []decimal.Decimal
	for _, it := range m.Items {
		values = append(values, it.Value)
	}
	for _, e := range m.Expenses {
		amounts = append(amounts, e.Amount)
	}
	m.TotalValue = document.Total(values, amounts)
	return m.TotalValue
}

// Item is a raw material consumed by the batch
type Item struct {
	ID             uuid.UUID
	InvoiceID      uuid.UUID
	MaterialNameID *uuid.UUID
	UnitID         *uuid.UUID
	Quantity       decimal.Decimal
	BlendCount     int
	Weight         decimal.Decimal
	Price          decimal.Decimal
	Value          decimal.Decimal
}

// ItemInput is the caller-supplied part of an item
type ItemInput struct {
	MaterialNameID *uuid.UUID
	UnitID         *uuid.UUID
	Quantity       decimal.Decimal
	BlendCount     int
	Weight         decimal.Decimal
	Price          decimal.Decimal
	Value          decimal.Decimal
}

// NewItem validates an item
func NewItem(invoiceID uuid.UUID, in ItemInput) (*Item, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.Invalid("manufacturing invoice id is required")
	}
	if in.BlendCount < 0 {
		return nil, shared.Invalid("blend count cannot be negative")
	}
	for _, v := range []decimal.Decimal{in.Quantity, in.Weight, in.Price, in.Value} {
		if v.IsNegative() {
			return nil, shared.Invalid("quantities and prices cannot be negative")
		}
	}
	return &Item{
		ID:             uuid.New(),
		InvoiceID:      invoiceID,
		MaterialNameID: in.MaterialNameID,
		UnitID:         in.UnitID,
		Quantity:       in.Quantity,
		BlendCount:     in.BlendCount,
		Weight:         in.Weight,
		Price:          in.Price,
		Value:          document.LineValue(in.Quantity, in.Price, in.Value),
	}, nil
}

// Repository persists manufacturing invoices and their items
type Repository interface {
	Create(ctx context.Context, m *Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindAll(ctx context.Context, warehouseID *uuid.UUID) ([]Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddItem(ctx context.Context, item *Item) error
	FindItem(ctx context.Context, id uuid.UUID) (*Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
