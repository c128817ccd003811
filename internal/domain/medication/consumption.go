// Package medication models medicine given to flocks and what it cost.
package medication

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Consumption is a medicine consumption invoice for a warehouse and flock
type Consumption struct {
	shared.BaseEntity
	Number          string
	WarehouseID     uuid.UUID
	PoultryStatusID *uuid.UUID
	Date            time.Time
	Time            string
	TotalValue      decimal.Decimal
	Notes           string
	Items           []Item
	Expenses        []document.Expense
}

// Header is the caller-supplied part of a consumption invoice
type Header struct {
	Number          string
	WarehouseID     uuid.UUID
	PoultryStatusID *uuid.UUID
	Date            time.Time
	Time            string
	Notes           string
}

// New validates and creates an empty consumption invoice
func New(h Header) (*Consumption, error) {
	number, err := shared.RequireName("invoice number", h.Number, 50)
	if err != nil {
		return nil, err
	}
	if h.WarehouseID == uuid.Nil {
		return nil, shared.Invalid("warehouse id is required")
	}
	if h.Date.IsZero() {
		return nil, shared.Invalid("consumption date is required")
	}
	return &Consumption{
		BaseEntity:      shared.NewBaseEntity(),
		Number:          number,
		WarehouseID:     h.WarehouseID,
		PoultryStatusID: h.PoultryStatusID,
		Date:            h.Date,
		Time:            strings.TrimSpace(h.Time),
		Notes:           strings.TrimSpace(h.Notes),
	}, nil
}

// RecalculateTotal derives TotalValue from loaded items and expenses
func (c *Consumption) RecalculateTotal() decimal.Decimal {
	var values, amounts []decimal.Decimal
	for _, it := range c.Items {
		values = append(values, it.Value)
	}
	for _, e := range c.Expenses {
		amounts = append(amounts, e.Amount)
	}
	c.TotalValue = document.Total(values, amounts)
	return c.TotalValue
}

// Item is one medicine administered
type Item struct {
	ID                 uuid.UUID
	InvoiceID          uuid.UUID
	MedicineID         uuid.UUID
	AdministrationDay  *int
	AdministrationDate *time.Time
	Quantity           decimal.Decimal
	Price              decimal.Decimal
	Value              decimal.Decimal
}

// ItemInput is the caller-supplied part of an item
type ItemInput struct {
	MedicineID         uuid.UUID
	AdministrationDay  *int
	AdministrationDate *time.Time
	Quantity           decimal.Decimal
	Price              decimal.Decimal
	Value              decimal.Decimal
}

// NewItem validates an item
func NewItem(invoiceID uuid.UUID, in ItemInput) (*Item, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.Invalid("consumption invoice id is required")
	}
	if in.MedicineID == uuid.Nil {
		return nil, shared.Invalid("medicine id is required")
	}
	if in.AdministrationDay != nil && *in.AdministrationDay < 0 {
		return nil, shared.Invalid("administration day cannot be negative")
	}
	for _, v := range []decimal.Decimal{in.Quantity, in.Price, in.Value} {
		if v.IsNegative() {
			return nil, shared.Invalid("quantities and prices cannot be negative")
		}
	}
	return &Item{
		ID:                 uuid.New(),
		InvoiceID:          invoiceID,
		MedicineID:         in.MedicineID,
		AdministrationDay:  in.AdministrationDay,
		AdministrationDate: in.AdministrationDate,
		Quantity:           in.Quantity,
		Price:              in.Price,
		Value:              document.LineValue(in.Quantity, in.Price, in.Value),
	}, nil
}

// Repository persists consumption invoices and their items
type Repository interface {
	Create(ctx context.Context, c *Consumption) error
	FindByID(ctx context.Context, id uuid.UUID) (*Consumption, error)
	FindAll(ctx context.Context, warehouseID *uuid.UUID) ([]Consumption, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddItem(ctx context.Context, item *Item) error
	FindItem(ctx context.Context, id uuid.UUID) (*Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
