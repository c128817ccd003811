// Package invoice models buy and sell invoices with their line items.
package invoice

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Type is the direction of an invoice
type Type string

const (
	TypeBuy  Type = "buy"
	TypeSell Type = "sell"
)

// IsValid reports whether t is buy or sell
func (t Type) IsValid() bool {
	return t == TypeBuy || t == TypeSell
}

// Invoice is a purchase or sale of materials through a warehouse.
type Invoice struct {
	shared.BaseEntity
	Type            Type
	Number          string
	Date            time.Time
	Time            string
	WarehouseID     uuid.UUID
	PoultryStatusID *uuid.UUID
	TotalValue      decimal.Decimal
	Checked         bool
	Notes           string
	Items           []Item
	Expenses        []document.Expense
}

// Header holds the fields that describe an invoice apart from its lines
type Header struct {
	Type            Type
	Number          string
	Date            time.Time
	Time            string
	WarehouseID     uuid.UUID
	PoultryStatusID *uuid.UUID
	Notes           string
}

// New creates an invoice with no lines
func New(h Header) (*Invoice, error) {
	inv := &Invoice{BaseEntity: shared.NewBaseEntity()}
	if err := inv.SetHeader(h); err != nil {
		return nil, err
	}
	return inv, nil
}

// SetHeader validates and applies header fields
func (i *Invoice) SetHeader(h Header) error {
	if !h.Type.IsValid() {
		return shared.Invalid("invoice type must be buy or sell")
	}
	number, err := shared.RequireName("invoice number", h.Number, 50)
	if err != nil {
		return err
	}
	if h.WarehouseID == uuid.Nil {
		return shared.Invalid("warehouse id is required")
	}
	if h.Date.IsZero() {
		return shared.Invalid("invoice date is required")
	}
	i.Type = h.Type
	i.Number = number
	i.Date = h.Date
	i.Time = strings.TrimSpace(h.Time)
	i.WarehouseID = h.WarehouseID
	i.PoultryStatusID = h.PoultryStatusID
	i.Notes = strings.TrimSpace(h.Notes)
	i.Touch()
	return nil
}

// AddItem appends a validated line item
func (i *Invoice) AddItem(in ItemInput) (*Item, error) {
	item, err := NewItem(i.ID, in)
	if err != nil {
		return nil, err
	}
	i.Items = append(i.Items, *item)
	return item, nil
}

// AddExpense appends a validated expense line
func (i *Invoice) AddExpense(expenseTypeID uuid.UUID, amount decimal.Decimal, account string) (*document.Expense, error) {
	e, err := document.NewExpense(i.ID, expenseTypeID, amount, account)
	if err != nil {
		return nil, err
	}
	i.Expenses = append(i.Expenses, *e)
	return e, nil
}

// RecalculateTotal derives TotalValue from the loaded lines
func (i *Invoice) RecalculateTotal() decimal.Decimal {
	values := make([]decimal.Decimal, 0, len(i.Items))
	for _, it := range i.Items {
		values = append(values, it.Value)
	}
	amounts := make([]decimal.Decimal, 0, len(i.Expenses))
	for _, e := range i.Expenses {
		amounts = append(amounts, e.Amount)
	}
	i.TotalValue = document.Total(values, amounts)
	return i.TotalValue
}

// SetChecked marks the invoice as reviewed or not
func (i *Invoice) SetChecked(checked bool) {
	i.Checked = checked
	i.Touch()
}

// Item is one material line on an invoice
type Item struct {
	ID             uuid.UUID
	InvoiceID      uuid.UUID
	MaterialNameID *uuid.UUID
	UnitID         *uuid.UUID
	Quantity       decimal.Decimal
	Weight         decimal.Decimal
	Price          decimal.Decimal
	Value          decimal.Decimal
}

// ItemInput is the caller-supplied part of an item
type ItemInput struct {
	MaterialNameID *uuid.UUID
	UnitID         *uuid.UUID
	Quantity       decimal.Decimal
	Weight         decimal.Decimal
	Price          decimal.Decimal
	Value          decimal.Decimal
}

// NewItem validates an item; a zero value defaults to quantity * price.
func NewItem(invoiceID uuid.UUID, in ItemInput) (*Item, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.Invalid("invoice id is required")
	}
	for field, v := range map[string]decimal.Decimal{
		"quantity": in.Quantity, "weight": in.Weight, "price": in.Price, "value": in.Value,
	} {
		if err := shared.RequireNonNegative(field, v); err != nil {
			return nil, err
		}
	}
	return &Item{
		ID:             uuid.New(),
		InvoiceID:      invoiceID,
		MaterialNameID: in.MaterialNameID,
		UnitID:         in.UnitID,
		Quantity:       in.Quantity,
		Weight:         in.Weight,
		Price:          in.Price,
		Value:          document.LineValue(in.Quantity, in.Price, in.Value),
	}, nil
}
