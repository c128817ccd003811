package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/domain/invoice"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// HeaderRequest carries the header fields of an invoice
type HeaderRequest struct {
	InvoiceType     string     `json:"invoice_type" binding:"required,invoice_type"`
	InvoiceNumber   string     `json:"invoice_number" binding:"required,max=50"`
	InvoiceDate     string     `json:"invoice_date" binding:"required,datetime=2006-01-02"`
	InvoiceTime     string     `json:"invoice_time" binding:"max=20"`
	WarehouseID     uuid.UUID  `json:"warehouse_id" binding:"required"`
	PoultryStatusID *uuid.UUID `json:"poultry_status_id"`
	Notes           string     `json:"notes" binding:"max=2000"`
}

func (r HeaderRequest) toDomain() (invoice.Header, error) {
	date, err := shared.ParseDate("invoice_date", r.InvoiceDate)
	if err != nil {
		return invoice.Header{}, err
	}
	return invoice.Header{
		Type:            invoice.Type(r.InvoiceType),
		Number:          r.InvoiceNumber,
		Date:            date,
		Time:            r.InvoiceTime,
		WarehouseID:     r.WarehouseID,
		PoultryStatusID: r.PoultryStatusID,
		Notes:           r.Notes,
	}, nil
}

// ItemRequest is a line item as entered by the user. A zero value is
// filled in as quantity * price.
type ItemRequest struct {
	MaterialNameID *uuid.UUID      `json:"material_name_id"`
	UnitID         *uuid.UUID      `json:"unit_id"`
	Quantity       decimal.Decimal `json:"quantity" binding:"decimal_gte0"`
	Weight         decimal.Decimal `json:"weight" binding:"decimal_gte0"`
	Price          decimal.Decimal `json:"price" binding:"decimal_gte0"`
	Value          decimal.Decimal `json:"value" binding:"decimal_gte0"`
}

func (r ItemRequest) toDomain() invoice.ItemInput {
	return invoice.ItemInput{
		MaterialNameID: r.MaterialNameID,
		UnitID:         r.UnitID,
		Quantity:       r.Quantity,
		Weight:         r.Weight,
		Price:          r.Price,
		Value:          r.Value,
	}
}

// CreateInvoiceRequest creates an invoice with its lines
type CreateInvoiceRequest struct {
	HeaderRequest
	Items    []ItemRequest         `json:"items" binding:"omitempty,dive"`
	Expenses []ledger.ExpenseInput `json:"expenses" binding:"omitempty,dive"`
}

// UpdateInvoiceRequest replaces the header of an invoice
type UpdateInvoiceRequest struct {
	HeaderRequest
}

// ListInvoicesRequest filters the invoice listing
type ListInvoicesRequest struct {
	InvoiceType string     `form:"type" binding:"omitempty,invoice_type"`
	WarehouseID *uuid.UUID `form:"-"`
	From        string     `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To          string     `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page        int        `form:"page" binding:"omitempty,min=1"`
	PageSize    int        `form:"page_size" binding:"omitempty,min=1,max=200"`
}

func (r ListInvoicesRequest) toFilter() (invoice.Filter, error) {
	f := invoice.Filter{WarehouseID: r.WarehouseID}
	if r.InvoiceType != "" {
		t := invoice.Type(r.InvoiceType)
		f.Type = &t
	}
	var err error
	if f.From, err = shared.ParseOptionalDate("from", r.From); err != nil {
		return f, err
	}
	if f.To, err = shared.ParseOptionalDate("to", r.To); err != nil {
		return f, err
	}
	if r.PageSize > 0 {
		f.Limit = r.PageSize
		if r.Page > 1 {
			f.Offset = (r.Page - 1) * r.PageSize
		}
	}
	return f, nil
}

// ItemResponse is a line item in API responses
type ItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	InvoiceID      uuid.UUID       `json:"invoice_id"`
	MaterialNameID *uuid.UUID      `json:"material_name_id,omitempty"`
	UnitID         *uuid.UUID      `json:"unit_id,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Weight         decimal.Decimal `json:"weight"`
	Price          decimal.Decimal `json:"price"`
	Value          decimal.Decimal `json:"value"`
}

// ToItemResponse converts a domain item
func ToItemResponse(it *invoice.Item) ItemResponse {
	return ItemResponse{
		ID:             it.ID,
		InvoiceID:      it.InvoiceID,
		MaterialNameID: it.MaterialNameID,
		UnitID:         it.UnitID,
		Quantity:       it.Quantity,
		Weight:         it.Weight,
		Price:          it.Price,
		Value:          it.Value,
	}
}

// InvoiceResponse is an invoice with its lines
type InvoiceResponse struct {
	ID               uuid.UUID                `json:"id"`
	InvoiceType      string                   `json:"invoice_type"`
	InvoiceNumber    string                   `json:"invoice_number"`
	InvoiceDate      string                   `json:"invoice_date"`
	InvoiceTime      string                   `json:"invoice_time,omitempty"`
	WarehouseID      uuid.UUID                `json:"warehouse_id"`
	PoultryStatusID  *uuid.UUID               `json:"poultry_status_id,omitempty"`
	TotalValue       decimal.Decimal          `json:"total_value"`
	Checked          bool                     `json:"checked"`
	Notes            string                   `json:"notes,omitempty"`
	WarehouseName    string                   `json:"warehouse_name,omitempty"`
	FarmName         string                   `json:"farm_name,omitempty"`
	PoultryBatchName string                   `json:"poultry_batch_name,omitempty"`
	Items            []ItemResponse           `json:"items"`
	Expenses         []ledger.ExpenseResponse `json:"expenses"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// ToInvoiceResponse converts a domain invoice
func ToInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	items := make([]ItemResponse, len(inv.Items))
	for i := range inv.Items {
		items[i] = ToItemResponse(&inv.Items[i])
	}
	return InvoiceResponse{
		ID:              inv.ID,
		InvoiceType:     string(inv.Type),
		InvoiceNumber:   inv.Number,
		InvoiceDate:     inv.Date.Format(shared.DateLayout),
		InvoiceTime:     inv.Time,
		WarehouseID:     inv.WarehouseID,
		PoultryStatusID: inv.PoultryStatusID,
		TotalValue:      inv.TotalValue,
		Checked:         inv.Checked,
		Notes:           inv.Notes,
		Items:           items,
		Expenses:        ledger.ToExpenseResponses(inv.Expenses),
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

// ToEnrichedResponse converts an invoice joined with its reference names
func ToEnrichedResponse(e *invoice.Enriched) InvoiceResponse {
	resp := ToInvoiceResponse(&e.Invoice)
	resp.WarehouseName = e.WarehouseName
	resp.FarmName = e.FarmName
	resp.PoultryBatchName = e.PoultryBatchName
	return resp
}

// SummaryResponse is an invoice listing row
type SummaryResponse struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceType   string          `json:"invoice_type"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   string          `json:"invoice_date"`
	WarehouseID   uuid.UUID       `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name,omitempty"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Checked       bool            `json:"checked"`
}

// ToSummaryResponses converts listing rows
func ToSummaryResponses(rows []invoice.Summary) []SummaryResponse {
	out := make([]SummaryResponse, len(rows))
	for i, r := range rows {
		out[i] = SummaryResponse{
			ID:            r.ID,
			InvoiceType:   string(r.Type),
			InvoiceNumber: r.Number,
			InvoiceDate:   r.Date.Format(shared.DateLayout),
			WarehouseID:   r.WarehouseID,
			WarehouseName: r.WarehouseName,
			TotalValue:    r.TotalValue,
			Checked:       r.Checked,
		}
	}
	return out
}
