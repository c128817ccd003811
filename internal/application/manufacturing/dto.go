package manufacturing

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/domain/manufacturing"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemRequest is a raw material line
type ItemRequest struct {
	MaterialNameID *uuid.UUID      `json:"material_name_id"`
	UnitID         *uuid.UUID      `json:"unit_id"`
	Quantity       decimal.Decimal `json:"quantity" binding:"decimal_gte0"`
	BlendCount     int             `json:"blend_count" binding:"min=0"`
	Weight         decimal.Decimal `json:"weight" binding:"decimal_gte0"`
	Price          decimal.Decimal `json:"price" binding:"decimal_gte0"`
	Value          decimal.Decimal `json:"value" binding:"decimal_gte0"`
}

func (r ItemRequest) toDomain() manufacturing.ItemInput {
	return manufacturing.ItemInput{
		MaterialNameID: r.MaterialNameID,
		UnitID:         r.UnitID,
		Quantity:       r.Quantity,
		BlendCount:     r.BlendCount,
		Weight:         r.Weight,
		Price:          r.Price,
		Value:          r.Value,
	}
}

// CreateRequest creates a manufacturing batch with its lines
type CreateRequest struct {
	InvoiceNumber     string                `json:"invoice_number" binding:"required,max=50"`
	WarehouseID       uuid.UUID             `json:"warehouse_id" binding:"required"`
	BlendName         string                `json:"blend_name" binding:"max=200"`
	MaterialNameID    *uuid.UUID            `json:"material_name_id"`
	UnitID            *uuid.UUID            `json:"unit_id"`
	Quantity          decimal.Decimal       `json:"quantity" binding:"decimal_gte0"`
	ManufacturingDate string                `json:"manufacturing_date" binding:"required,datetime=2006-01-02"`
	ManufacturingTime string                `json:"manufacturing_time" binding:"max=20"`
	Notes             string                `json:"notes" binding:"max=2000"`
	Items             []ItemRequest         `json:"items" binding:"omitempty,dive"`
	Expenses          []ledger.ExpenseInput `json:"expenses" binding:"omitempty,dive"`
}

func (r CreateRequest) header() (manufacturing.Header, error) {
	date, err := shared.ParseDate("manufacturing_date", r.ManufacturingDate)
	if err != nil {
		return manufacturing.Header{}, err
	}
	return manufacturing.Header{
		Number:         r.InvoiceNumber,
		WarehouseID:    r.WarehouseID,
		BlendName:      r.BlendName,
		MaterialNameID: r.MaterialNameID,
		UnitID:         r.UnitID,
		Quantity:       r.Quantity,
		Date:           date,
		Time:           r.ManufacturingTime,
		Notes:          r.Notes,
	}, nil
}

// ItemResponse is a raw material line in API responses
type ItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	InvoiceID      uuid.UUID       `json:"invoice_id"`
	MaterialNameID *uuid.UUID      `json:"material_name_id,omitempty"`
	UnitID         *uuid.UUID      `json:"unit_id,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	BlendCount     int             `json:"blend_count"`
	Weight         decimal.Decimal `json:"weight"`
	Price          decimal.Decimal `json:"price"`
	Value          decimal.Decimal `json:"value"`
}

// Response is a manufacturing batch in API responses
type Response struct {
	ID                uuid.UUID                `json:"id"`
	InvoiceNumber     string                   `json:"invoice_number"`
	WarehouseID       uuid.UUID                `json:"warehouse_id"`
	BlendName         string                   `json:"blend_name,omitempty"`
	MaterialNameID    *uuid.UUID               `json:"material_name_id,omitempty"`
	UnitID            *uuid.UUID               `json:"unit_id,omitempty"`
	Quantity          decimal.Decimal          `json:"quantity"`
	ManufacturingDate string                   `json:"manufacturing_date"`
	ManufacturingTime string                   `json:"manufacturing_time,omitempty"`
	TotalValue        decimal.Decimal          `json:"total_value"`
	Notes             string                   `json:"notes,omitempty"`
	Items             []ItemResponse           `json:"items,omitempty"`
	Expenses          []ledger.ExpenseResponse `json:"expenses,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
}

// ToResponse converts a domain batch. Lines are included when loaded.
func ToResponse(m *manufacturing.Invoice) Response {
	resp := Response{
		ID:                m.ID,
		InvoiceNumber:     m.Number,
		WarehouseID:       m.WarehouseID,
		BlendName:         m.BlendName,
		MaterialNameID:    m.MaterialNameID,
		UnitID:            m.UnitID,
		Quantity:          m.Quantity,
		ManufacturingDate: m.Date.Format(shared.DateLayout),
		ManufacturingTime: m.Time,
		TotalValue:        m.TotalValue,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
	}
	if len(m.Items) > 0 {
		resp.Items = make([]ItemResponse, len(m.Items))
		for i, it := range m.Items {
			resp.Items[i] = ItemResponse{
				ID:             it.ID,
				InvoiceID:      it.InvoiceID,
				MaterialNameID: it.MaterialNameID,
				UnitID:         it.UnitID,
				Quantity:       it.Quantity,
				BlendCount:     it.BlendCount,
				Weight:         it.Weight,
				Price:          it.Price,
				Value:          it.Value,
			}
		}
	}
	if len(m.Expenses) > 0 {
		resp.Expenses = ledger.ToExpenseResponses(m.Expenses)
	}
	return resp
}
