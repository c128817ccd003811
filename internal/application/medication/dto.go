package medication

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/domain/medication"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemRequest is one medicine administered
type ItemRequest struct {
	MedicineID         uuid.UUID       `json:"medicine_id" binding:"required"`
	AdministrationDay  *int            `json:"administration_day" binding:"omitempty,min=0"`
	AdministrationDate string          `json:"administration_date" binding:"omitempty,datetime=2006-01-02"`
	Quantity           decimal.Decimal `json:"quantity" binding:"decimal_gte0"`
	Price              decimal.Decimal `json:"price" binding:"decimal_gte0"`
	Value              decimal.Decimal `json:"value" binding:"decimal_gte0"`
}

func (r ItemRequest) toDomain() (medication.ItemInput, error) {
	date, err := shared.ParseOptionalDate("administration_date", r.AdministrationDate)
	if err != nil {
		return medication.ItemInput{}, err
	}
	return medication.ItemInput{
		MedicineID:         r.MedicineID,
		AdministrationDay:  r.AdministrationDay,
		AdministrationDate: date,
		Quantity:           r.Quantity,
		Price:              r.Price,
		Value:              r.Value,
	}, nil
}

// CreateRequest creates a consumption invoice with its lines
type CreateRequest struct {
	InvoiceNumber   string                `json:"invoice_number" binding:"required,max=50"`
	WarehouseID     uuid.UUID             `json:"warehouse_id" binding:"required"`
	PoultryStatusID *uuid.UUID            `json:"poultry_status_id"`
	ConsumptionDate string                `json:"consumption_date" binding:"required,datetime=2006-01-02"`
	ConsumptionTime string                `json:"consumption_time" binding:"max=20"`
	Notes           string                `json:"notes" binding:"max=2000"`
	Items           []ItemRequest         `json:"items" binding:"omitempty,dive"`
	Expenses        []ledger.ExpenseInput `json:"expenses" binding:"omitempty,dive"`
}

// ItemResponse is a medicine line in API responses
type ItemResponse struct {
	ID                 uuid.UUID       `json:"id"`
	InvoiceID          uuid.UUID       `json:"invoice_id"`
	MedicineID         uuid.UUID       `json:"medicine_id"`
	AdministrationDay  *int            `json:"administration_day,omitempty"`
	AdministrationDate string          `json:"administration_date,omitempty"`
	Quantity           decimal.Decimal `json:"quantity"`
	Price              decimal.Decimal `json:"price"`
	Value              decimal.Decimal `json:"value"`
}

// Response is a consumption invoice in API responses
type Response struct {
	ID              uuid.UUID                `json:"id"`
	InvoiceNumber   string                   `json:"invoice_number"`
	WarehouseID     uuid.UUID                `json:"warehouse_id"`
	PoultryStatusID *uuid.UUID               `json:"poultry_status_id,omitempty"`
	ConsumptionDate string                   `json:"consumption_date"`
	ConsumptionTime string                   `json:"consumption_time,omitempty"`
	TotalValue      decimal.Decimal          `json:"total_value"`
	Notes           string                   `json:"notes,omitempty"`
	Items           []ItemResponse           `json:"items,omitempty"`
	Expenses        []ledger.ExpenseResponse `json:"expenses,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
}

// ToResponse converts a domain consumption invoice
func ToResponse(c *medication.Consumption) Response {
	resp := Response{
		ID:              c.ID,
		InvoiceNumber:   c.Number,
		WarehouseID:     c.WarehouseID,
		PoultryStatusID: c.PoultryStatusID,
		ConsumptionDate: c.Date.Format(shared.DateLayout),
		ConsumptionTime: c.Time,
		TotalValue:      c.TotalValue,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
	}
	for _, it := range c.Items {
		item := ItemResponse{
			ID:                it.ID,
			InvoiceID:         it.InvoiceID,
			MedicineID:        it.MedicineID,
			AdministrationDay: it.AdministrationDay,
			Quantity:          it.Quantity,
			Price:             it.Price,
			Value:             it.Value,
		}
		if it.AdministrationDate != nil {
			item.AdministrationDate = it.AdministrationDate.Format(shared.DateLayout)
		}
		resp.Items = append(resp.Items, item)
	}
	if len(c.Expenses) > 0 {
		resp.Expenses = ledger.ToExpenseResponses(c.Expenses)
	}
	return resp
}
