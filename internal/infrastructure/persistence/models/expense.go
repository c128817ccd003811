package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/shopspring/decimal"
)

// ExpenseModel is the row shape shared by invoice_expenses,
// manufacturing_invoice_expenses and medicine_consumption_expenses.
// The owning record is always referenced by invoice_id.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID     uuid.UUID       `gorm:"type:uuid;not null"`
	ExpenseTypeID uuid.UUID       `gorm:"type:uuid;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	AccountName   string          `gorm:"size:200"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// ToDomain converts the row to a domain expense
func (m *ExpenseModel) ToDomain() *document.Expense {
	e := &document.Expense{
		OwnerID:       m.InvoiceID,
		ExpenseTypeID: m.ExpenseTypeID,
		Amount:        m.Amount,
		AccountName:   m.AccountName,
	}
	e.ID = m.ID
	e.CreatedAt = m.CreatedAt
	e.UpdatedAt = m.UpdatedAt
	return e
}

// ExpenseModelFromDomain converts a domain expense to a row
func ExpenseModelFromDomain(e *document.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            e.ID,
		InvoiceID:     e.OwnerID,
		ExpenseTypeID: e.ExpenseTypeID,
		Amount:        e.Amount,
		AccountName:   e.AccountName,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
