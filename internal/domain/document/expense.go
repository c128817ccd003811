package document

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Expense is an extra cost line attached to an invoice-like record.
type Expense struct {
	shared.BaseEntity
	OwnerID       uuid.UUID
	ExpenseTypeID uuid.UUID
	Amount        decimal.Decimal
	AccountName   string
}

// NewExpense validates and creates an expense line
func NewExpense(ownerID, expenseTypeID uuid.UUID, amount decimal.Decimal, accountName string) (*Expense, error) {
	if ownerID == uuid.Nil {
		return nil, shared.Invalid("owner id is required")
	}
	if expenseTypeID == uuid.Nil {
		return nil, shared.Invalid("expense type is required")
	}
	if err := shared.RequireNonNegative("amount", amount); err != nil {
		return nil, err
	}
	return &Expense{
		BaseEntity:    shared.NewBaseEntity(),
		OwnerID:       ownerID,
		ExpenseTypeID: expenseTypeID,
		Amount:        amount,
		AccountName:   strings.TrimSpace(accountName),
	}, nil
}

// ExpenseRepository stores expense lines in the table that belongs to each kind.
type ExpenseRepository interface {
	Add(ctx context.Context, kind Kind, expense *Expense) error
	FindByID(ctx context.Context, kind Kind, id uuid.UUID) (*Expense, error)
	ListByOwner(ctx context.Context, kind Kind, ownerID uuid.UUID) ([]Expense, error)
	Delete(ctx context.Context, kind Kind, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, kind Kind, ownerID uuid.UUID) error
}
