package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ExpenseInput is an expense line as entered by the user
type ExpenseInput struct {
	ExpenseTypeID uuid.UUID       `json:"expense_type_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"decimal_gte0"`
	AccountName   string          `json:"account_name" binding:"max=200"`
}

// ExpenseResponse is an expense line returned to callers
type ExpenseResponse struct {
	ID            uuid.UUID       `json:"id"`
	OwnerID       uuid.UUID       `json:"invoice_id"`
	ExpenseTypeID uuid.UUID       `json:"expense_type_id"`
	Amount        decimal.Decimal `json:"amount"`
	AccountName   string          `json:"account_name,omitempty"`
}

// ToExpenseResponse converts a domain expense
func ToExpenseResponse(e *document.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		ExpenseTypeID: e.ExpenseTypeID,
		Amount:        e.Amount,
		AccountName:   e.AccountName,
	}
}

// ToExpenseResponses converts a slice of domain expenses
func ToExpenseResponses(expenses []document.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = ToExpenseResponse(&expenses[i])
	}
	return out
}

// LineChange is returned after an item or expense write
type LineChange struct {
	ID         uuid.UUID       `json:"id"`
	OwnerID    uuid.UUID       `json:"invoice_id"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// ExpenseService adds and removes expense lines on any record kind that
// carries a total.
type ExpenseService struct {
	scope    TransactionScope
	expenses document.ExpenseRepository
	pages    action.Invalidator
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(scope TransactionScope, expenses document.ExpenseRepository, pages action.Invalidator) *ExpenseService {
	return &ExpenseService{scope: scope, expenses: expenses, pages: pages}
}

func requireTotalKind(kind document.Kind) error {
	if !kind.HasTotal() {
		return shared.Invalid("expenses are not supported for " + string(kind))
	}
	return nil
}

// List returns the expense lines of a record
func (s *ExpenseService) List(ctx context.Context, kind document.Kind, ownerID uuid.UUID) ([]ExpenseResponse, error) {
	if err := requireTotalKind(kind); err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListByOwner(ctx, kind, ownerID)
	if err != nil {
		return nil, err
	}
	return ToExpenseResponses(expenses), nil
}

// Add inserts an expense line and recomputes the record total
func (s *ExpenseService) Add(ctx context.Context, kind document.Kind, ownerID uuid.UUID, in ExpenseInput) (*LineChange, error) {
	if err := requireTotalKind(kind); err != nil {
		return nil, err
	}
	expense, err := document.NewExpense(ownerID, in.ExpenseTypeID, in.Amount, in.AccountName)
	if err != nil {
		return nil, err
	}

	total, err := Mutate(ctx, s.scope, kind, ownerID, func(repos Repositories) error {
		return repos.Expenses().Add(ctx, kind, expense)
	})
	if err != nil {
		return nil, err
	}

	action.Invalidate(ctx, s.pages, kind.Pages()...)
	return &LineChange{ID: expense.ID, OwnerID: ownerID, TotalValue: total}, nil
}

// Delete removes an expense line of record ownerID and recomputes its total.
// A line of another record is reported as not found.
func (s *ExpenseService) Delete(ctx context.Context, kind document.Kind, ownerID, expenseID uuid.UUID) (*LineChange, error) {
	if err := requireTotalKind(kind); err != nil {
		return nil, err
	}
	expense, err := s.expenses.FindByID(ctx, kind, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.OwnerID != ownerID {
		return nil, shared.NotFound("expense")
	}

	total, err := Mutate(ctx, s.scope, kind, expense.OwnerID, func(repos Repositories) error {
		return repos.Expenses().Delete(ctx, kind, expenseID)
	})
	if err != nil {
		return nil, err
	}

	action.Invalidate(ctx, s.pages, kind.Pages()...)
	return &LineChange{ID: expenseID, OwnerID: expense.OwnerID, TotalValue: total}, nil
}
