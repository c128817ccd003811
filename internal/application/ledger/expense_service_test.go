package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Add(ctx context.Context, kind document.Kind, expense *document.Expense) error {
	return m.Called(ctx, kind, expense).Error(0)
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, kind document.Kind, id uuid.UUID) (*document.Expense, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListByOwner(ctx context.Context, kind document.Kind, ownerID uuid.UUID) ([]document.Expense, error) {
	args := m.Called(ctx, kind, ownerID)
	return args.Get(0).([]document.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, kind document.Kind, id uuid.UUID) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *MockExpenseRepository) DeleteByOwner(ctx context.Context, kind document.Kind, ownerID uuid.UUID) error {
	return m.Called(ctx, kind, ownerID).Error(0)
}

type MockTotalRecomputer struct {
	mock.Mock
}

func (m *MockTotalRecomputer) Lock(ctx context.Context, kind document.Kind, ownerID uuid.UUID) error {
	return m.Called(ctx, kind, ownerID).Error(0)
}

func (m *MockTotalRecomputer) Recompute(ctx context.Context, kind document.Kind, ownerID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, kind, ownerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type countingInvalidator struct {
	prefixes []string
}

func (c *countingInvalidator) InvalidatePrefix(_ context.Context, prefix string) error {
	c.prefixes = append(c.prefixes, prefix)
	return nil
}

func newExpenseService() (*ExpenseService, *MockExpenseRepository, *MockTotalRecomputer, *countingInvalidator) {
	expenses := new(MockExpenseRepository)
	totals := new(MockTotalRecomputer)
	pages := &countingInvalidator{}
	scope := NewNoOpTransactionScope(nil, nil, nil, expenses, totals)
	return NewExpenseService(scope, expenses, pages), expenses, totals, pages
}

func TestRequireTotalKind(t *testing.T) {
	tests := []struct {
		kind    document.Kind
		wantErr bool
	}{
		{document.KindInvoice, false},
		{document.KindManufacturing, false},
		{document.KindMedicineConsumption, false},
		{document.KindDailyReport, true},
		{document.Kind("unknown"), true},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := requireTotalKind(tt.kind)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, "INVALID_INPUT", shared.ErrorCode(err))
		})
	}
}

func TestExpenseService_RejectsKindsWithoutTotal(t *testing.T) {
	ctx := context.Background()
	svc, expenses, totals, _ := newExpenseService()
	ownerID := uuid.New()

	_, err := svc.List(ctx, document.KindDailyReport, ownerID)
	assert.Equal(t, "INVALID_INPUT", shared.ErrorCode(err))
	_, err = svc.Add(ctx, document.KindDailyReport, ownerID, ExpenseInput{ExpenseTypeID: uuid.New(), Amount: decimal.NewFromInt(1)})
	assert.Equal(t, "INVALID_INPUT", shared.ErrorCode(err))
	_, err = svc.Delete(ctx, document.KindDailyReport, ownerID, uuid.New())
	assert.Equal(t, "INVALID_INPUT", shared.ErrorCode(err))

	expenses.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	totals.AssertNotCalled(t, "Lock", mock.Anything, mock.Anything, mock.Anything)
}

func TestExpenseService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	expenseID := uuid.New()
	kind := document.KindInvoice
	stored := &document.Expense{
		BaseEntity: shared.BaseEntity{ID: expenseID},
		OwnerID:    ownerID,
		Amount:     decimal.NewFromInt(5),
	}

	tests := []struct {
		name      string
		ownerID   uuid.UUID
		found     *document.Expense
		findErr   error
		deleteErr error
		wantCode  string
		wantTotal decimal.Decimal
	}{
		{
			name:     "missing expense",
			ownerID:  ownerID,
			findErr:  shared.NotFound("expense"),
			wantCode: "NOT_FOUND",
		},
		{
			name:     "expense of another record",
			ownerID:  uuid.New(),
			found:    stored,
			wantCode: "NOT_FOUND",
		},
		{
			name:      "repository failure rolls back",
			ownerID:   ownerID,
			found:     stored,
			deleteErr: errors.New("connection reset"),
			wantCode:  "INTERNAL_ERROR",
		},
		{
			name:      "deletes and recomputes the owner total",
			ownerID:   ownerID,
			found:     stored,
			wantTotal: decimal.RequireFromString("12.5"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, expenses, totals, pages := newExpenseService()
			if tt.found != nil {
				expenses.On("FindByID", ctx, kind, expenseID).Return(tt.found, nil)
			} else {
				expenses.On("FindByID", ctx, kind, expenseID).Return(nil, tt.findErr)
			}
			totals.On("Lock", ctx, kind, ownerID).Return(nil)
			expenses.On("Delete", ctx, kind, expenseID).Return(tt.deleteErr)
			totals.On("Recompute", ctx, kind, ownerID).Return(tt.wantTotal, nil)

			change, err := svc.Delete(ctx, kind, tt.ownerID, expenseID)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, shared.ErrorCode(err))
				assert.Nil(t, change)
				assert.Empty(t, pages.prefixes)
				if tt.deleteErr == nil {
					expenses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, expenseID, change.ID)
			assert.Equal(t, ownerID, change.OwnerID)
			assert.True(t, tt.wantTotal.Equal(change.TotalValue))
			assert.ElementsMatch(t, kind.Pages(), pages.prefixes)
			totals.AssertExpectations(t)
		})
	}
}

func TestExpenseService_Add(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	svc, expenses, totals, pages := newExpenseService()

	totals.On("Lock", ctx, document.KindManufacturing, ownerID).Return(nil)
	expenses.On("Add", ctx, document.KindManufacturing, mock.AnythingOfType("*document.Expense")).Return(nil)
	totals.On("Recompute", ctx, document.KindManufacturing, ownerID).Return(decimal.NewFromInt(30), nil)

	change, err := svc.Add(ctx, document.KindManufacturing, ownerID, ExpenseInput{
		ExpenseTypeID: uuid.New(),
		Amount:        decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, change.OwnerID)
	assert.True(t, decimal.NewFromInt(30).Equal(change.TotalValue))
	assert.NotEmpty(t, pages.prefixes)
}
