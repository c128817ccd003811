// Package ledger coordinates the line-level writes of invoice-like records:
// items and expenses change together with the stored total_value.
package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/invoice"
	"github.com/kdirani/farms/internal/domain/manufacturing"
	"github.com/kdirani/farms/internal/domain/medication"
	"github.com/shopspring/decimal"
)

// TransactionScope runs a function inside one database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}

// Repositories gives access to repositories bound to the current transaction
type Repositories interface {
	Invoices() invoice.Repository
	Manufacturing() manufacturing.Repository
	Consumptions() medication.Repository
	Expenses() document.ExpenseRepository
	Totals() document.TotalRecomputer
}

// Mutate locks the record, applies mutate and stores the recomputed total,
// all inside one transaction.
func Mutate(ctx context.Context, scope TransactionScope, kind document.Kind, ownerID uuid.UUID, mutate func(repos Repositories) error) (total decimal.Decimal, err error) {
	err = scope.Execute(ctx, func(repos Repositories) error {
		if err := repos.Totals().Lock(ctx, kind, ownerID); err != nil {
			return err
		}
		if err := mutate(repos); err != nil {
			return err
		}
		total, err = repos.Totals().Recompute(ctx, kind, ownerID)
		return err
	})
	return total, err
}

// NoOpTransactionScope hands out fixed repositories without a transaction.
// Tests and single-connection setups use it.
type NoOpTransactionScope struct {
	invoices      invoice.Repository
	manufacturing manufacturing.Repository
	consumptions  medication.Repository
	expenses      document.ExpenseRepository
	totals        document.TotalRecomputer
}

// NewNoOpTransactionScope creates a NoOpTransactionScope. Unused repositories may be nil.
func NewNoOpTransactionScope(
	invoices invoice.Repository,
	mfg manufacturing.Repository,
	consumptions medication.Repository,
	expenses document.ExpenseRepository,
	totals document.TotalRecomputer,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		invoices:      invoices,
		manufacturing: mfg,
		consumptions:  consumptions,
		expenses:      expenses,
		totals:        totals,
	}
}

// Execute runs fn directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos Repositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) Invoices() invoice.Repository            { return s.invoices }
func (s *NoOpTransactionScope) Manufacturing() manufacturing.Repository { return s.manufacturing }
func (s *NoOpTransactionScope) Consumptions() medication.Repository     { return s.consumptions }
func (s *NoOpTransactionScope) Expenses() document.ExpenseRepository    { return s.expenses }
func (s *NoOpTransactionScope) Totals() document.TotalRecomputer        { return s.totals }

var (
	_ TransactionScope = (*NoOpTransactionScope)(nil)
	_ Repositories     = (*NoOpTransactionScope)(nil)
)
