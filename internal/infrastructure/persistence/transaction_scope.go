package persistence

import (
	"context"

	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/invoice"
	"github.com/kdirani/farms/internal/domain/manufacturing"
	"github.com/kdirani/farms/internal/domain/medication"
	"gorm.io/gorm"
)

// GormTransactionScope implements ledger.TransactionScope using GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction.
// An error from fn rolls the transaction back; success commits it.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos ledger.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories hands out repositories bound to one transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Invoices() invoice.Repository {
	return NewGormInvoiceRepository(r.tx)
}

func (r *gormTransactionalRepositories) Manufacturing() manufacturing.Repository {
	return NewGormManufacturingRepository(r.tx)
}

func (r *gormTransactionalRepositories) Consumptions() medication.Repository {
	return NewGormMedicationRepository(r.tx)
}

func (r *gormTransactionalRepositories) Expenses() document.ExpenseRepository {
	return NewGormExpenseRepository(r.tx)
}

func (r *gormTransactionalRepositories) Totals() document.TotalRecomputer {
	return NewGormTotalRecomputer(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ ledger.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements Repositories
var _ ledger.Repositories = (*gormTransactionalRepositories)(nil)
