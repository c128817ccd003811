package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormExpenseRepository implements document.ExpenseRepository. Each kind
// keeps its expenses in its own table with the same columns.
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// Add inserts an expense line
func (r *GormExpenseRepository) Add(ctx context.Context, kind document.Kind, e *document.Expense) error {
	table, err := expenseTable(kind)
	if err != nil {
		return err
	}
	return translateError(r.db.WithContext(ctx).Table(table).Create(models.ExpenseModelFromDomain(e)).Error, "expense")
}

// FindByID loads one expense line
func (r *GormExpenseRepository) FindByID(ctx context.Context, kind document.Kind, id uuid.UUID) (*document.Expense, error) {
	table, err := expenseTable(kind)
	if err != nil {
		return nil, err
	}
	var m models.ExpenseModel
	if err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, translateError(err, "expense")
	}
	return m.ToDomain(), nil
}

// ListByOwner lists the expense lines of one record
func (r *GormExpenseRepository) ListByOwner(ctx context.Context, kind document.Kind, ownerID uuid.UUID) ([]document.Expense, error) {
	table, err := expenseTable(kind)
	if err != nil {
		return nil, err
	}
	var rows []models.ExpenseModel
	if err := r.db.WithContext(ctx).Table(table).
		Where("invoice_id = ?", ownerID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]document.Expense, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Delete removes one expense line
func (r *GormExpenseRepository) Delete(ctx context.Context, kind document.Kind, id uuid.UUID) error {
	table, err := expenseTable(kind)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Delete(&models.ExpenseModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.NotFound("expense")
	}
	return nil
}

// DeleteByOwner removes every expense line of a record
func (r *GormExpenseRepository) DeleteByOwner(ctx context.Context, kind document.Kind, ownerID uuid.UUID) error {
	table, err := expenseTable(kind)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Table(table).Where("invoice_id = ?", ownerID).Delete(&models.ExpenseModel{}).Error
}

var _ document.ExpenseRepository = (*GormExpenseRepository)(nil)
