package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/manufacturing"
	"github.com/kdirani/farms/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormManufacturingRepository implements manufacturing.Repository using GORM
type GormManufacturingRepository struct {
	db       *gorm.DB
	expenses *GormExpenseRepository
}

// NewGormManufacturingRepository creates a new GormManufacturingRepository
func NewGormManufacturingRepository(db *gorm.DB) *GormManufacturingRepository {
	return &GormManufacturingRepository{db: db, expenses: NewGormExpenseRepository(db)}
}

// Create inserts the batch with its items and expenses
func (r *GormManufacturingRepository) Create(ctx context.Context, m *manufacturing.Invoice) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(models.ManufacturingInvoiceModelFromDomain(m)).Error; err != nil {
		return translateError(err, "manufacturing invoice")
	}
	if len(m.Items) > 0 {
		rows := make([]*models.ManufacturingItemModel, len(m.Items))
		for i := range m.Items {
			rows[i] = models.ManufacturingItemModelFromDomain(&m.Items[i])
		}
		if err := db.Create(rows).Error; err != nil {
			return translateError(err, "manufacturing item")
		}
	}
	for i := range m.Expenses {
		if err := r.expenses.Add(ctx, document.KindManufacturing, &m.Expenses[i]); err != nil {
			return err
		}
	}
	return nil
}

// FindByID loads a batch with its items and expenses
func (r *GormManufacturingRepository) FindByID(ctx context.Context, id uuid.UUID) (*manufacturing.Invoice, error) {
	var m models.ManufacturingInvoiceModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "manufacturing invoice")
	}
	out := m.ToDomain()

	var items []models.ManufacturingItemModel
	if err := r.db.WithContext(ctx).Where("invoice_id = ?", id).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	out.Items = make([]manufacturing.Item, len(items))
	for i := range items {
		out.Items[i] = *items[i].ToDomain()
	}
	expenses, err := r.expenses.ListByOwner(ctx, document.KindManufacturing, id)
	if err != nil {
		return nil, err
	}
	out.Expenses = expenses
	return out, nil
}

// FindAll lists batch headers, newest first
func (r *GormManufacturingRepository) FindAll(ctx context.Context, warehouseID *uuid.UUID) ([]manufacturing.Invoice, error) {
	q := r.db.WithContext(ctx).Order("manufacturing_date DESC, invoice_number DESC")
	if warehouseID != nil {
		q = q.Where("warehouse_id = ?", *warehouseID)
	}
	var rows []models.ManufacturingInvoiceModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]manufacturing.Invoice, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Delete removes the batch with its items and expenses
func (r *GormManufacturingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("invoice_id = ?", id).Delete(&models.ManufacturingItemModel{}).Error; err != nil {
		return err
	}
	if err := r.expenses.DeleteByOwner(ctx, document.KindManufacturing, id); err != nil {
		return err
	}
	return deleteByID(db, &models.ManufacturingInvoiceModel{}, id, "manufacturing invoice")
}

// AddItem inserts an item
func (r *GormManufacturingRepository) AddItem(ctx context.Context, item *manufacturing.Item) error {
	return translateError(r.db.WithContext(ctx).Create(models.ManufacturingItemModelFromDomain(item)).Error, "manufacturing item")
}

// FindItem loads an item
func (r *GormManufacturingRepository) FindItem(ctx context.Context, id uuid.UUID) (*manufacturing.Item, error) {
	var m models.ManufacturingItemModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "manufacturing item")
	}
	return m.ToDomain(), nil
}

// DeleteItem removes an item
func (r *GormManufacturingRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.ManufacturingItemModel{}, id, "manufacturing item")
}

var _ manufacturing.Repository = (*GormManufacturingRepository)(nil)
