package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/medication"
	"github.com/kdirani/farms/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormMedicationRepository implements medication.Repository using GORM
type GormMedicationRepository struct {
	db       *gorm.DB
	expenses *GormExpenseRepository
}

// NewGormMedicationRepository creates a new GormMedicationRepository
func NewGormMedicationRepository(db *gorm.DB) *GormMedicationRepository {
	return &GormMedicationRepository{db: db, expenses: NewGormExpenseRepository(db)}
}

// Create inserts the consumption invoice with its items and expenses
func (r *GormMedicationRepository) Create(ctx context.Context, c *medication.Consumption) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(models.MedicineConsumptionModelFromDomain(c)).Error; err != nil {
		return translateError(err, "medicine consumption")
	}
	if len(c.Items) > 0 {
		rows := make([]*models.MedicineConsumptionItemModel, len(c.Items))
		for i := range c.Items {
			rows[i] = models.MedicineConsumptionItemModelFromDomain(&c.Items[i])
		}
		if err := db.Create(rows).Error; err != nil {
			return translateError(err, "medicine consumption item")
		}
	}
	for i := range c.Expenses {
		if err := r.expenses.Add(ctx, document.KindMedicineConsumption, &c.Expenses[i]); err != nil {
			return err
		}
	}
	return nil
}

// FindByID loads a consumption invoice with its items and expenses
func (r *GormMedicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*medication.Consumption, error) {
	var m models.MedicineConsumptionModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "medicine consumption")
	}
	out := m.ToDomain()

	var items []models.MedicineConsumptionItemModel
	if err := r.db.WithContext(ctx).Where("invoice_id = ?", id).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	out.Items = make([]medication.Item, len(items))
	for i := range items {
		out.Items[i] = *items[i].ToDomain()
	}
	expenses, err := r.expenses.ListByOwner(ctx, document.KindMedicineConsumption, id)
	if err != nil {
		return nil, err
	}
	out.Expenses = expenses
	return out, nil
}

// FindAll lists consumption headers, newest first
func (r *GormMedicationRepository) FindAll(ctx context.Context, warehouseID *uuid.UUID) ([]medication.Consumption, error) {
	q := r.db.WithContext(ctx).Order("consumption_date DESC, invoice_number DESC")
	if warehouseID != nil {
		q = q.Where("warehouse_id = ?", *warehouseID)
	}
	var rows []models.MedicineConsumptionModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]medication.Consumption, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Delete removes the consumption invoice with its items and expenses
func (r *GormMedicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("invoice_id = ?", id).Delete(&models.MedicineConsumptionItemModel{}).Error; err != nil {
		return err
	}
	if err := r.expenses.DeleteByOwner(ctx, document.KindMedicineConsumption, id); err != nil {
		return err
	}
	return deleteByID(db, &models.MedicineConsumptionModel{}, id, "medicine consumption")
}

// AddItem inserts an item
func (r *GormMedicationRepository) AddItem(ctx context.Context, item *medication.Item) error {
	return translateError(r.db.WithContext(ctx).Create(models.MedicineConsumptionItemModelFromDomain(item)).Error, "medicine consumption item")
}

// FindItem loads an item
func (r *GormMedicationRepository) FindItem(ctx context.Context, id uuid.UUID) (*medication.Item, error) {
	var m models.MedicineConsumptionItemModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "medicine consumption item")
	}
	return m.ToDomain(), nil
}

// DeleteItem removes an item
func (r *GormMedicationRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.MedicineConsumptionItemModel{}, id, "medicine consumption item")
}

var _ medication.Repository = (*GormMedicationRepository)(nil)
