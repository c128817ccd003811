package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/catalog"
	"github.com/kdirani/farms/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormMedicineRepository implements catalog.MedicineRepository using GORM
type GormMedicineRepository struct {
	db *gorm.DB
}

// NewGormMedicineRepository creates a new GormMedicineRepository
func NewGormMedicineRepository(db *gorm.DB) *GormMedicineRepository {
	return &GormMedicineRepository{db: db}
}

// FindAll lists medicines by name
func (r *GormMedicineRepository) FindAll(ctx context.Context) ([]catalog.Medicine, error) {
	var rows []models.MedicineModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]catalog.Medicine, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save inserts or updates a medicine
func (r *GormMedicineRepository) Save(ctx context.Context, m *catalog.Medicine) error {
	return translateError(r.db.WithContext(ctx).Save(models.MedicineModelFromDomain(m)).Error, "medicine")
}

// Delete removes a medicine
func (r *GormMedicineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.MedicineModel{}, id, "medicine")
}

// GormExpenseTypeRepository implements catalog.ExpenseTypeRepository using GORM
type GormExpenseTypeRepository struct {
	db *gorm.DB
}

// NewGormExpenseTypeRepository creates a new GormExpenseTypeRepository
func NewGormExpenseTypeRepository(db *gorm.DB) *GormExpenseTypeRepository {
	return &GormExpenseTypeRepository{db: db}
}

// FindAll lists expense types by name
func (r *GormExpenseTypeRepository) FindAll(ctx context.Context) ([]catalog.ExpenseType, error) {
	var rows []models.ExpenseTypeModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]catalog.ExpenseType, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save inserts or updates an expense type
func (r *GormExpenseTypeRepository) Save(ctx context.Context, e *catalog.ExpenseType) error {
	return translateError(r.db.WithContext(ctx).Save(models.ExpenseTypeModelFromDomain(e)).Error, "expense type")
}

// Delete removes an expense type
func (r *GormExpenseTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.ExpenseTypeModel{}, id, "expense type")
}

var (
	_ catalog.MedicineRepository    = (*GormMedicineRepository)(nil)
	_ catalog.ExpenseTypeRepository = (*GormExpenseTypeRepository)(nil)
)
