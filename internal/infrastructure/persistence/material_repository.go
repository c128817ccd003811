package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/inventory"
	"github.com/kdirani/farms/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUnitRepository implements inventory.UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// FindAll lists units by name
func (r *GormUnitRepository) FindAll(ctx context.Context) ([]inventory.Unit, error) {
	var rows []models.UnitModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]inventory.Unit, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save inserts or updates a unit
func (r *GormUnitRepository) Save(ctx context.Context, u *inventory.Unit) error {
	return translateError(r.db.WithContext(ctx).Save(models.UnitModelFromDomain(u)).Error, "unit")
}

// Delete removes a unit
func (r *GormUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.UnitModel{}, id, "unit")
}

// GormMaterialNameRepository implements inventory.MaterialNameRepository using GORM
type GormMaterialNameRepository struct {
	db *gorm.DB
}

// NewGormMaterialNameRepository creates a new GormMaterialNameRepository
func NewGormMaterialNameRepository(db *gorm.DB) *GormMaterialNameRepository {
	return &GormMaterialNameRepository{db: db}
}

// FindAll lists material names
func (r *GormMaterialNameRepository) FindAll(ctx context.Context) ([]inventory.MaterialName, error) {
	var rows []models.MaterialNameModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]inventory.MaterialName, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save inserts or updates a material name
func (r *GormMaterialNameRepository) Save(ctx context.Context, m *inventory.MaterialName) error {
	return translateError(r.db.WithContext(ctx).Save(models.MaterialNameModelFromDomain(m)).Error, "material name")
}

// Delete removes a material name
func (r *GormMaterialNameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.MaterialNameModel{}, id, "material name")
}

// GormMaterialRepository implements inventory.MaterialRepository using GORM
type GormMaterialRepository struct {
	db *gorm.DB
}

// NewGormMaterialRepository creates a new GormMaterialRepository
func NewGormMaterialRepository(db *gorm.DB) *GormMaterialRepository {
	return &GormMaterialRepository{db: db}
}

// FindByID finds a material by its ID
func (r *GormMaterialRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Material, error) {
	var m models.MaterialModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "material")
	}
	return m.ToDomain(), nil
}

// FindAll lists materials, optionally for one warehouse
func (r *GormMaterialRepository) FindAll(ctx context.Context, warehouseID *uuid.UUID) ([]inventory.Material, error) {
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if warehouseID != nil {
		q = q.Where("warehouse_id = ?", *warehouseID)
	}
	var rows []models.MaterialModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]inventory.Material, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// ExistsInWarehouse reports whether the warehouse already tracks the material
func (r *GormMaterialRepository) ExistsInWarehouse(ctx context.Context, warehouseID, materialNameID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MaterialModel{}).
		Where("warehouse_id = ? AND material_name_id = ?", warehouseID, materialNameID).
		Count(&count).Error
	return count > 0, err
}

// Save inserts or updates a material
func (r *GormMaterialRepository) Save(ctx context.Context, m *inventory.Material) error {
	return translateError(r.db.WithContext(ctx).Save(models.MaterialModelFromDomain(m)).Error, "material")
}

// Delete removes a material
func (r *GormMaterialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.MaterialModel{}, id, "material")
}

var (
	_ inventory.UnitRepository         = (*GormUnitRepository)(nil)
	_ inventory.MaterialNameRepository = (*GormMaterialNameRepository)(nil)
	_ inventory.MaterialRepository     = (*GormMaterialRepository)(nil)
)
