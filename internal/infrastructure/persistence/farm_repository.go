package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/farm"
	"github.com/kdirani/farms/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormFarmRepository implements farm.FarmRepository using GORM
type GormFarmRepository struct {
	db *gorm.DB
}

// NewGormFarmRepository creates a new GormFarmRepository
func NewGormFarmRepository(db *gorm.DB) *GormFarmRepository {
	return &GormFarmRepository{db: db}
}

// FindByID finds a farm by its ID
func (r *GormFarmRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.Farm, error) {
	var m models.FarmModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "farm")
	}
	return m.ToDomain(), nil
}

// FindAll lists farms by name
func (r *GormFarmRepository) FindAll(ctx context.Context) ([]farm.Farm, error) {
	var rows []models.FarmModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]farm.Farm, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save inserts or updates a farm
func (r *GormFarmRepository) Save(ctx context.Context, f *farm.Farm) error {
	return translateError(r.db.WithContext(ctx).Save(models.FarmModelFromDomain(f)).Error, "farm")
}

// Delete removes a farm
func (r *GormFarmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.FarmModel{}, id, "farm")
}

// GormWarehouseRepository implements farm.WarehouseRepository using GORM
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GormWarehouseRepository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// FindByID finds a warehouse by its ID
func (r *GormWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.Warehouse, error) {
	var m models.WarehouseModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "warehouse")
	}
	return m.ToDomain(), nil
}

// FindAll lists warehouses, optionally for one farm
func (r *GormWarehouseRepository) FindAll(ctx context.Context, farmID *uuid.UUID) ([]farm.Warehouse, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if farmID != nil {
		q = q.Where("farm_id = ?", *farmID)
	}
	var rows []models.WarehouseModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]farm.Warehouse, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save inserts or updates a warehouse
func (r *GormWarehouseRepository) Save(ctx context.Context, w *farm.Warehouse) error {
	return translateError(r.db.WithContext(ctx).Omit("Farm").Save(models.WarehouseModelFromDomain(w)).Error, "warehouse")
}

// Delete removes a warehouse
func (r *GormWarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.WarehouseModel{}, id, "warehouse")
}

// GormPoultryStatusRepository implements farm.PoultryStatusRepository using GORM
type GormPoultryStatusRepository struct {
	db *gorm.DB
}

// NewGormPoultryStatusRepository creates a new GormPoultryStatusRepository
func NewGormPoultryStatusRepository(db *gorm.DB) *GormPoultryStatusRepository {
	return &GormPoultryStatusRepository{db: db}
}

// FindByID finds a poultry batch by its ID
func (r *GormPoultryStatusRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.PoultryStatus, error) {
	var m models.PoultryStatusModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "poultry status")
	}
	return m.ToDomain(), nil
}

// FindAll lists poultry batches, optionally for one farm
func (r *GormPoultryStatusRepository) FindAll(ctx context.Context, farmID *uuid.UUID) ([]farm.PoultryStatus, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if farmID != nil {
		q = q.Where("farm_id = ?", *farmID)
	}
	var rows []models.PoultryStatusModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]farm.PoultryStatus, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save inserts or updates a poultry batch
func (r *GormPoultryStatusRepository) Save(ctx context.Context, p *farm.PoultryStatus) error {
	return translateError(r.db.WithContext(ctx).Omit("Farm").Save(models.PoultryStatusModelFromDomain(p)).Error, "poultry status")
}

// Delete removes a poultry batch
func (r *GormPoultryStatusRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.PoultryStatusModel{}, id, "poultry status")
}

var (
	_ farm.FarmRepository          = (*GormFarmRepository)(nil)
	_ farm.WarehouseRepository     = (*GormWarehouseRepository)(nil)
	_ farm.PoultryStatusRepository = (*GormPoultryStatusRepository)(nil)
)
