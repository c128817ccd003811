package farm

import (
	"context"

	"github.com/google/uuid"
)

// FarmRepository persists farms
type FarmRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Farm, error)
	FindAll(ctx context.Context) ([]Farm, error)
	Save(ctx context.Context, f *Farm) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WarehouseRepository persists warehouses
type WarehouseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)
	FindAll(ctx context.Context, farmID *uuid.UUID) ([]Warehouse, error)
	Save(ctx context.Context, w *Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PoultryStatusRepository persists poultry batches
type PoultryStatusRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PoultryStatus, error)
	FindAll(ctx context.Context, farmID *uuid.UUID) ([]PoultryStatus, error)
	Save(ctx context.Context, p *PoultryStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
