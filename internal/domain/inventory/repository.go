package inventory

import (
	"context"

	"github.com/google/uuid"
)

// UnitRepository persists units of measure
type UnitRepository interface {
	FindAll(ctx context.Context) ([]Unit, error)
	Save(ctx context.Context, u *Unit) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MaterialNameRepository persists material names
type MaterialNameRepository interface {
	FindAll(ctx context.Context) ([]MaterialName, error)
	Save(ctx context.Context, m *MaterialName) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MaterialRepository persists warehouse materials
type MaterialRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Material, error)
	FindAll(ctx context.Context, warehouseID *uuid.UUID) ([]Material, error)
	ExistsInWarehouse(ctx context.Context, warehouseID, materialNameID uuid.UUID) (bool, error)
	Save(ctx context.Context, m *Material) error
	Delete(ctx context.Context, id uuid.UUID) error
}
