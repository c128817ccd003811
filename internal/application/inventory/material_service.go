package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/domain/inventory"
	"github.com/kdirani/farms/internal/domain/shared"
)

// PageMaterials lists materials, units and material names
const PageMaterials = "/materials"

// MaterialService manages units, material names and warehouse materials
type MaterialService struct {
	units     inventory.UnitRepository
	names     inventory.MaterialNameRepository
	materials inventory.MaterialRepository
	pages     action.Invalidator
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(
	units inventory.UnitRepository,
	names inventory.MaterialNameRepository,
	materials inventory.MaterialRepository,
	pages action.Invalidator,
) *MaterialService {
	return &MaterialService{units: units, names: names, materials: materials, pages: pages}
}

// CreateUnit adds a unit of measure
func (s *MaterialService) CreateUnit(ctx context.Context, req NameRequest) (*NamedResponse, error) {
	u, err := inventory.NewUnit(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.units.Save(ctx, u); err != nil {
		return nil, err
	}
	action.Invalidate(ctx, s.pages, PageMaterials)
	return &NamedResponse{ID: u.ID, Name: u.Name}, nil
}

// ListUnits lists units of measure
func (s *MaterialService) ListUnits(ctx context.Context) ([]NamedResponse, error) {
	units, err := s.units.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]NamedResponse, len(units))
	for i, u := range units {
		out[i] = NamedResponse{ID: u.ID, Name: u.Name}
	}
	return out, nil
}

// DeleteUnit removes a unit of measure
func (s *MaterialService) DeleteUnit(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if err := s.units.Delete(ctx, id); err != nil {
		return uuid.Nil, err
	}
	action.Invalidate(ctx, s.pages, PageMaterials)
	return id, nil
}

// CreateMaterialName adds a material name to the catalog
func (s *MaterialService) CreateMaterialName(ctx context.Context, req NameRequest) (*NamedResponse, error) {
	n, err := inventory.NewMaterialName(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.names.Save(ctx, n); err != nil {
		return nil, err
	}
	action.Invalidate(ctx, s.pages, PageMaterials)
	return &NamedResponse{ID: n.ID, Name: n.Name}, nil
}

// ListMaterialNames lists material names
func (s *MaterialService) ListMaterialNames(ctx context.Context) ([]NamedResponse, error) {
	names, err := s.names.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]NamedResponse, len(names))
	for i, n := range names {
		out[i] = NamedResponse{ID: n.ID, Name: n.Name}
	}
	return out, nil
}

// DeleteMaterialName removes a material name
func (s *MaterialService) DeleteMaterialName(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if err := s.names.Delete(ctx, id); err != nil {
		return uuid.Nil, err
	}
	action.Invalidate(ctx, s.pages, PageMaterials)
	return id, nil
}

// CreateMaterial stocks a material in a warehouse. A warehouse holds at most
// one row per material name.
func (s *MaterialService) CreateMaterial(ctx context.Context, req CreateMaterialRequest) (*MaterialResponse, error) {
	m, err := inventory.NewMaterial(req.WarehouseID, req.MaterialNameID, req.UnitID, req.toDomain())
	if err != nil {
		return nil, err
	}
	exists, err := s.materials.ExistsInWarehouse(ctx, req.WarehouseID, req.MaterialNameID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("CONFLICT", "material already exists in this warehouse")
	}
	if err := s.materials.Save(ctx, m); err != nil {
		return nil, err
	}
	action.Invalidate(ctx, s.pages, PageMaterials)
	resp := ToMaterialResponse(m)
	return &resp, nil
}

// ListMaterials lists materials, optionally of one warehouse
func (s *MaterialService) ListMaterials(ctx context.Context, warehouseID *uuid.UUID) ([]MaterialResponse, error) {
	rows, err := s.materials.FindAll(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]MaterialResponse, len(rows))
	for i := range rows {
		out[i] = ToMaterialResponse(&rows[i])
	}
	return out, nil
}

// GetMaterial returns one material
func (s *MaterialService) GetMaterial(ctx context.Context, id uuid.UUID) (*MaterialResponse, error) {
	m, err := s.materials.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToMaterialResponse(m)
	return &resp, nil
}

// UpdateMaterial replaces the unit and balance columns and recomputes the
// current balance.
func (s *MaterialService) UpdateMaterial(ctx context.Context, id uuid.UUID, req UpdateMaterialRequest) (*MaterialResponse, error) {
	m, err := s.materials.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.SetMovements(req.toDomain()); err != nil {
		return nil, err
	}
	m.UnitID = req.UnitID
	if err := s.materials.Save(ctx, m); err != nil {
		return nil, err
	}
	action.Invalidate(ctx, s.pages, PageMaterials)
	resp := ToMaterialResponse(m)
	return &resp, nil
}

// DeleteMaterial removes a material row
func (s *MaterialService) DeleteMaterial(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if err := s.materials.Delete(ctx, id); err != nil {
		return uuid.Nil, err
	}
	action.Invalidate(ctx, s.pages, PageMaterials)
	return id, nil
}
