// Package farm holds the farm, warehouse and poultry batch actions.
package farm

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/domain/farm"
)

// Page paths listing farm data
const (
	PageFarms      = "/farms"
	PageWarehouses = "/warehouses"
	PagePoultry    = "/poultry"
)

// Service handles farms, their warehouses and poultry batches
type Service struct {
	farms      farm.FarmRepository
	warehouses farm.WarehouseRepository
	batches    farm.PoultryStatusRepository
	pages      action.Invalidator
}

// NewService creates a new farm Service
func NewService(
	farms farm.FarmRepository,
	warehouses farm.WarehouseRepository,
	batches farm.PoultryStatusRepository,
	pages action.Invalidator,
) *Service {
	return &Service{farms: farms, warehouses: warehouses, batches: batches, pages: pages}
}

// CreateFarm creates an active farm
func (s *Service) CreateFarm(ctx context.Context, req CreateFarmRequest) (*FarmResponse, error) {
	f, err := farm.NewFarm(req.Name, req.Location)
	if err != nil {
		return nil, err
	}
	if err := s.farms.Save(ctx, f); err != nil {
		return nil, err
	}
	action.Invalidate(ctx, s.pages, PageFarms)
	resp := ToFarmResponse(f)
	return &resp, nil
}

// ListFarms lists every farm
func (s *Service) ListFarms(ctx context.Context) ([]FarmResponse, error) {
	farms, err := s.farms.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]FarmResponse, len(farms))
	for i := range farms {
		out[i] = ToFarmResponse(&farms[i])
	}
	return out, nil
}

// GetFarm returns one farm
func (s *Service) GetFarm(ctx context.Context, id uuid.UUID) (*FarmResponse, error) {
	f, err := s.farms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToFarmResponse(f)
	return &resp, nil
}

// UpdateFarm replaces name, location and the active flag. A nil IsActive
// keeps the current value.
func (s *Service) UpdateFarm(ctx context.Context, id uuid.UUID, req UpdateFarmRequest) (*FarmResponse, error) {
	f, err := s.farms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	active := f.IsActive
	if req.IsActive != nil {
		active = *req.IsActive
	}
	if err := f.Update(req.Name, req.Location, active); err != nil {
		return nil, err
	}
	if err := s.farms.Save(ctx, f); err != nil {
		return nil, err
	}
	action.Invalidate(ctx, s.pages, PageFarms)
	resp := ToFarmResponse(f)
	return &resp, nil
}

// DeleteFarm removes a farm together with its warehouses and batches
func (s *Service) DeleteFarm(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if err := s.farms.Delete(ctx, id); err != nil {
		return uuid.Nil, err
	}
	action.Invalidate(ctx, s.pages, PageFarms, PageWarehouses, PagePoultry)
	return id, nil
}

// CreateWarehouse adds a warehouse to an existing farm
func (s *Service) CreateWarehouse(ctx context.Context, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	if _, err := s.farms.FindByID(ctx, req.FarmID); err != nil {
		return nil, err
	}
	w, err := farm.NewWarehouse(req.FarmID, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.warehouses.Save(ctx, w); err != nil {
		return nil, err
	}
	action.Invalidate(ctx, s.pages, PageWarehouses)
	resp := ToWarehouseResponse(w)
	return &resp, nil
}

// ListWarehouses lists warehouses, optionally of one farm
func (s *Service) ListWarehouses(ctx context.Context, farmID *uuid.UUID) ([]WarehouseResponse, error) {
	rows, err := s.warehouses.FindAll(ctx, farmID)
	if err != nil {
		return nil, err
	}
	out := make([]WarehouseResponse, len(rows))
	for i := range rows {
		out[i] = ToWarehouseResponse(&rows[i])
	}
	return out, nil
}

// DeleteWarehouse removes a warehouse
func (s *Service) DeleteWarehouse(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if err := s.warehouses.Delete(ctx, id); err != nil {
		return uuid.Nil, err
	}
	action.Invalidate(ctx, s.pages, PageWarehouses)
	return id, nil
}

// CreatePoultryStatus opens a batch on an existing farm
func (s *Service) CreatePoultryStatus(ctx context.Context, req CreatePoultryStatusRequest) (*PoultryStatusResponse, error) {
	if _, err := s.farms.FindByID(ctx, req.FarmID); err != nil {
		return nil, err
	}
	p, err := farm.NewPoultryStatus(req.FarmID, req.BatchName, req.OpeningChicks, req.DeadChicks)
	if err != nil {
		return nil, err
	}
	if err := s.batches.Save(ctx, p); err != nil {
		return nil, err
	}
	action.Invalidate(ctx, s.pages, PagePoultry)
	resp := ToPoultryStatusResponse(p)
	return &resp, nil
}

// ListPoultryStatuses lists batches, optionally of one farm
func (s *Service) ListPoultryStatuses(ctx context.Context, farmID *uuid.UUID) ([]PoultryStatusResponse, error) {
	rows, err := s.batches.FindAll(ctx, farmID)
	if err != nil {
		return nil, err
	}
	out := make([]PoultryStatusResponse, len(rows))
	for i := range rows {
		out[i] = ToPoultryStatusResponse(&rows[i])
	}
	return out, nil
}

// DeletePoultryStatus removes a batch
func (s *Service) DeletePoultryStatus(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if err := s.batches.Delete(ctx, id); err != nil {
		return uuid.Nil, err
	}
	action.Invalidate(ctx, s.pages, PagePoultry)
	return id, nil
}
