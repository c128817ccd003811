package farm

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/farm"
)

// CreateFarmRequest creates a farm
type CreateFarmRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Location string `json:"location" binding:"max=500"`
}

// UpdateFarmRequest replaces the editable farm fields
type UpdateFarmRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Location string `json:"location" binding:"max=500"`
	IsActive *bool  `json:"is_active"`
}

// FarmResponse is a farm in API responses
type FarmResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Location  string     `json:"location,omitempty"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToFarmResponse converts a domain farm
func ToFarmResponse(f *farm.Farm) FarmResponse {
	return FarmResponse{
		ID:        f.ID,
		Name:      f.Name,
		Location:  f.Location,
		UserID:    f.UserID,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// CreateWarehouseRequest creates a warehouse on a farm
type CreateWarehouseRequest struct {
	FarmID uuid.UUID `json:"farm_id" binding:"required"`
	Name   string    `json:"name" binding:"required,max=200"`
}

// WarehouseResponse is a warehouse in API responses
type WarehouseResponse struct {
	ID     uuid.UUID `json:"id"`
	FarmID uuid.UUID `json:"farm_id"`
	Name   string    `json:"name"`
}

// ToWarehouseResponse converts a domain warehouse
func ToWarehouseResponse(w *farm.Warehouse) WarehouseResponse {
	return WarehouseResponse{ID: w.ID, FarmID: w.FarmID, Name: w.Name}
}

// CreatePoultryStatusRequest opens a new batch
type CreatePoultryStatusRequest struct {
	FarmID        uuid.UUID `json:"farm_id" binding:"required"`
	BatchName     string    `json:"batch_name" binding:"required,max=200"`
	OpeningChicks int       `json:"opening_chicks" binding:"gte=0"`
	DeadChicks    int       `json:"dead_chicks" binding:"gte=0"`
}

// PoultryStatusResponse is a batch in API responses
type PoultryStatusResponse struct {
	ID              uuid.UUID `json:"id"`
	FarmID          uuid.UUID `json:"farm_id"`
	BatchName       string    `json:"batch_name"`
	OpeningChicks   int       `json:"opening_chicks"`
	DeadChicks      int       `json:"dead_chicks"`
	RemainingChicks int       `json:"remaining_chicks"`
}

// ToPoultryStatusResponse converts a domain batch
func ToPoultryStatusResponse(p *farm.PoultryStatus) PoultryStatusResponse {
	return PoultryStatusResponse{
		ID:              p.ID,
		FarmID:          p.FarmID,
		BatchName:       p.BatchName,
		OpeningChicks:   p.OpeningChicks,
		DeadChicks:      p.DeadChicks,
		RemainingChicks: p.RemainingChicks,
	}
}
