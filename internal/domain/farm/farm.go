// Package farm models farms, their warehouses and poultry batches.
package farm

import (
	"strings"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/shared"
)

// Farm is a physical farm, optionally assigned to a farmer
type Farm struct {
	shared.BaseEntity
	Name     string
	Location string
	UserID   *uuid.UUID
	IsActive bool
}

// NewFarm creates an active farm
func NewFarm(name, location string) (*Farm, error) {
	n, err := shared.RequireName("farm name", name, 200)
	if err != nil {
		return nil, err
	}
	return &Farm{
		BaseEntity: shared.NewBaseEntity(),
		Name:       n,
		Location:   strings.TrimSpace(location),
		IsActive:   true,
	}, nil
}

// Update replaces the editable fields
func (f *Farm) Update(name, location string, isActive bool) error {
	n, err := shared.RequireName("farm name", name, 200)
	if err != nil {
		return err
	}
	f.Name = n
	f.Location = strings.TrimSpace(location)
	f.IsActive = isActive
	f.Touch()
	return nil
}

// AssignUser sets or clears the farmer responsible for the farm
func (f *Farm) AssignUser(userID *uuid.UUID) {
	f.UserID = userID
	f.Touch()
}

// Warehouse stores materials for one farm
type Warehouse struct {
	shared.BaseEntity
	FarmID uuid.UUID
	Name   string
}

// NewWarehouse creates a warehouse belonging to farmID
func NewWarehouse(farmID uuid.UUID, name string) (*Warehouse, error) {
	if farmID == uuid.Nil {
		return nil, shared.Invalid("farm id is required")
	}
	n, err := shared.RequireName("warehouse name", name, 200)
	if err != nil {
		return nil, err
	}
	return &Warehouse{BaseEntity: shared.NewBaseEntity(), FarmID: farmID, Name: n}, nil
}
