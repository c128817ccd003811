// Package inventory tracks material balances held in farm warehouses.
package inventory

import (
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Unit is a unit of measure (kg, carton, bag...)
type Unit struct {
	shared.BaseEntity
	Name string
}

// NewUnit creates a unit of measure
func NewUnit(name string) (*Unit, error) {
	n, err := shared.RequireName("unit name", name, 100)
	if err != nil {
		return nil, err
	}
	return &Unit{BaseEntity: shared.NewBaseEntity(), Name: n}, nil
}

// MaterialName is a catalog entry for a kind of material (feed, eggs, cartons)
type MaterialName struct {
	shared.BaseEntity
	Name string
}

// NewMaterialName creates a material name
func NewMaterialName(name string) (*MaterialName, error) {
	n, err := shared.RequireName("material name", name, 200)
	if err != nil {
		return nil, err
	}
	return &MaterialName{BaseEntity: shared.NewBaseEntity(), Name: n}, nil
}

// Movements groups the balance columns of a material.
type Movements struct {
	OpeningBalance decimal.Decimal
	Purchases      decimal.Decimal
	Sales          decimal.Decimal
	Consumption    decimal.Decimal
	Manufacturing  decimal.Decimal
}

// Material is the stock of one material in one warehouse.
//
// CurrentBalance = OpeningBalance + Purchases + Manufacturing - Sales - Consumption
type Material struct {
	shared.BaseEntity
	WarehouseID    uuid.UUID
	MaterialNameID uuid.UUID
	UnitID         *uuid.UUID
	Movements
	CurrentBalance decimal.Decimal
}

// NewMaterial creates a material row and derives its current balance
func NewMaterial(warehouseID, materialNameID uuid.UUID, unitID *uuid.UUID, m Movements) (*Material, error) {
	if warehouseID == uuid.Nil {
		return nil, shared.Invalid("warehouse id is required")
	}
	if materialNameID == uuid.Nil {
		return nil, shared.Invalid("material name id is required")
	}
	mat := &Material{
		BaseEntity:     shared.NewBaseEntity(),
		WarehouseID:    warehouseID,
		MaterialNameID: materialNameID,
		UnitID:         unitID,
	}
	if err := mat.SetMovements(m); err != nil {
		return nil, err
	}
	return mat, nil
}

// SetMovements replaces the balance columns and recomputes CurrentBalance
func (m *Material) SetMovements(mv Movements) error {
	for field, v := range map[string]decimal.Decimal{
		"opening balance": mv.OpeningBalance,
		"purchases":       mv.Purchases,
		"sales":           mv.Sales,
		"consumption":     mv.Consumption,
		"manufacturing":   mv.Manufacturing,
	} {
		if err := shared.RequireNonNegative(field, v); err != nil {
			return err
		}
	}
	m.Movements = mv
	m.CurrentBalance = CurrentBalance(mv)
	m.Touch()
	return nil
}

// CurrentBalance derives the balance from the movement columns
func CurrentBalance(mv Movements) decimal.Decimal {
	return mv.OpeningBalance.
		Add(mv.Purchases).
		Add(mv.Manufacturing).
		Sub(mv.Sales).
		Sub(mv.Consumption)
}
