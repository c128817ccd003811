package models

import (
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// UnitModel is the measurement_units table
type UnitModel struct {
	BaseModel
	Name string `gorm:"size:100;not null;uniqueIndex"`
}

// TableName returns the table name
func (UnitModel) TableName() string { return "measurement_units" }

// ToDomain converts the row to a domain unit
func (m *UnitModel) ToDomain() *inventory.Unit {
	return &inventory.Unit{BaseEntity: m.BaseModel.ToDomain(), Name: m.Name}
}

// MaterialNameModel is the materials_names table
type MaterialNameModel struct {
	BaseModel
	Name string `gorm:"size:200;not null;uniqueIndex"`
}

// TableName returns the table name
func (MaterialNameModel) TableName() string { return "materials_names" }

// ToDomain converts the row to a domain material name
func (m *MaterialNameModel) ToDomain() *inventory.MaterialName {
	return &inventory.MaterialName{BaseEntity: m.BaseModel.ToDomain(), Name: m.Name}
}

// MaterialModel is the materials table
type MaterialModel struct {
	BaseModel
	WarehouseID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_material_warehouse_name"`
	MaterialNameID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_material_warehouse_name"`
	UnitID         *uuid.UUID      `gorm:"type:uuid"`
	OpeningBalance decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
	Purchases      decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
	Sales          decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
	Consumption    decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
	Manufacturing  decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
	CurrentBalance decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
}

// TableName returns the table name
func (MaterialModel) TableName() string { return "materials" }

// ToDomain converts the row to a domain material
func (m *MaterialModel) ToDomain() *inventory.Material {
	return &inventory.Material{
		BaseEntity:     m.BaseModel.ToDomain(),
		WarehouseID:    m.WarehouseID,
		MaterialNameID: m.MaterialNameID,
		UnitID:         m.UnitID,
		Movements: inventory.Movements{
			OpeningBalance: m.OpeningBalance,
			Purchases:      m.Purchases,
			Sales:          m.Sales,
			Consumption:    m.Consumption,
			Manufacturing:  m.Manufacturing,
		},
		CurrentBalance: m.CurrentBalance,
	}
}

// MaterialModelFromDomain converts a domain material to a row
func MaterialModelFromDomain(mat *inventory.Material) *MaterialModel {
	m := &MaterialModel{
		WarehouseID:    mat.WarehouseID,
		MaterialNameID: mat.MaterialNameID,
		UnitID:         mat.UnitID,
		OpeningBalance: mat.OpeningBalance,
		Purchases:      mat.Purchases,
		Sales:          mat.Sales,
		Consumption:    mat.Consumption,
		Manufacturing:  mat.Manufacturing,
		CurrentBalance: mat.CurrentBalance,
	}
	m.FromDomainBaseEntity(mat.BaseEntity)
	return m
}

// UnitModelFromDomain converts a domain unit to a row
func UnitModelFromDomain(u *inventory.Unit) *UnitModel {
	m := &UnitModel{Name: u.Name}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}

// MaterialNameModelFromDomain converts a domain material name to a row
func MaterialNameModelFromDomain(mn *inventory.MaterialName) *MaterialNameModel {
	m := &MaterialNameModel{Name: mn.Name}
	m.FromDomainBaseEntity(mn.BaseEntity)
	return m
}
