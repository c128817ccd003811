package models

import (
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/farm"
)

// FarmModel is the farms table
type FarmModel struct {
	BaseModel
	Name     string     `gorm:"size:200;not null"`
	Location string     `gorm:"size:500"`
	UserID   *uuid.UUID `gorm:"type:uuid;index"`
	IsActive bool       `gorm:"not null;default:true"`
}

// TableName returns the table name
func (FarmModel) TableName() string { return "farms" }

// ToDomain converts the row to a domain farm
func (m *FarmModel) ToDomain() *farm.Farm {
	return &farm.Farm{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Location:   m.Location,
		UserID:     m.UserID,
		IsActive:   m.IsActive,
	}
}

// FarmModelFromDomain converts a domain farm to a row
func FarmModelFromDomain(f *farm.Farm) *FarmModel {
	m := &FarmModel{Name: f.Name, Location: f.Location, UserID: f.UserID, IsActive: f.IsActive}
	m.FromDomainBaseEntity(f.BaseEntity)
	return m
}

// WarehouseModel is the warehouses table
type WarehouseModel struct {
	BaseModel
	FarmID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Farm   *FarmModel `gorm:"foreignKey:FarmID;constraint:OnDelete:CASCADE"`
	Name   string     `gorm:"size:200;not null"`
}

// TableName returns the table name
func (WarehouseModel) TableName() string { return "warehouses" }

// ToDomain converts the row to a domain warehouse
func (m *WarehouseModel) ToDomain() *farm.Warehouse {
	return &farm.Warehouse{BaseEntity: m.BaseModel.ToDomain(), FarmID: m.FarmID, Name: m.Name}
}

// WarehouseModelFromDomain converts a domain warehouse to a row
func WarehouseModelFromDomain(w *farm.Warehouse) *WarehouseModel {
	m := &WarehouseModel{FarmID: w.FarmID, Name: w.Name}
	m.FromDomainBaseEntity(w.BaseEntity)
	return m
}

// PoultryStatusModel is the poultry_status table
type PoultryStatusModel struct {
	BaseModel
	FarmID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Farm            *FarmModel `gorm:"foreignKey:FarmID;constraint:OnDelete:CASCADE"`
	BatchName       string     `gorm:"size:200;not null"`
	OpeningChicks   int        `gorm:"not null;default:0"`
	DeadChicks      int        `gorm:"not null;default:0"`
	RemainingChicks int        `gorm:"not null;default:0"`
}

// TableName returns the table name
func (PoultryStatusModel) TableName() string { return "poultry_status" }

// ToDomain converts the row to a domain poultry status
func (m *PoultryStatusModel) ToDomain() *farm.PoultryStatus {
	return &farm.PoultryStatus{
		BaseEntity:      m.BaseModel.ToDomain(),
		FarmID:          m.FarmID,
		BatchName:       m.BatchName,
		OpeningChicks:   m.OpeningChicks,
		DeadChicks:      m.DeadChicks,
		RemainingChicks: m.RemainingChicks,
	}
}

// PoultryStatusModelFromDomain converts a domain poultry status to a row
func PoultryStatusModelFromDomain(p *farm.PoultryStatus) *PoultryStatusModel {
	m := &PoultryStatusModel{
		FarmID:          p.FarmID,
		BatchName:       p.BatchName,
		OpeningChicks:   p.OpeningChicks,
		DeadChicks:      p.DeadChicks,
		RemainingChicks: p.RemainingChicks,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}
