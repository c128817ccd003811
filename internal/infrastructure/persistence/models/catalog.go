package models

import (
	"github.com/kdirani/farms/internal/domain/catalog"
)

// MedicineModel is the medicines table
type MedicineModel struct {
	BaseModel
	Name                string `gorm:"size:200;not null;uniqueIndex"`
	Description         string `gorm:"type:text"`
	DayOfAdministration *int
}

// TableName returns the table name
func (MedicineModel) TableName() string { return "medicines" }

// ToDomain converts the row to a domain medicine
func (m *MedicineModel) ToDomain() *catalog.Medicine {
	return &catalog.Medicine{
		BaseEntity:          m.BaseModel.ToDomain(),
		Name:                m.Name,
		Description:         m.Description,
		DayOfAdministration: m.DayOfAdministration,
	}
}

// MedicineModelFromDomain converts a domain medicine to a row
func MedicineModelFromDomain(med *catalog.Medicine) *MedicineModel {
	m := &MedicineModel{Name: med.Name, Description: med.Description, DayOfAdministration: med.DayOfAdministration}
	m.FromDomainBaseEntity(med.BaseEntity)
	return m
}

// ExpenseTypeModel is the expense_types table
type ExpenseTypeModel struct {
	BaseModel
	Name string `gorm:"size:200;not null;uniqueIndex"`
}

// TableName returns the table name
func (ExpenseTypeModel) TableName() string { return "expense_types" }

// ToDomain converts the row to a domain expense type
func (m *ExpenseTypeModel) ToDomain() *catalog.ExpenseType {
	return &catalog.ExpenseType{BaseEntity: m.BaseModel.ToDomain(), Name: m.Name}
}

// ExpenseTypeModelFromDomain converts a domain expense type to a row
func ExpenseTypeModelFromDomain(e *catalog.ExpenseType) *ExpenseTypeModel {
	m := &ExpenseTypeModel{Name: e.Name}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}
