// Package catalog holds reference data: medicines and expense types.
package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/shared"
)

// Medicine is a veterinary product given to flocks
type Medicine struct {
	shared.BaseEntity
	Name                string
	Description         string
	DayOfAdministration *int
}

// NewMedicine creates a medicine entry
func NewMedicine(name, description string, day *int) (*Medicine, error) {
	n, err := shared.RequireName("medicine name", name, 200)
	if err != nil {
		return nil, err
	}
	if day != nil && *day < 0 {
		return nil, shared.Invalid("day of administration cannot be negative")
	}
	return &Medicine{
		BaseEntity:          shared.NewBaseEntity(),
		Name:                n,
		Description:         strings.TrimSpace(description),
		DayOfAdministration: day,
	}, nil
}

// ExpenseType classifies expense lines (transport, labour...)
type ExpenseType struct {
	shared.BaseEntity
	Name string
}

// NewExpenseType creates an expense type
func NewExpenseType(name string) (*ExpenseType, error) {
	n, err := shared.RequireName("expense type name", name, 200)
	if err != nil {
		return nil, err
	}
	return &ExpenseType{BaseEntity: shared.NewBaseEntity(), Name: n}, nil
}

// MedicineRepository persists medicines
type MedicineRepository interface {
	FindAll(ctx context.Context) ([]Medicine, error)
	Save(ctx context.Context, m *Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseTypeRepository persists expense types
type ExpenseTypeRepository interface {
	FindAll(ctx context.Context) ([]ExpenseType, error)
	Save(ctx context.Context, e *ExpenseType) error
	Delete(ctx context.Context, id uuid.UUID) error
}
