package catalog

import (
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/catalog"
)

// CreateMedicineRequest adds a medicine
type CreateMedicineRequest struct {
	Name                string `json:"name" binding:"required,max=200"`
	Description         string `json:"description"`
	DayOfAdministration *int   `json:"day_of_administration" binding:"omitempty,gte=0"`
}

// MedicineResponse is a medicine in API responses
type MedicineResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	DayOfAdministration *int      `json:"day_of_administration,omitempty"`
}

// ToMedicineResponse converts a domain medicine
func ToMedicineResponse(m *catalog.Medicine) MedicineResponse {
	return MedicineResponse{
		ID:                  m.ID,
		Name:                m.Name,
		Description:         m.Description,
		DayOfAdministration: m.DayOfAdministration,
	}
}

// CreateExpenseTypeRequest adds an expense type
type CreateExpenseTypeRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// ExpenseTypeResponse is an expense type in API responses
type ExpenseTypeResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
