package inventory

import (
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// NameRequest creates a unit or a material name
type NameRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// NamedResponse is a unit or material name in API responses
type NamedResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// MovementsRequest carries the balance columns of a material
type MovementsRequest struct {
	OpeningBalance decimal.Decimal `json:"opening_balance" binding:"decimal_gte0"`
	Purchases      decimal.Decimal `json:"purchases" binding:"decimal_gte0"`
	Sales          decimal.Decimal `json:"sales" binding:"decimal_gte0"`
	Consumption    decimal.Decimal `json:"consumption" binding:"decimal_gte0"`
	Manufacturing  decimal.Decimal `json:"manufacturing" binding:"decimal_gte0"`
}

func (r MovementsRequest) toDomain() inventory.Movements {
	return inventory.Movements{
		OpeningBalance: r.OpeningBalance,
		Purchases:      r.Purchases,
		Sales:          r.Sales,
		Consumption:    r.Consumption,
		Manufacturing:  r.Manufacturing,
	}
}

// CreateMaterialRequest stocks a material in a warehouse
type CreateMaterialRequest struct {
	WarehouseID    uuid.UUID  `json:"warehouse_id" binding:"required"`
	MaterialNameID uuid.UUID  `json:"material_name_id" binding:"required"`
	UnitID         *uuid.UUID `json:"unit_id"`
	MovementsRequest
}

// UpdateMaterialRequest replaces the unit and balance columns
type UpdateMaterialRequest struct {
	UnitID *uuid.UUID `json:"unit_id"`
	MovementsRequest
}

// MaterialResponse is a material in API responses
type MaterialResponse struct {
	ID             uuid.UUID       `json:"id"`
	WarehouseID    uuid.UUID       `json:"warehouse_id"`
	MaterialNameID uuid.UUID       `json:"material_name_id"`
	UnitID         *uuid.UUID      `json:"unit_id,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Purchases      decimal.Decimal `json:"purchases"`
	Sales          decimal.Decimal `json:"sales"`
	Consumption    decimal.Decimal `json:"consumption"`
	Manufacturing  decimal.Decimal `json:"manufacturing"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// ToMaterialResponse converts a domain material
func ToMaterialResponse(m *inventory.Material) MaterialResponse {
	return MaterialResponse{
		ID:             m.ID,
		WarehouseID:    m.WarehouseID,
		MaterialNameID: m.MaterialNameID,
		UnitID:         m.UnitID,
		OpeningBalance: m.OpeningBalance,
		Purchases:      m.Purchases,
		Sales:          m.Sales,
		Consumption:    m.Consumption,
		Manufacturing:  m.Manufacturing,
		CurrentBalance: m.CurrentBalance,
	}
}
