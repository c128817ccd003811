package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	inventoryapp "github.com/kdirani/farms/internal/application/inventory"
)

// InventoryHandler handles units, material names and warehouse materials
type InventoryHandler struct {
	BaseHandler
	materials *inventoryapp.MaterialService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(materials *inventoryapp.MaterialService) *InventoryHandler {
	return &InventoryHandler{materials: materials}
}

// CreateUnit godoc
// @ID           createUnit
// @Summary      Create a unit of measure
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.NameRequest true "Unit"
// @Success      200 {object} APIResponse[inventoryapp.NamedResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /materials/units [post]
func (h *InventoryHandler) CreateUnit(c *gin.Context) {
	var req inventoryapp.NameRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreateUnit", func(ctx context.Context) (*inventoryapp.NamedResponse, error) {
		return h.materials.CreateUnit(ctx, req)
	})
}

// ListUnits godoc
// @ID           listUnits
// @Summary      List units of measure
// @Tags         materials
// @Produce      json
// @Success      200 {object} APIResponse[[]inventoryapp.NamedResponse]
// @Security     BearerAuth
// @Router       /materials/units [get]
func (h *InventoryHandler) ListUnits(c *gin.Context) {
	run(c, "ListUnits", h.materials.ListUnits)
}

// DeleteUnit godoc
// @ID           deleteUnit
// @Summary      Delete a unit of measure
// @Tags         materials
// @Produce      json
// @Param        id path string true "Unit ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /materials/units/{id} [delete]
func (h *InventoryHandler) DeleteUnit(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "DeleteUnit", func(ctx context.Context) (uuid.UUID, error) {
		return h.materials.DeleteUnit(ctx, id)
	})
}

// CreateMaterialName godoc
// @ID           createMaterialName
// @Summary      Create a material name
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.NameRequest true "Material name"
// @Success      200 {object} APIResponse[inventoryapp.NamedResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /materials/names [post]
func (h *InventoryHandler) CreateMaterialName(c *gin.Context) {
	var req inventoryapp.NameRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreateMaterialName", func(ctx context.Context) (*inventoryapp.NamedResponse, error) {
		return h.materials.CreateMaterialName(ctx, req)
	})
}

// ListMaterialNames godoc
// @ID           listMaterialNames
// @Summary      List material names
// @Tags         materials
// @Produce      json
// @Success      200 {object} APIResponse[[]inventoryapp.NamedResponse]
// @Security     BearerAuth
// @Router       /materials/names [get]
func (h *InventoryHandler) ListMaterialNames(c *gin.Context) {
	run(c, "ListMaterialNames", h.materials.ListMaterialNames)
}

// DeleteMaterialName godoc
// @ID           deleteMaterialName
// @Summary      Delete a material name
// @Tags         materials
// @Produce      json
// @Param        id path string true "Material name ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /materials/names/{id} [delete]
func (h *InventoryHandler) DeleteMaterialName(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "DeleteMaterialName", func(ctx context.Context) (uuid.UUID, error) {
		return h.materials.DeleteMaterialName(ctx, id)
	})
}

// CreateMaterial godoc
// @ID           createMaterial
// @Summary      Stock a material in a warehouse
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.CreateMaterialRequest true "Material"
// @Success      200 {object} APIResponse[inventoryapp.MaterialResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /materials [post]
func (h *InventoryHandler) CreateMaterial(c *gin.Context) {
	var req inventoryapp.CreateMaterialRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreateMaterial", func(ctx context.Context) (*inventoryapp.MaterialResponse, error) {
		return h.materials.CreateMaterial(ctx, req)
	})
}

// ListMaterials godoc
// @ID           listMaterials
// @Summary      List warehouse materials
// @Tags         materials
// @Produce      json
// @Param        warehouse_id query string false "Warehouse ID" format(uuid)
// @Success      200 {object} APIResponse[[]inventoryapp.MaterialResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /materials [get]
func (h *InventoryHandler) ListMaterials(c *gin.Context) {
	warehouseID, ok := h.QueryID(c, "warehouse_id")
	if !ok {
		return
	}
	run(c, "ListMaterials", func(ctx context.Context) ([]inventoryapp.MaterialResponse, error) {
		return h.materials.ListMaterials(ctx, warehouseID)
	})
}

// GetMaterial godoc
// @ID           getMaterial
// @Summary      Get a warehouse material
// @Tags         materials
// @Produce      json
// @Param        id path string true "Material ID" format(uuid)
// @Success      200 {object} APIResponse[inventoryapp.MaterialResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /materials/{id} [get]
func (h *InventoryHandler) GetMaterial(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "GetMaterial", func(ctx context.Context) (*inventoryapp.MaterialResponse, error) {
		return h.materials.GetMaterial(ctx, id)
	})
}

// UpdateMaterial godoc
// @ID           updateMaterial
// @Summary      Update the balances of a warehouse material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id      path string                             true "Material ID" format(uuid)
// @Param        request body inventoryapp.UpdateMaterialRequest true "Balances"
// @Success      200 {object} APIResponse[inventoryapp.MaterialResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /materials/{id} [put]
func (h *InventoryHandler) UpdateMaterial(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req inventoryapp.UpdateMaterialRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "UpdateMaterial", func(ctx context.Context) (*inventoryapp.MaterialResponse, error) {
		return h.materials.UpdateMaterial(ctx, id, req)
	})
}

// DeleteMaterial godoc
// @ID           deleteMaterial
// @Summary      Delete a warehouse material
// @Tags         materials
// @Produce      json
// @Param        id path string true "Material ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /materials/{id} [delete]
func (h *InventoryHandler) DeleteMaterial(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "DeleteMaterial", func(ctx context.Context) (uuid.UUID, error) {
		return h.materials.DeleteMaterial(ctx, id)
	})
}

// RegisterRoutes mounts the material routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	materials := rg.Group("/materials")

	materials.POST("/units", h.CreateUnit)
	materials.GET("/units", h.ListUnits)
	materials.DELETE("/units/:id", h.DeleteUnit)

	materials.POST("/names", h.CreateMaterialName)
	materials.GET("/names", h.ListMaterialNames)
	materials.DELETE("/names/:id", h.DeleteMaterialName)

	materials.POST("", h.CreateMaterial)
	materials.GET("", h.ListMaterials)
	materials.GET("/:id", h.GetMaterial)
	materials.PUT("/:id", h.UpdateMaterial)
	materials.DELETE("/:id", h.DeleteMaterial)
}
