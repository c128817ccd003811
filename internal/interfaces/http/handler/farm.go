package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	farmapp "github.com/kdirani/farms/internal/application/farm"
)

// FarmHandler handles farms, warehouses and poultry batches
type FarmHandler struct {
	BaseHandler
	farms *farmapp.Service
}

// NewFarmHandler creates a new FarmHandler
func NewFarmHandler(farms *farmapp.Service) *FarmHandler {
	return &FarmHandler{farms: farms}
}

// CreateFarm godoc
// @ID           createFarm
// @Summary      Create a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        request body farmapp.CreateFarmRequest true "Farm"
// @Success      200 {object} APIResponse[farmapp.FarmResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /farms [post]
func (h *FarmHandler) CreateFarm(c *gin.Context) {
	var req farmapp.CreateFarmRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreateFarm", func(ctx context.Context) (*farmapp.FarmResponse, error) {
		return h.farms.CreateFarm(ctx, req)
	})
}

// ListFarms godoc
// @ID           listFarms
// @Summary      List farms
// @Tags         farms
// @Produce      json
// @Success      200 {object} APIResponse[[]farmapp.FarmResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /farms [get]
func (h *FarmHandler) ListFarms(c *gin.Context) {
	run(c, "ListFarms", h.farms.ListFarms)
}

// GetFarm godoc
// @ID           getFarm
// @Summary      Get a farm
// @Tags         farms
// @Produce      json
// @Param        id path string true "Farm ID" format(uuid)
// @Success      200 {object} APIResponse[farmapp.FarmResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /farms/{id} [get]
func (h *FarmHandler) GetFarm(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "GetFarm", func(ctx context.Context) (*farmapp.FarmResponse, error) {
		return h.farms.GetFarm(ctx, id)
	})
}

// UpdateFarm godoc
// @ID           updateFarm
// @Summary      Update a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Farm ID" format(uuid)
// @Param        request body farmapp.UpdateFarmRequest true "Farm"
// @Success      200 {object} APIResponse[farmapp.FarmResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /farms/{id} [put]
func (h *FarmHandler) UpdateFarm(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req farmapp.UpdateFarmRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "UpdateFarm", func(ctx context.Context) (*farmapp.FarmResponse, error) {
		return h.farms.UpdateFarm(ctx, id, req)
	})
}

// DeleteFarm godoc
// @ID           deleteFarm
// @Summary      Delete a farm
// @Tags         farms
// @Produce      json
// @Param        id path string true "Farm ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /farms/{id} [delete]
func (h *FarmHandler) DeleteFarm(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "DeleteFarm", func(ctx context.Context) (uuid.UUID, error) {
		return h.farms.DeleteFarm(ctx, id)
	})
}

// CreateWarehouse godoc
// @ID           createWarehouse
// @Summary      Create a warehouse
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        request body farmapp.CreateWarehouseRequest true "Warehouse"
// @Success      200 {object} APIResponse[farmapp.WarehouseResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /warehouses [post]
func (h *FarmHandler) CreateWarehouse(c *gin.Context) {
	var req farmapp.CreateWarehouseRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreateWarehouse", func(ctx context.Context) (*farmapp.WarehouseResponse, error) {
		return h.farms.CreateWarehouse(ctx, req)
	})
}

// ListWarehouses godoc
// @ID           listWarehouses
// @Summary      List warehouses
// @Tags         warehouses
// @Produce      json
// @Param        farm_id query string false "Farm ID" format(uuid)
// @Success      200 {object} APIResponse[[]farmapp.WarehouseResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /warehouses [get]
func (h *FarmHandler) ListWarehouses(c *gin.Context) {
	farmID, ok := h.QueryID(c, "farm_id")
	if !ok {
		return
	}
	run(c, "ListWarehouses", func(ctx context.Context) ([]farmapp.WarehouseResponse, error) {
		return h.farms.ListWarehouses(ctx, farmID)
	})
}

// DeleteWarehouse godoc
// @ID           deleteWarehouse
// @Summary      Delete a warehouse
// @Tags         warehouses
// @Produce      json
// @Param        id path string true "Warehouse ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /warehouses/{id} [delete]
func (h *FarmHandler) DeleteWarehouse(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "DeleteWarehouse", func(ctx context.Context) (uuid.UUID, error) {
		return h.farms.DeleteWarehouse(ctx, id)
	})
}

// CreatePoultryStatus godoc
// @ID           createPoultryStatus
// @Summary      Open a poultry batch
// @Tags         poultry
// @Accept       json
// @Produce      json
// @Param        request body farmapp.CreatePoultryStatusRequest true "Batch"
// @Success      200 {object} APIResponse[farmapp.PoultryStatusResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /poultry [post]
func (h *FarmHandler) CreatePoultryStatus(c *gin.Context) {
	var req farmapp.CreatePoultryStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreatePoultryStatus", func(ctx context.Context) (*farmapp.PoultryStatusResponse, error) {
		return h.farms.CreatePoultryStatus(ctx, req)
	})
}

// ListPoultryStatuses godoc
// @ID           listPoultryStatuses
// @Summary      List poultry batches
// @Tags         poultry
// @Produce      json
// @Param        farm_id query string false "Farm ID" format(uuid)
// @Success      200 {object} APIResponse[[]farmapp.PoultryStatusResponse]
// @Security     BearerAuth
// @Router       /poultry [get]
func (h *FarmHandler) ListPoultryStatuses(c *gin.Context) {
	farmID, ok := h.QueryID(c, "farm_id")
	if !ok {
		return
	}
	run(c, "ListPoultryStatuses", func(ctx context.Context) ([]farmapp.PoultryStatusResponse, error) {
		return h.farms.ListPoultryStatuses(ctx, farmID)
	})
}

// DeletePoultryStatus godoc
// @ID           deletePoultryStatus
// @Summary      Delete a poultry batch
// @Tags         poultry
// @Produce      json
// @Param        id path string true "Batch ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /poultry/{id} [delete]
func (h *FarmHandler) DeletePoultryStatus(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "DeletePoultryStatus", func(ctx context.Context) (uuid.UUID, error) {
		return h.farms.DeletePoultryStatus(ctx, id)
	})
}

// RegisterRoutes mounts the farm routes
func (h *FarmHandler) RegisterRoutes(rg *gin.RouterGroup) {
	farms := rg.Group("/farms")
	farms.POST("", h.CreateFarm)
	farms.GET("", h.ListFarms)
	farms.GET("/:id", h.GetFarm)
	farms.PUT("/:id", h.UpdateFarm)
	farms.DELETE("/:id", h.DeleteFarm)

	warehouses := rg.Group("/warehouses")
	warehouses.POST("", h.CreateWarehouse)
	warehouses.GET("", h.ListWarehouses)
	warehouses.DELETE("/:id", h.DeleteWarehouse)

	poultry := rg.Group("/poultry")
	poultry.POST("", h.CreatePoultryStatus)
	poultry.GET("", h.ListPoultryStatuses)
	poultry.DELETE("/:id", h.DeletePoultryStatus)
}
