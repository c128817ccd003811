package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/ledger"
	manufacturingapp "github.com/kdirani/farms/internal/application/manufacturing"
)

// ManufacturingHandler handles feed manufacturing batches
type ManufacturingHandler struct {
	BaseHandler
	batches *manufacturingapp.Service
}

// NewManufacturingHandler creates a new ManufacturingHandler
func NewManufacturingHandler(batches *manufacturingapp.Service) *ManufacturingHandler {
	return &ManufacturingHandler{batches: batches}
}

// Create godoc
// @ID           createManufacturingBatch
// @Summary      Record a manufacturing batch
// @Tags         manufacturing
// @Accept       json
// @Produce      json
// @Param        request body manufacturingapp.CreateRequest true "Batch"
// @Success      200 {object} APIResponse[manufacturingapp.Response]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /manufacturing [post]
func (h *ManufacturingHandler) Create(c *gin.Context) {
	var req manufacturingapp.CreateRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreateManufacturingBatch", func(ctx context.Context) (*manufacturingapp.Response, error) {
		return h.batches.Create(ctx, req)
	})
}

// List godoc
// @ID           listManufacturingBatches
// @Summary      List manufacturing batches
// @Tags         manufacturing
// @Produce      json
// @Param        warehouse_id query string false "Warehouse ID" format(uuid)
// @Success      200 {object} APIResponse[[]manufacturingapp.Response]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /manufacturing [get]
func (h *ManufacturingHandler) List(c *gin.Context) {
	warehouseID, ok := h.QueryID(c, "warehouse_id")
	if !ok {
		return
	}
	run(c, "ListManufacturingBatches", func(ctx context.Context) ([]manufacturingapp.Response, error) {
		return h.batches.List(ctx, warehouseID)
	})
}

// Get godoc
// @ID           getManufacturingBatch
// @Summary      Get a manufacturing batch
// @Tags         manufacturing
// @Produce      json
// @Param        id path string true "Batch ID" format(uuid)
// @Success      200 {object} APIResponse[manufacturingapp.Response]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /manufacturing/{id} [get]
func (h *ManufacturingHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "GetManufacturingBatch", func(ctx context.Context) (*manufacturingapp.Response, error) {
		return h.batches.Get(ctx, id)
	})
}

// Delete godoc
// @ID           deleteManufacturingBatch
// @Summary      Delete a manufacturing batch
// @Tags         manufacturing
// @Produce      json
// @Param        id path string true "Batch ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /manufacturing/{id} [delete]
func (h *ManufacturingHandler) Delete(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "DeleteManufacturingBatch", func(ctx context.Context) (uuid.UUID, error) {
		return h.batches.Delete(ctx, id)
	})
}

// AddItem godoc
// @ID           addManufacturingItem
// @Summary      Add an ingredient to a batch
// @Tags         manufacturing
// @Accept       json
// @Produce      json
// @Param        id      path string                       true "Batch ID" format(uuid)
// @Param        request body manufacturingapp.ItemRequest true "Ingredient"
// @Success      200 {object} APIResponse[ledger.LineChange]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /manufacturing/{id}/items [post]
func (h *ManufacturingHandler) AddItem(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req manufacturingapp.ItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "AddManufacturingItem", func(ctx context.Context) (*ledger.LineChange, error) {
		return h.batches.AddItem(ctx, id, req)
	})
}

// DeleteItem godoc
// @ID           deleteManufacturingItem
// @Summary      Remove an ingredient from a batch
// @Tags         manufacturing
// @Produce      json
// @Param        id     path string true "Batch ID" format(uuid)
// @Param        itemId path string true "Item ID" format(uuid)
// @Success      200 {object} APIResponse[ledger.LineChange]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /manufacturing/{id}/items/{itemId} [delete]
func (h *ManufacturingHandler) DeleteItem(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := h.PathID(c, "itemId")
	if !ok {
		return
	}
	run(c, "DeleteManufacturingItem", func(ctx context.Context) (*ledger.LineChange, error) {
		return h.batches.DeleteItem(ctx, id, itemID)
	})
}

// RegisterRoutes mounts the batch routes on the manufacturing group
func (h *ManufacturingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/items", h.AddItem)
	rg.DELETE("/:id/items/:itemId", h.DeleteItem)
}
