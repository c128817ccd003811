package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/ledger"
	medicationapp "github.com/kdirani/farms/internal/application/medication"
)

// MedicationHandler handles medicine consumption invoices
type MedicationHandler struct {
	BaseHandler
	consumptions *medicationapp.Service
}

// NewMedicationHandler creates a new MedicationHandler
func NewMedicationHandler(consumptions *medicationapp.Service) *MedicationHandler {
	return &MedicationHandler{consumptions: consumptions}
}

// Create godoc
// @ID           createMedicineConsumption
// @Summary      Record a medicine consumption invoice
// @Tags         medicine-consumption
// @Accept       json
// @Produce      json
// @Param        request body medicationapp.CreateRequest true "Consumption"
// @Success      200 {object} APIResponse[medicationapp.Response]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /medicine-consumption [post]
func (h *MedicationHandler) Create(c *gin.Context) {
	var req medicationapp.CreateRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreateMedicineConsumption", func(ctx context.Context) (*medicationapp.Response, error) {
		return h.consumptions.Create(ctx, req)
	})
}

// List godoc
// @ID           listMedicineConsumptions
// @Summary      List medicine consumption invoices
// @Tags         medicine-consumption
// @Produce      json
// @Param        warehouse_id query string false "Warehouse ID" format(uuid)
// @Success      200 {object} APIResponse[[]medicationapp.Response]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /medicine-consumption [get]
func (h *MedicationHandler) List(c *gin.Context) {
	warehouseID, ok := h.QueryID(c, "warehouse_id")
	if !ok {
		return
	}
	run(c, "ListMedicineConsumptions", func(ctx context.Context) ([]medicationapp.Response, error) {
		return h.consumptions.List(ctx, warehouseID)
	})
}

// Get godoc
// @ID           getMedicineConsumption
// @Summary      Get a medicine consumption invoice
// @Tags         medicine-consumption
// @Produce      json
// @Param        id path string true "Consumption ID" format(uuid)
// @Success      200 {object} APIResponse[medicationapp.Response]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /medicine-consumption/{id} [get]
func (h *MedicationHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "GetMedicineConsumption", func(ctx context.Context) (*medicationapp.Response, error) {
		return h.consumptions.Get(ctx, id)
	})
}

// Delete godoc
// @ID           deleteMedicineConsumption
// @Summary      Delete a medicine consumption invoice
// @Tags         medicine-consumption
// @Produce      json
// @Param        id path string true "Consumption ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /medicine-consumption/{id} [delete]
func (h *MedicationHandler) Delete(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "DeleteMedicineConsumption", func(ctx context.Context) (uuid.UUID, error) {
		return h.consumptions.Delete(ctx, id)
	})
}

// AddItem godoc
// @ID           addMedicineConsumptionItem
// @Summary      Add a medicine line
// @Tags         medicine-consumption
// @Accept       json
// @Produce      json
// @Param        id      path string                       true "Consumption ID" format(uuid)
// @Param        request body medicationapp.ItemRequest true "Medicine line"
// @Success      200 {object} APIResponse[ledger.LineChange]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /medicine-consumption/{id}/items [post]
func (h *MedicationHandler) AddItem(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req medicationapp.ItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "AddMedicineConsumptionItem", func(ctx context.Context) (*ledger.LineChange, error) {
		return h.consumptions.AddItem(ctx, id, req)
	})
}

// DeleteItem godoc
// @ID           deleteMedicineConsumptionItem
// @Summary      Remove a medicine line
// @Tags         medicine-consumption
// @Produce      json
// @Param        id     path string true "Consumption ID" format(uuid)
// @Param        itemId path string true "Item ID" format(uuid)
// @Success      200 {object} APIResponse[ledger.LineChange]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /medicine-consumption/{id}/items/{itemId} [delete]
func (h *MedicationHandler) DeleteItem(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := h.PathID(c, "itemId")
	if !ok {
		return
	}
	run(c, "DeleteMedicineConsumptionItem", func(ctx context.Context) (*ledger.LineChange, error) {
		return h.consumptions.DeleteItem(ctx, id, itemID)
	})
}

// RegisterRoutes mounts the consumption routes on the medicine consumption group
func (h *MedicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/items", h.AddItem)
	rg.DELETE("/:id/items/:itemId", h.DeleteItem)
}
