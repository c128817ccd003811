package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/kdirani/farms/internal/application/catalog"
)

// CatalogHandler handles medicines and expense types
type CatalogHandler struct {
	BaseHandler
	refs *catalogapp.ReferenceService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(refs *catalogapp.ReferenceService) *CatalogHandler {
	return &CatalogHandler{refs: refs}
}

// CreateMedicine godoc
// @ID           createMedicine
// @Summary      Create a medicine
// @Tags         medicines
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateMedicineRequest true "Medicine"
// @Success      200 {object} APIResponse[catalogapp.MedicineResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /medicines [post]
func (h *CatalogHandler) CreateMedicine(c *gin.Context) {
	var req catalogapp.CreateMedicineRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreateMedicine", func(ctx context.Context) (*catalogapp.MedicineResponse, error) {
		return h.refs.CreateMedicine(ctx, req)
	})
}

// ListMedicines godoc
// @ID           listMedicines
// @Summary      List medicines
// @Tags         medicines
// @Produce      json
// @Success      200 {object} APIResponse[[]catalogapp.MedicineResponse]
// @Security     BearerAuth
// @Router       /medicines [get]
func (h *CatalogHandler) ListMedicines(c *gin.Context) {
	run(c, "ListMedicines", h.refs.ListMedicines)
}

// DeleteMedicine godoc
// @ID           deleteMedicine
// @Summary      Delete a medicine
// @Tags         medicines
// @Produce      json
// @Param        id path string true "Medicine ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /medicines/{id} [delete]
func (h *CatalogHandler) DeleteMedicine(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "DeleteMedicine", func(ctx context.Context) (uuid.UUID, error) {
		return h.refs.DeleteMedicine(ctx, id)
	})
}

// CreateExpenseType godoc
// @ID           createExpenseType
// @Summary      Create an expense type
// @Tags         expense-types
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateExpenseTypeRequest true "Expense type"
// @Success      200 {object} APIResponse[catalogapp.ExpenseTypeResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /expense-types [post]
func (h *CatalogHandler) CreateExpenseType(c *gin.Context) {
	var req catalogapp.CreateExpenseTypeRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreateExpenseType", func(ctx context.Context) (*catalogapp.ExpenseTypeResponse, error) {
		return h.refs.CreateExpenseType(ctx, req)
	})
}

// ListExpenseTypes godoc
// @ID           listExpenseTypes
// @Summary      List expense types
// @Tags         expense-types
// @Produce      json
// @Success      200 {object} APIResponse[[]catalogapp.ExpenseTypeResponse]
// @Security     BearerAuth
// @Router       /expense-types [get]
func (h *CatalogHandler) ListExpenseTypes(c *gin.Context) {
	run(c, "ListExpenseTypes", h.refs.ListExpenseTypes)
}

// DeleteExpenseType godoc
// @ID           deleteExpenseType
// @Summary      Delete an expense type
// @Tags         expense-types
// @Produce      json
// @Param        id path string true "Expense type ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /expense-types/{id} [delete]
func (h *CatalogHandler) DeleteExpenseType(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "DeleteExpenseType", func(ctx context.Context) (uuid.UUID, error) {
		return h.refs.DeleteExpenseType(ctx, id)
	})
}

// RegisterRoutes mounts the reference data routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	medicines := rg.Group("/medicines")
	medicines.POST("", h.CreateMedicine)
	medicines.GET("", h.ListMedicines)
	medicines.DELETE("/:id", h.DeleteMedicine)

	types := rg.Group("/expense-types")
	types.POST("", h.CreateExpenseType)
	types.GET("", h.ListExpenseTypes)
	types.DELETE("/:id", h.DeleteExpenseType)
}
