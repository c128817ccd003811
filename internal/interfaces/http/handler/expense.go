package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/domain/document"
)

// ExpenseHandler handles the expense lines of one record kind
type ExpenseHandler struct {
	BaseHandler
	expenses *ledger.ExpenseService
	kind     document.Kind
}

// NewExpenseHandler creates an ExpenseHandler for records of the given kind
func NewExpenseHandler(expenses *ledger.ExpenseService, kind document.Kind) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, kind: kind}
}

// List godoc
// @ID           listExpenses
// @Summary      List the expenses of a record
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Record ID" format(uuid)
// @Success      200 {object} APIResponse[[]ledger.ExpenseResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/expenses [get]
// @Router       /manufacturing/{id}/expenses [get]
// @Router       /medicine-consumption/{id}/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "ListExpenses", func(ctx context.Context) ([]ledger.ExpenseResponse, error) {
		return h.expenses.List(ctx, h.kind, id)
	})
}

// Add godoc
// @ID           addExpense
// @Summary      Add an expense to a record
// @Description  Inserts the expense line and returns the recomputed total_value
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id      path string              true "Record ID" format(uuid)
// @Param        request body ledger.ExpenseInput true "Expense"
// @Success      200 {object} APIResponse[ledger.LineChange]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/expenses [post]
// @Router       /manufacturing/{id}/expenses [post]
// @Router       /medicine-consumption/{id}/expenses [post]
func (h *ExpenseHandler) Add(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req ledger.ExpenseInput
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "AddExpense", func(ctx context.Context) (*ledger.LineChange, error) {
		return h.expenses.Add(ctx, h.kind, id, req)
	})
}

// Delete godoc
// @ID           deleteExpense
// @Summary      Delete an expense from a record
// @Tags         expenses
// @Produce      json
// @Param        id        path string true "Record ID" format(uuid)
// @Param        expenseId path string true "Expense ID" format(uuid)
// @Success      200 {object} APIResponse[ledger.LineChange]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/expenses/{expenseId} [delete]
// @Router       /manufacturing/{id}/expenses/{expenseId} [delete]
// @Router       /medicine-consumption/{id}/expenses/{expenseId} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	expenseID, ok := h.PathID(c, "expenseId")
	if !ok {
		return
	}
	run(c, "DeleteExpense", func(ctx context.Context) (*ledger.LineChange, error) {
		return h.expenses.Delete(ctx, h.kind, id, expenseID)
	})
}

// RegisterRoutes mounts the expense routes on a record group
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id/expenses", h.List)
	rg.POST("/:id/expenses", h.Add)
	rg.DELETE("/:id/expenses/:expenseId", h.Delete)
}
