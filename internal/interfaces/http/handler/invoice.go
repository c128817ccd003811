package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	invoiceapp "github.com/kdirani/farms/internal/application/invoice"
	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/application/printing"
)

// InvoiceHandler handles buy and sell invoices
type InvoiceHandler struct {
	BaseHandler
	invoices *invoiceapp.Service
	printer  *printing.InvoicePrintService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoices *invoiceapp.Service, printer *printing.InvoicePrintService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, printer: printer}
}

// Create godoc
// @ID           createInvoice
// @Summary      Create an invoice
// @Description  Creates the invoice with its items and expenses. total_value is computed from the lines.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body invoiceapp.CreateInvoiceRequest true "Invoice"
// @Success      200 {object} APIResponse[invoiceapp.InvoiceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req invoiceapp.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreateInvoice", func(ctx context.Context) (*invoiceapp.InvoiceResponse, error) {
		return h.invoices.Create(ctx, req)
	})
}

// List godoc
// @ID           listInvoices
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        type         query string false "Invoice type" Enums(buy, sell)
// @Param        warehouse_id query string false "Warehouse ID" format(uuid)
// @Param        from         query string false "From date" format(date)
// @Param        to           query string false "To date" format(date)
// @Param        page         query int    false "Page number"
// @Param        page_size    query int    false "Page size"
// @Success      200 {object} APIResponse[[]invoiceapp.SummaryResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	var req invoiceapp.ListInvoicesRequest
	if !h.BindQuery(c, &req) {
		return
	}
	warehouseID, ok := h.QueryID(c, "warehouse_id")
	if !ok {
		return
	}
	req.WarehouseID = warehouseID
	run(c, "ListInvoices", func(ctx context.Context) ([]invoiceapp.SummaryResponse, error) {
		return h.invoices.List(ctx, req)
	})
}

// Get godoc
// @ID           getInvoice
// @Summary      Get an invoice
// @Description  Returns the invoice with its lines and the names of its warehouse, farm and poultry batch
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[invoiceapp.InvoiceResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "GetInvoice", func(ctx context.Context) (*invoiceapp.InvoiceResponse, error) {
		return h.invoices.GetEnriched(ctx, id)
	})
}

// Update godoc
// @ID           updateInvoice
// @Summary      Update an invoice header
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path string                          true "Invoice ID" format(uuid)
// @Param        request body invoiceapp.UpdateInvoiceRequest true "Header"
// @Success      200 {object} APIResponse[invoiceapp.InvoiceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req invoiceapp.UpdateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "UpdateInvoice", func(ctx context.Context) (*invoiceapp.InvoiceResponse, error) {
		return h.invoices.Update(ctx, id, req)
	})
}

// SetChecked godoc
// @ID           setInvoiceChecked
// @Summary      Mark an invoice as reviewed
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path string         true "Invoice ID" format(uuid)
// @Param        request body CheckedRequest true "Checked flag"
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/checked [patch]
func (h *InvoiceHandler) SetChecked(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req CheckedRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "SetInvoiceChecked", func(ctx context.Context) (uuid.UUID, error) {
		return h.invoices.SetChecked(ctx, id, req.Checked)
	})
}

// Delete godoc
// @ID           deleteInvoice
// @Summary      Delete an invoice
// @Description  Removes the invoice with its items, expenses and attachments
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "DeleteInvoice", func(ctx context.Context) (uuid.UUID, error) {
		return h.invoices.Delete(ctx, id)
	})
}

// AddItem godoc
// @ID           addInvoiceItem
// @Summary      Add an invoice item
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path string                 true "Invoice ID" format(uuid)
// @Param        request body invoiceapp.ItemRequest true "Item"
// @Success      200 {object} APIResponse[ledger.LineChange]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/items [post]
func (h *InvoiceHandler) AddItem(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req invoiceapp.ItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "AddInvoiceItem", func(ctx context.Context) (*ledger.LineChange, error) {
		return h.invoices.AddItem(ctx, id, req)
	})
}

// DeleteItem godoc
// @ID           deleteInvoiceItem
// @Summary      Delete an invoice item
// @Tags         invoices
// @Produce      json
// @Param        id     path string true "Invoice ID" format(uuid)
// @Param        itemId path string true "Item ID" format(uuid)
// @Success      200 {object} APIResponse[ledger.LineChange]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/items/{itemId} [delete]
func (h *InvoiceHandler) DeleteItem(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := h.PathID(c, "itemId")
	if !ok {
		return
	}
	run(c, "DeleteInvoiceItem", func(ctx context.Context) (*ledger.LineChange, error) {
		return h.invoices.DeleteItem(ctx, id, itemID)
	})
}

// PrintPDF godoc
// @ID           printInvoice
// @Summary      Print an invoice as PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id     path  string true  "Invoice ID" format(uuid)
// @Param        locale query string false "Locale" Enums(ar, en)
// @Param        paper  query string false "Paper size" Enums(A4, A5)
// @Success      200 {file} binary
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/pdf [get]
func (h *InvoiceHandler) PrintPDF(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req printing.PrintInvoiceRequest
	if !h.BindQuery(c, &req) {
		return
	}

	doc, err := h.printer.RenderInvoicePDF(c.Request.Context(), id, req)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.FileName))
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}

// RegisterRoutes mounts the invoice routes on the invoice group
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.PATCH("/:id/checked", h.SetChecked)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/items", h.AddItem)
	rg.DELETE("/:id/items/:itemId", h.DeleteItem)
	rg.GET("/:id/pdf", h.PrintPDF)
}
