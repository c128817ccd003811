package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	reportapp "github.com/kdirani/farms/internal/application/report"
)

// ReportHandler handles daily production reports
type ReportHandler struct {
	BaseHandler
	reports *reportapp.DailyReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports *reportapp.DailyReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Create godoc
// @ID           createDailyReport
// @Summary      Submit a daily report
// @Description  Records egg production, sales, mortality and feed for one warehouse and day. Derived balances are computed on save.
// @Tags         daily-reports
// @Accept       json
// @Produce      json
// @Param        request body reportapp.CreateDailyReportRequest true "Report"
// @Success      200 {object} APIResponse[reportapp.DailyReportResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /daily-reports [post]
func (h *ReportHandler) Create(c *gin.Context) {
	var req reportapp.CreateDailyReportRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreateDailyReport", func(ctx context.Context) (*reportapp.DailyReportResponse, error) {
		return h.reports.Create(ctx, req)
	})
}

// List godoc
// @ID           listDailyReports
// @Summary      List daily reports
// @Tags         daily-reports
// @Produce      json
// @Param        warehouse_id query string false "Warehouse ID" format(uuid)
// @Param        from         query string false "From date" format(date)
// @Param        to           query string false "To date" format(date)
// @Success      200 {object} APIResponse[[]reportapp.DailyReportResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /daily-reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	var req reportapp.ListDailyReportsRequest
	if !h.BindQuery(c, &req) {
		return
	}
	warehouseID, ok := h.QueryID(c, "warehouse_id")
	if !ok {
		return
	}
	req.WarehouseID = warehouseID
	run(c, "ListDailyReports", func(ctx context.Context) ([]reportapp.DailyReportResponse, error) {
		return h.reports.List(ctx, req)
	})
}

// Get godoc
// @ID           getDailyReport
// @Summary      Get a daily report
// @Tags         daily-reports
// @Produce      json
// @Param        id path string true "Report ID" format(uuid)
// @Success      200 {object} APIResponse[reportapp.DailyReportResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /daily-reports/{id} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "GetDailyReport", func(ctx context.Context) (*reportapp.DailyReportResponse, error) {
		return h.reports.Get(ctx, id)
	})
}

// SetChecked godoc
// @ID           setDailyReportChecked
// @Summary      Mark a daily report as reviewed
// @Tags         daily-reports
// @Accept       json
// @Produce      json
// @Param        id      path string         true "Report ID" format(uuid)
// @Param        request body CheckedRequest true "Checked flag"
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /daily-reports/{id}/checked [patch]
func (h *ReportHandler) SetChecked(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req CheckedRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "SetDailyReportChecked", func(ctx context.Context) (uuid.UUID, error) {
		return h.reports.SetChecked(ctx, id, req.Checked)
	})
}

// Delete godoc
// @ID           deleteDailyReport
// @Summary      Delete a daily report
// @Tags         daily-reports
// @Produce      json
// @Param        id path string true "Report ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /daily-reports/{id} [delete]
func (h *ReportHandler) Delete(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "DeleteDailyReport", func(ctx context.Context) (uuid.UUID, error) {
		return h.reports.Delete(ctx, id)
	})
}

// RegisterRoutes mounts the report routes on the daily report group
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id/checked", h.SetChecked)
	rg.DELETE("/:id", h.Delete)
}
