package handler

import (
	reportapp "github.com/comex/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles profitability report API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetSummary godoc
// @ID           getReportSummary
// @Summary      Get profitability summary
// @Description  Aggregate totals across completed operations. Served from cache when fresh
// @Tags         reports
// @Produce      json
// @Success      200 {object} APIResponse[report.Summary]
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.GetSummary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// GetProfitByOperation godoc
// @ID           getProfitByOperation
// @Summary      Profit broken down by operation
// @Description  Per-operation profit for completed operations, most profitable first
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start of the period (inclusive)" format(date)
// @Param        to query string false "End of the period (inclusive)" format(date)
// @Success      200 {object} APIResponse[[]report.OperationProfitRow]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/profit/by-operation [get]
func (h *ReportHandler) GetProfitByOperation(c *gin.Context) {
	var filter reportapp.PeriodFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rows, err := h.reportService.GetProfitByOperation(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rows)
}

// GetProfitByPeriod godoc
// @ID           getProfitByPeriod
// @Summary      Profit broken down by month
// @Description  Monthly profit aggregation for completed operations, keyed by YYYY-MM
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start of the period (inclusive)" format(date)
// @Param        to query string false "End of the period (inclusive)" format(date)
// @Success      200 {object} APIResponse[[]report.PeriodProfitRow]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/profit/by-period [get]
func (h *ReportHandler) GetProfitByPeriod(c *gin.Context) {
	var filter reportapp.PeriodFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rows, err := h.reportService.GetProfitByPeriod(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rows)
}

// GetProfitByClient godoc
// @ID           getProfitByClient
// @Summary      Profit broken down by client
// @Description  Per-client profit aggregation for completed operations, most profitable first
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start of the period (inclusive)" format(date)
// @Param        to query string false "End of the period (inclusive)" format(date)
// @Success      200 {object} APIResponse[[]report.ClientProfitRow]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/profit/by-client [get]
func (h *ReportHandler) GetProfitByClient(c *gin.Context) {
	var filter reportapp.PeriodFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rows, err := h.reportService.GetProfitByClient(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rows)
}
