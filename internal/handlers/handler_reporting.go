package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to aggregate reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to aggregate reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/dashboard", h.getDashboard)
	}
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Aggregates asset counts, values, credits, depreciation and gains. year filters the monthly series.
// @Tags reports
// @Produce json
// @Param year query int false "Restrict monthly aggregates to this year"
// @Success 200 {object} domain.DashboardSummary
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.DashboardParams
	if !bindQuery(c, &params) {
		return
	}
	logger.Info("Received request for dashboard", slog.Int("year", params.Year))

	summary, err := h.reportingService.Dashboard(c.Request.Context(), params.Year)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, summary)
}
