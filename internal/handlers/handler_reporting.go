package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
	"github.com/wevomedia/wevo_media_app/internal/middleware"
)

// reportingHandler serves the report catalog and the dashboard summary.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.GET("/:name", h.runReport)
	}
	rg.GET("/dashboard", h.dashboard)
}

func (h *reportingHandler) listReports(c *gin.Context) {
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ListReportsResponse{Reports: h.reportingService.ListReports()})
}

func (h *reportingHandler) runReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	name := c.Param("name")

	result, err := h.reportingService.RunReport(c.Request.Context(), name)
	if err != nil {
		respondServiceError(c, logger, err, "run report")
		return
	}
	c.JSON(http.StatusOK, dto.ToReportResponse(result))
}

func (h *reportingHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	summary, err := h.reportingService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "load dashboard summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}
