package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
	"github.com/wevomedia/wevo_media_app/internal/middleware"
)

// leadHandler handles HTTP requests for leads.
type leadHandler struct {
	leadService portssvc.LeadSvcFacade
}

func newLeadHandler(ls portssvc.LeadSvcFacade) *leadHandler {
	return &leadHandler{leadService: ls}
}

func registerLeadRoutes(rg *gin.RouterGroup, leadService portssvc.LeadSvcFacade) {
	h := newLeadHandler(leadService)

	leads := rg.Group("/leads")
	{
		leads.POST("", h.createLead)
		leads.GET("", h.listLeads)
		leads.GET("/:id", h.getLead)
		leads.PUT("/:id", h.updateLead)
		leads.DELETE("/:id", h.deleteLead) // Admin only
	}
}

func (h *leadHandler) createLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create lead")
		return
	}

	logger.Info("Lead created", slog.Int64("lead_id", lead.LeadID))
	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}

func (h *leadHandler) listLeads(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	leads, err := h.leadService.ListLeads(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list leads")
		return
	}

	resp := dto.ListLeadsResponse{Leads: make([]dto.LeadResponse, 0, len(leads))}
	for i := range leads {
		resp.Leads = append(resp.Leads, dto.ToLeadResponse(&leads[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *leadHandler) getLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	leadID, ok := idParam(c)
	if !ok {
		return
	}

	lead, err := h.leadService.GetLeadByID(c.Request.Context(), leadID)
	if err != nil {
		respondServiceError(c, logger, err, "get lead")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

func (h *leadHandler) updateLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	leadID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), leadID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update lead")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

func (h *leadHandler) deleteLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}
	leadID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), leadID); err != nil {
		respondServiceError(c, logger, err, "delete lead")
		return
	}

	logger.Info("Lead deleted", slog.Int64("lead_id", leadID))
	c.Status(http.StatusNoContent)
}
