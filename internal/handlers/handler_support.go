package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
	"github.com/wevomedia/wevo_media_app/internal/middleware"
)

// supportHandler handles HTTP requests for support tickets.
type supportHandler struct {
	supportService portssvc.SupportSvcFacade
}

func newSupportHandler(ss portssvc.SupportSvcFacade) *supportHandler {
	return &supportHandler{supportService: ss}
}

func registerSupportRoutes(rg *gin.RouterGroup, supportService portssvc.SupportSvcFacade) {
	h := newSupportHandler(supportService)

	tickets := rg.Group("/support-tickets")
	{
		tickets.POST("", h.createTicket)
		tickets.GET("", h.listTickets)
		tickets.GET("/:id", h.getTicket)
		tickets.PUT("/:id", h.updateTicket)
		tickets.DELETE("/:id", h.deleteTicket) // Admin only
	}
}

func (h *supportHandler) createTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	ticket, err := h.supportService.CreateTicket(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create support ticket")
		return
	}

	logger.Info("Support ticket created", slog.Int64("ticket_id", ticket.TicketID))
	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *supportHandler) listTickets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	tickets, err := h.supportService.ListTickets(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list support tickets")
		return
	}

	resp := dto.ListTicketsResponse{Tickets: make([]dto.TicketResponse, 0, len(tickets))}
	for i := range tickets {
		resp.Tickets = append(resp.Tickets, dto.ToTicketResponse(&tickets[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *supportHandler) getTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	ticketID, ok := idParam(c)
	if !ok {
		return
	}

	ticket, err := h.supportService.GetTicketByID(c.Request.Context(), ticketID)
	if err != nil {
		respondServiceError(c, logger, err, "get support ticket")
		return
	}
	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *supportHandler) updateTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	ticketID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	ticket, err := h.supportService.UpdateTicket(c.Request.Context(), ticketID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update support ticket")
		return
	}
	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *supportHandler) deleteTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}
	ticketID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.supportService.DeleteTicket(c.Request.Context(), ticketID); err != nil {
		respondServiceError(c, logger, err, "delete support ticket")
		return
	}

	logger.Info("Support ticket deleted", slog.Int64("ticket_id", ticketID))
	c.Status(http.StatusNoContent)
}
