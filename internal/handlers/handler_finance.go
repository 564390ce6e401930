package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
	"github.com/wevomedia/wevo_media_app/internal/middleware"
)

// financeHandler handles HTTP requests for financial entries, payables and
// receivables.
type financeHandler struct {
	entryService      portssvc.FinancialEntrySvcFacade
	payableService    portssvc.PayableSvcFacade
	receivableService portssvc.ReceivableSvcFacade
}

func newFinanceHandler(es portssvc.FinancialEntrySvcFacade, ps portssvc.PayableSvcFacade, rs portssvc.ReceivableSvcFacade) *financeHandler {
	return &financeHandler{entryService: es, payableService: ps, receivableService: rs}
}

func registerFinanceRoutes(rg *gin.RouterGroup, es portssvc.FinancialEntrySvcFacade, ps portssvc.PayableSvcFacade, rs portssvc.ReceivableSvcFacade) {
	h := newFinanceHandler(es, ps, rs)

	entries := rg.Group("/financial-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry) // Admin only
	}

	payables := rg.Group("/payables")
	{
		payables.POST("", h.createPayable)
		payables.GET("", h.listPayables)
		payables.GET("/:id", h.getPayable)
		payables.PUT("/:id", h.updatePayable)
		payables.DELETE("/:id", h.deletePayable) // Admin only
	}

	receivables := rg.Group("/receivables")
	{
		receivables.POST("", h.createReceivable)
		receivables.GET("", h.listReceivables)
		receivables.GET("/:id", h.getReceivable)
		receivables.PUT("/:id", h.updateReceivable)
		receivables.DELETE("/:id", h.deleteReceivable) // Admin only
	}
}

func (h *financeHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create financial entry")
		return
	}

	logger.Info("Financial entry created", slog.Int64("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

func (h *financeHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	entries, err := h.entryService.ListEntries(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list financial entries")
		return
	}

	resp := dto.ListEntriesResponse{Entries: make([]dto.EntryResponse, 0, len(entries))}
	for i := range entries {
		resp.Entries = append(resp.Entries, dto.ToEntryResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *financeHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	entryID, ok := idParam(c)
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err, "get financial entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *financeHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	entryID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), entryID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update financial entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *financeHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}
	entryID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		respondServiceError(c, logger, err, "delete financial entry")
		return
	}

	logger.Info("Financial entry deleted", slog.Int64("entry_id", entryID))
	c.Status(http.StatusNoContent)
}

func (h *financeHandler) createPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	var req dto.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	payable, err := h.payableService.CreatePayable(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create payable")
		return
	}

	logger.Info("Payable created", slog.Int64("payable_id", payable.PayableID))
	c.JSON(http.StatusCreated, dto.ToPayableResponse(payable))
}

func (h *financeHandler) listPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	payables, err := h.payableService.ListPayables(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list payables")
		return
	}

	resp := dto.ListPayablesResponse{Payables: make([]dto.PayableResponse, 0, len(payables))}
	for i := range payables {
		resp.Payables = append(resp.Payables, dto.ToPayableResponse(&payables[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *financeHandler) getPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	payableID, ok := idParam(c)
	if !ok {
		return
	}

	payable, err := h.payableService.GetPayableByID(c.Request.Context(), payableID)
	if err != nil {
		respondServiceError(c, logger, err, "get payable")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

func (h *financeHandler) updatePayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	payableID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	payable, err := h.payableService.UpdatePayable(c.Request.Context(), payableID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update payable")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

func (h *financeHandler) deletePayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}
	payableID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.payableService.DeletePayable(c.Request.Context(), payableID); err != nil {
		respondServiceError(c, logger, err, "delete payable")
		return
	}

	logger.Info("Payable deleted", slog.Int64("payable_id", payableID))
	c.Status(http.StatusNoContent)
}

func (h *financeHandler) createReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	var req dto.CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	receivable, err := h.receivableService.CreateReceivable(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create receivable")
		return
	}

	logger.Info("Receivable created", slog.Int64("receivable_id", receivable.ReceivableID))
	c.JSON(http.StatusCreated, dto.ToReceivableResponse(receivable))
}

func (h *financeHandler) listReceivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	receivables, err := h.receivableService.ListReceivables(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list receivables")
		return
	}

	resp := dto.ListReceivablesResponse{Receivables: make([]dto.ReceivableResponse, 0, len(receivables))}
	for i := range receivables {
		resp.Receivables = append(resp.Receivables, dto.ToReceivableResponse(&receivables[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *financeHandler) getReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	receivableID, ok := idParam(c)
	if !ok {
		return
	}

	receivable, err := h.receivableService.GetReceivableByID(c.Request.Context(), receivableID)
	if err != nil {
		respondServiceError(c, logger, err, "get receivable")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceivableResponse(receivable))
}

func (h *financeHandler) updateReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	receivableID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	receivable, err := h.receivableService.UpdateReceivable(c.Request.Context(), receivableID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update receivable")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceivableResponse(receivable))
}

func (h *financeHandler) deleteReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}
	receivableID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.receivableService.DeleteReceivable(c.Request.Context(), receivableID); err != nil {
		respondServiceError(c, logger, err, "delete receivable")
		return
	}

	logger.Info("Receivable deleted", slog.Int64("receivable_id", receivableID))
	c.Status(http.StatusNoContent)
}
