package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
	"github.com/wevomedia/wevo_media_app/internal/middleware"
)

// contractHandler handles HTTP requests for contracts and their client links.
type contractHandler struct {
	contractService portssvc.ContractSvcFacade
}

func newContractHandler(cs portssvc.ContractSvcFacade) *contractHandler {
	return &contractHandler{contractService: cs}
}

func registerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade) {
	h := newContractHandler(contractService)

	contracts := rg.Group("/contracts")
	{
		contracts.POST("", h.createContract)
		contracts.GET("", h.listContracts)
		contracts.GET("/:id", h.getContract)
		contracts.PUT("/:id", h.updateContract)
		contracts.DELETE("/:id", h.deleteContract) // Admin only

		contracts.GET("/:id/clients", h.listContractClients)
		contracts.POST("/:id/clients", h.attachClient)
		contracts.DELETE("/:id/clients/:clientID", h.detachClient)
	}
}

func (h *contractHandler) createContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	contract, err := h.contractService.CreateContract(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create contract")
		return
	}

	logger.Info("Contract created", slog.Int64("contract_id", contract.ContractID))
	c.JSON(http.StatusCreated, dto.ToContractResponse(contract))
}

func (h *contractHandler) listContracts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	contracts, err := h.contractService.ListContracts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list contracts")
		return
	}

	resp := dto.ListContractsResponse{Contracts: make([]dto.ContractResponse, 0, len(contracts))}
	for i := range contracts {
		resp.Contracts = append(resp.Contracts, dto.ToContractResponse(&contracts[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *contractHandler) getContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	contractID, ok := idParam(c)
	if !ok {
		return
	}

	contract, err := h.contractService.GetContractByID(c.Request.Context(), contractID)
	if err != nil {
		respondServiceError(c, logger, err, "get contract")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

func (h *contractHandler) updateContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	contractID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	contract, err := h.contractService.UpdateContract(c.Request.Context(), contractID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update contract")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

func (h *contractHandler) deleteContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}
	contractID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.contractService.DeleteContract(c.Request.Context(), contractID); err != nil {
		respondServiceError(c, logger, err, "delete contract")
		return
	}

	logger.Info("Contract deleted", slog.Int64("contract_id", contractID))
	c.Status(http.StatusNoContent)
}

func (h *contractHandler) listContractClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	contractID, ok := idParam(c)
	if !ok {
		return
	}

	clients, err := h.contractService.ListContractClients(c.Request.Context(), contractID)
	if err != nil {
		respondServiceError(c, logger, err, "list contract clients")
		return
	}

	resp := dto.ListClientsResponse{Clients: make([]dto.ClientResponse, 0, len(clients))}
	for i := range clients {
		resp.Clients = append(resp.Clients, dto.ToClientResponse(&clients[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *contractHandler) attachClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	contractID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.AttachClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	if err := h.contractService.AttachClient(c.Request.Context(), contractID, req.ClientID); err != nil {
		respondServiceError(c, logger, err, "attach client to contract")
		return
	}

	logger.Info("Client attached to contract",
		slog.Int64("contract_id", contractID),
		slog.Int64("client_id", req.ClientID),
	)
	c.Status(http.StatusNoContent)
}

func (h *contractHandler) detachClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	contractID, ok := idParam(c)
	if !ok {
		return
	}
	clientID, err := strconv.ParseInt(c.Param("clientID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid clientID parameter"})
		return
	}

	if err := h.contractService.DetachClient(c.Request.Context(), contractID, clientID); err != nil {
		respondServiceError(c, logger, err, "detach client from contract")
		return
	}

	logger.Info("Client detached from contract",
		slog.Int64("contract_id", contractID),
		slog.Int64("client_id", clientID),
	)
	c.Status(http.StatusNoContent)
}
