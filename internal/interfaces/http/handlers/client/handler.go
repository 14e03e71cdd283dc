package client

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oficina/internal/application/client/usecases"
	"oficina/internal/shared/constants"
	"oficina/internal/shared/logger"
	"oficina/internal/shared/utils"
)

type Handler struct {
	createUC      createClientUseCase
	listUC        listClientsUseCase
	searchUC      searchClientsUseCase
	getUC         getClientUseCase
	listTicketsUC listClientTicketsUseCase
	updateUC      updateClientUseCase
	deleteUC      deleteClientUseCase
	logger        logger.Interface
}

func NewHandler(
	createUC createClientUseCase,
	listUC listClientsUseCase,
	searchUC searchClientsUseCase,
	getUC getClientUseCase,
	listTicketsUC listClientTicketsUseCase,
	updateUC updateClientUseCase,
	deleteUC deleteClientUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:      createUC,
		listUC:        listUC,
		searchUC:      searchUC,
		getUC:         getUC,
		listTicketsUC: listTicketsUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		logger:        logger,
	}
}

// Create handles POST /clientes
func (h *Handler) Create(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("invalid request body for create client", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateClientCommand{
		AdminID: adminID,
		Details: req.ToDetails(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

// List handles GET /clientes
func (h *Handler) List(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c, constants.DefaultPageSize, constants.MaxPageSize)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListClientsQuery{
		AdminID:  adminID,
		Query:    c.Query("q"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, p.Page, p.PageSize)
}

// Search handles GET /clientes/search
func (h *Handler) Search(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.searchUC.Execute(c.Request.Context(), adminID, c.Query("q"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /clientes/:id
func (h *Handler) Get(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	clientID, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetClientQuery{
		AdminID:     adminID,
		ClientID:    clientID,
		TicketLimit: utils.ParseQueryInt(c, "limit", constants.DefaultClientTicketLimit),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Tickets handles GET /clientes/:id/fichas
func (h *Handler) Tickets(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	clientID, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c, constants.DefaultPageSize, constants.MaxPageSize)
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListClientTicketsQuery{
		AdminID:  adminID,
		ClientID: clientID,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, p.Page, p.PageSize)
}

// Update handles PUT /clientes/:id
func (h *Handler) Update(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	clientID, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("invalid request body for update client", "error", err, "client_id", clientID)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateClientCommand{
		AdminID:  adminID,
		ClientID: clientID,
		Patch:    req.ToPatch(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", result)
}

// Delete handles DELETE /clientes/:id
func (h *Handler) Delete(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	clientID, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), adminID, clientID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client deleted successfully", nil)
}
