package ticket

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"oficina/internal/application/ticket/usecases"
	"oficina/internal/shared/constants"
	"oficina/internal/shared/logger"
	"oficina/internal/shared/utils"
)

type TicketHandler struct {
	createUC    createTicketUseCase
	listUC      listTicketsUseCase
	listMineUC  listMyTicketsUseCase
	getByCodeUC getTicketByCodeUseCase
	getDetailUC getTicketDetailUseCase
	trackUC     trackTicketUseCase
	updateUC    updateTicketUseCase
	receiptUC   generateReceiptUseCase
	addLogUC    addUpdateLogUseCase
	listLogsUC  listUpdateLogsUseCase
	statsUC     ticketStatsUseCase
	logger      logger.Interface
}

func NewTicketHandler(
	createUC createTicketUseCase,
	listUC listTicketsUseCase,
	listMineUC listMyTicketsUseCase,
	getByCodeUC getTicketByCodeUseCase,
	getDetailUC getTicketDetailUseCase,
	trackUC trackTicketUseCase,
	updateUC updateTicketUseCase,
	receiptUC generateReceiptUseCase,
	addLogUC addUpdateLogUseCase,
	listLogsUC listUpdateLogsUseCase,
	statsUC ticketStatsUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:    createUC,
		listUC:      listUC,
		listMineUC:  listMineUC,
		getByCodeUC: getByCodeUC,
		getDetailUC: getDetailUC,
		trackUC:     trackUC,
		updateUC:    updateUC,
		receiptUC:   receiptUC,
		addLogUC:    addLogUC,
		listLogsUC:  listLogsUC,
		statsUC:     statsUC,
		logger:      logger,
	}
}

// CreateTicket handles POST /fichas/:id where :id names the client.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
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

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(adminID, clientID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListTickets handles GET /fichas
func (h *TicketHandler) ListTickets(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c, constants.DefaultPageSize, constants.MaxPageSize)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		AdminID:     adminID,
		Query:       c.Query("q"),
		Status:      c.Query("status"),
		CreatedFrom: c.Query("data_ini"),
		CreatedTo:   c.Query("data_fim"),
		Page:        p.Page,
		PageSize:    p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, p.Page, p.PageSize)
}

// ListMyTickets handles GET /minhas-fichas
func (h *TicketHandler) ListMyTickets(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c, constants.DefaultLogPageSize, constants.MaxPageSize)
	result, err := h.listMineUC.Execute(c.Request.Context(), usecases.ListMyTicketsQuery{
		AdminID:  adminID,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, p.Page, p.PageSize)
}

// GetTicketByCode handles GET /fichas/codigo/:codigo
func (h *TicketHandler) GetTicketByCode(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getByCodeUC.Execute(c.Request.Context(), adminID, c.Param("codigo"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicketDetail handles GET /fichas/:id/detail
func (h *TicketHandler) GetTicketDetail(c *gin.Context) {
	adminID, ticketID, ok := h.parseTicketRequest(c)
	if !ok {
		return
	}

	result, err := h.getDetailUC.Execute(c.Request.Context(), adminID, ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// TrackTicket handles the public GET /rastreio/:codigo
func (h *TicketHandler) TrackTicket(c *gin.Context) {
	result, err := h.trackUC.Execute(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PUT /fichas/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	adminID, ticketID, ok := h.parseTicketRequest(c)
	if !ok {
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("invalid request body for update ticket", "error", err, "ticket_id", ticketID)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		AdminID:  adminID,
		TicketID: ticketID,
		Patch:    patch,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DownloadReceipt handles GET /fichas/:id/pdf
func (h *TicketHandler) DownloadReceipt(c *gin.Context) {
	adminID, ticketID, ok := h.parseTicketRequest(c)
	if !ok {
		return
	}

	receipt, err := h.receiptUC.Execute(c.Request.Context(), adminID, ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.Filename))
	c.Data(http.StatusOK, "application/pdf", receipt.Content)
}

// AddLog handles POST /fichas/:id/logs
func (h *TicketHandler) AddLog(c *gin.Context) {
	adminID, ticketID, ok := h.parseTicketRequest(c)
	if !ok {
		return
	}

	var req AddLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.addLogUC.Execute(c.Request.Context(), usecases.AddUpdateLogCommand{
		AdminID:     adminID,
		TicketID:    ticketID,
		Status:      req.Status,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Log added successfully")
}

// ListLogs handles GET /fichas/:id/logs
func (h *TicketHandler) ListLogs(c *gin.Context) {
	adminID, ticketID, ok := h.parseTicketRequest(c)
	if !ok {
		return
	}

	result, err := h.listLogsUC.Execute(c.Request.Context(), adminID, ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Stats handles GET /fichas/estatisticas
func (h *TicketHandler) Stats(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	months := utils.ParseQueryInt(c, "limit_months", constants.DefaultStatsMonths)
	result, err := h.statsUC.Execute(c.Request.Context(), adminID, months)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// parseTicketRequest reads the caller and the :id parameter, writing the
// error response itself when either is missing.
func (h *TicketHandler) parseTicketRequest(c *gin.Context) (adminID, ticketID uint, ok bool) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	ticketID, err = utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	return adminID, ticketID, true
}
