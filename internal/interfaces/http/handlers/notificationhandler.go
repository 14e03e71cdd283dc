package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
	"oficina/internal/shared/utils"
)

// SendEmailRequest names the recipients as a comma separated list.
type SendEmailRequest struct {
	Recipients string `json:"destinatario"`
}

type NotificationHandler struct {
	sendUpdateEmailUC sendUpdateEmailUseCase
	logger            logger.Interface
}

func NewNotificationHandler(sendUpdateEmailUC sendUpdateEmailUseCase, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		sendUpdateEmailUC: sendUpdateEmailUC,
		logger:            logger,
	}
}

// SendUpdateEmail handles POST /notificacoes/email. Recipients come from
// the JSON body or, when absent, the "destinatario" query parameter.
func (h *NotificationHandler) SendUpdateEmail(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendEmailRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
			return
		}
	}
	if strings.TrimSpace(req.Recipients) == "" {
		req.Recipients = c.Query("destinatario")
	}
	if strings.TrimSpace(req.Recipients) == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("destinatario is required"))
		return
	}

	if err := h.sendUpdateEmailUC.Execute(c.Request.Context(), adminID, req.Recipients); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email sent", nil)
}
