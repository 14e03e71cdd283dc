package admin

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"oficina/internal/application/admin/usecases"
	"oficina/internal/shared/config"
	"oficina/internal/shared/constants"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
	"oficina/internal/shared/utils"
)

// multipartOverhead is added to the photo limit to leave room for the
// multipart framing around the file part.
const multipartOverhead = 64 << 10

type Handler struct {
	loginUC          loginUseCase
	getProfileUC     getProfileUseCase
	uploadPhotoUC    uploadPhotoUseCase
	listAccessLogsUC listAccessLogsUseCase
	cookie           config.CookieConfig
	maxPhotoBytes    int64
	logger           logger.Interface
}

func NewHandler(
	loginUC loginUseCase,
	getProfileUC getProfileUseCase,
	uploadPhotoUC uploadPhotoUseCase,
	listAccessLogsUC listAccessLogsUseCase,
	cookie config.CookieConfig,
	maxPhotoBytes int64,
	logger logger.Interface,
) *Handler {
	return &Handler{
		loginUC:          loginUC,
		getProfileUC:     getProfileUC,
		uploadPhotoUC:    uploadPhotoUC,
		listAccessLogsUC: listAccessLogsUC,
		cookie:           cookie,
		maxPhotoBytes:    maxPhotoBytes,
		logger:           logger,
	}
}

// Login handles POST /admin/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
		Address:  c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	expiresIn := int(result.ExpiresIn.Seconds())
	if h.cookie.Enabled {
		utils.SetAccessTokenCookie(c, h.cookie, result.AccessToken, expiresIn)
		utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
			TokenType: "cookie",
			ExpiresIn: expiresIn,
		})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	})
}

// Me handles GET /usuario/me
func (h *Handler) Me(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	profile, err := h.getProfileUC.Execute(c.Request.Context(), adminID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// UploadPhoto handles POST /upload-foto (multipart field "foto").
func (h *Handler) UploadPhoto(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxPhotoBytes+multipartOverhead)
	file, err := c.FormFile("foto")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			utils.ErrorResponseWithError(c, errors.NewPayloadTooLargeError("File too large"))
			return
		}
		utils.ErrorResponseWithError(c, errors.NewValidationError("foto is required"))
		return
	}
	if file.Size > h.maxPhotoBytes {
		utils.ErrorResponseWithError(c, errors.NewPayloadTooLargeError("File too large"))
		return
	}

	f, err := file.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded photo", "error", err, "admin_id", adminID)
		utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxPhotoBytes+1))
	if err != nil {
		h.logger.Errorw("failed to read uploaded photo", "error", err, "admin_id", adminID)
		utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
		return
	}

	path, err := h.uploadPhotoUC.Execute(c.Request.Context(), usecases.UploadPhotoCommand{
		AdminID:     adminID,
		Data:        data,
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Photo updated", PhotoResponse{PhotoPath: &path})
}

// AccessLogs handles GET /logs
func (h *Handler) AccessLogs(c *gin.Context) {
	adminID, err := utils.GetAdminID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c, constants.DefaultLogPageSize, constants.MaxPageSize)
	result, err := h.listAccessLogsUC.Execute(c.Request.Context(), usecases.ListAccessLogsQuery{
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
