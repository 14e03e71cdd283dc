package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"oficina/internal/shared/logger"
	"oficina/internal/shared/utils"
	"oficina/internal/shared/version"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger logger.Interface
}

func NewHealthHandler(db Pinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health handles GET /health. The process is live even when the database
// is not; the database state is reported alongside.
func (h *HealthHandler) Health(c *gin.Context) {
	status := gin.H{"status": "ok", "database": "ok", "version": version.String()}
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.logger.Warnw("health check: database unreachable", "error", err)
			status["database"] = "unavailable"
		}
	}
	utils.SuccessResponse(c, http.StatusOK, "", status)
}
