package http

import (
	"net/http"

	"gorm.io/gorm"

	"oficina/internal/infrastructure/config"
	"oficina/internal/infrastructure/telemetry"
	"oficina/internal/shared/logger"
)

// Router owns the gin engine and the dependency container behind it.
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	return &Router{Container: NewContainer(db, cfg, log)}
}

// Handler returns the engine wrapped with request tracing.
func (r *Router) Handler() http.Handler {
	return telemetry.WrapHandler(r.engine, r.cfg.Telemetry.ServiceName)
}
