package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"oficina/internal/infrastructure/config"
	"oficina/internal/infrastructure/telemetry"
	"oficina/internal/interfaces/http/middleware"
	"oficina/internal/shared/logger"
)

// Container holds the infrastructure, repositories, use cases and handlers
// of the HTTP server, wired together once at startup.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	// Repositories
	repos *repositories

	// Infrastructure services
	svcs *services

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware    *middleware.AuthMiddleware
	publicRateLimiter *middleware.RateLimiter

	// Shutdown hooks
	closeCounterStore func() error
	shutdownTelemetry telemetry.ShutdownFunc
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - tracing, counter store, repositories
	c.shutdownTelemetry = telemetry.Setup(context.Background(), cfg.Telemetry, log)
	c.initRepositories()

	// Section 2: Services - auth, rate limit, access guard, mail, receipts
	c.initServices()

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers and middlewares
	c.initHandlers()

	return c
}

// Shutdown releases the counter store and flushes pending spans.
func (c *Container) Shutdown(ctx context.Context) {
	if c.closeCounterStore != nil {
		if err := c.closeCounterStore(); err != nil {
			c.log.Warnw("failed to close counter store", "error", err)
		}
	}
	if c.shutdownTelemetry != nil {
		if err := c.shutdownTelemetry(ctx); err != nil {
			c.log.Warnw("failed to shutdown telemetry", "error", err)
		}
	}
}
