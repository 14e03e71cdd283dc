package http

import (
	"context"

	"oficina/internal/application/access"
	"oficina/internal/application/notification"
	"oficina/internal/infrastructure/auth"
	"oficina/internal/infrastructure/email"
	"oficina/internal/infrastructure/ratelimit"
	"oficina/internal/infrastructure/receipt"
	"oficina/internal/infrastructure/storage"
	"oficina/internal/shared/db"
	"oficina/internal/shared/services/markdown"
)

// services holds the infrastructure services shared by several use cases.
type services struct {
	store     ratelimit.CounterStore
	hasher    *auth.BcryptPasswordHasher
	jwtSvc    *auth.JWTService
	limiter   *ratelimit.LoginLimiter
	guard     *access.Guard
	txMgr     *db.TransactionManager
	mailer    email.Sender
	templates *email.Templates
	notifier  *notification.TicketNotifier
	receipts  *receipt.PDFRenderer
	photos    *storage.PhotoStore
}

func (c *Container) initServices() {
	cfg := c.cfg

	// Falls back to an in-process store when redis is unreachable.
	store, closeStore := ratelimit.NewCounterStore(context.Background(), cfg.Redis, c.log)
	c.closeCounterStore = closeStore

	limiter := ratelimit.NewLoginLimiter(store, ratelimit.LoginLimiterConfig{
		MaxAttempts:  cfg.RateLimit.MaxAttempts,
		Lockout:      cfg.RateLimit.Lockout(),
		StoreTimeout: cfg.RateLimit.StoreTimeout(),
	}, c.log)

	mailer := email.NewSender(cfg.Email, c.log)
	templates := email.NewTemplates(markdown.NewRenderer(), cfg.Receipt.ShopName, cfg.Server.BaseURL)

	c.svcs = &services{
		store:     store,
		hasher:    auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		jwtSvc:    auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes),
		limiter:   limiter,
		guard:     access.NewGuard(c.repos.clientRepo, c.repos.ticketRepo, c.repos.updateLogRepo),
		txMgr:     db.NewTransactionManager(c.db),
		mailer:    mailer,
		templates: templates,
		notifier:  notification.NewTicketNotifier(templates, mailer, c.log),
		receipts:  receipt.NewPDFRenderer(cfg.Receipt, cfg.Server.BaseURL, c.log),
		photos:    storage.NewPhotoStore(cfg.Server.StaticDir, cfg.Upload.MaxPhotoBytes, c.log),
	}
}
