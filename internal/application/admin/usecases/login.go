package usecases

import (
	"context"
	"time"

	"oficina/internal/domain/accesslog"
	"oficina/internal/domain/admin"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
	// Address is the client's network address; empty when unknown.
	Address string
}

type LoginResult struct {
	AdminID     uint
	AccessToken string
	ExpiresIn   time.Duration
}

type LoginUseCase struct {
	admins     admin.Repository
	accessLogs accesslog.Repository
	hasher     PasswordHasher
	tokens     TokenIssuer
	limiter    AttemptLimiter
	logger     logger.Interface
}

func NewLoginUseCase(
	admins admin.Repository,
	accessLogs accesslog.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	limiter AttemptLimiter,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		admins:     admins,
		accessLogs: accessLogs,
		hasher:     hasher,
		tokens:     tokens,
		limiter:    limiter,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if !uc.limiter.MayAttempt(ctx, cmd.Email, cmd.Address) {
		uc.logger.Warnw("login blocked by rate limiter", "email", admin.NormalizeEmail(cmd.Email), "address", cmd.Address)
		return nil, errors.NewRateLimitedError("Too many login attempts. Try again later")
	}

	a, err := uc.admins.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if a == nil || uc.hasher.Verify(cmd.Password, a.PasswordHash()) != nil {
		uc.limiter.RecordFailure(ctx, cmd.Email, cmd.Address)
		uc.logger.Infow("login failed", "email", admin.NormalizeEmail(cmd.Email), "address", cmd.Address)
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := uc.accessLogs.Create(ctx, accesslog.NewAccessLog(a.ID(), accesslog.ActionLogin, accesslog.IPDetail(cmd.Address))); err != nil {
		uc.logger.Warnw("failed to record login access log", "admin_id", a.ID(), "error", err)
	}
	uc.limiter.Reset(ctx, cmd.Email, cmd.Address)

	token, err := uc.tokens.Generate(a.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "admin_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to issue access token")
	}

	uc.logger.Infow("admin logged in", "admin_id", a.ID())
	return &LoginResult{AdminID: a.ID(), AccessToken: token, ExpiresIn: uc.tokens.AccessTTL()}, nil
}
