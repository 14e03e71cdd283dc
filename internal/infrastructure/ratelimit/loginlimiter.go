package ratelimit

import (
	"context"
	"strings"
	"time"

	"oficina/internal/shared/logger"
	"oficina/internal/shared/utils"
)

const (
	DefaultMaxAttempts  = 50
	DefaultLockout      = 1000 * time.Second
	DefaultStoreTimeout = 500 * time.Millisecond

	keyPrefix = "login_attempts"

	// UnknownAddress is used when the client address is missing. Every such
	// request shares one bucket.
	UnknownAddress = "unknown"
)

type LoginLimiterConfig struct {
	MaxAttempts  int64
	Lockout      time.Duration
	StoreTimeout time.Duration
}

// LoginLimiter counts failed logins per normalized email and source address.
// The window opens at the first failure and lasts Lockout. Store failures
// never block a login: reads fail open and writes are dropped with a warning.
type LoginLimiter struct {
	store  CounterStore
	cfg    LoginLimiterConfig
	logger logger.Interface
}

func NewLoginLimiter(store CounterStore, cfg LoginLimiterConfig, log logger.Interface) *LoginLimiter {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Lockout <= 0 {
		cfg.Lockout = DefaultLockout
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultStoreTimeout
	}
	return &LoginLimiter{store: store, cfg: cfg, logger: log}
}

// AttemptKey builds "login_attempts:{email}:{address}".
func AttemptKey(email, address string) string {
	email, address = normalize(email, address)
	return keyPrefix + ":" + email + ":" + address
}

func normalize(email, address string) (string, string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if address == "" {
		address = UnknownAddress
	}
	return email, address
}

// logFields identifies the counter in logs without exposing the full email.
func logFields(email, address string) []any {
	email, address = normalize(email, address)
	return []any{"email", utils.MaskEmail(email), "address", address}
}

// MayAttempt is false only when the counter exists and has reached the
// ceiling.
func (l *LoginLimiter) MayAttempt(ctx context.Context, email, address string) bool {
	key := AttemptKey(email, address)
	ctx, cancel := context.WithTimeout(ctx, l.cfg.StoreTimeout)
	defer cancel()

	count, found, err := l.store.Get(ctx, key)
	if err != nil {
		l.logger.Warnw("login attempt store unavailable, allowing attempt", append(logFields(email, address), "error", err)...)
		return true
	}
	return !found || count < l.cfg.MaxAttempts
}

// RecordFailure increments the counter and starts the lockout window on
// the first failure.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email, address string) {
	key := AttemptKey(email, address)
	ctx, cancel := context.WithTimeout(ctx, l.cfg.StoreTimeout)
	defer cancel()

	count, err := l.store.Incr(ctx, key)
	if err != nil {
		l.logger.Warnw("failed to record login failure", append(logFields(email, address), "error", err)...)
		return
	}
	if count != 1 {
		return
	}
	if err := l.store.Expire(ctx, key, l.cfg.Lockout); err != nil {
		// the counter stays without a TTL until the next successful login
		l.logger.Warnw("failed to set login attempt expiry", append(logFields(email, address), "error", err)...)
	}
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email, address string) {
	key := AttemptKey(email, address)
	ctx, cancel := context.WithTimeout(ctx, l.cfg.StoreTimeout)
	defer cancel()

	if err := l.store.Del(ctx, key); err != nil {
		l.logger.Warnw("failed to reset login attempts", append(logFields(email, address), "error", err)...)
	}
}
