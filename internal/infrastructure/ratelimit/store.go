// Package ratelimit bounds failed login attempts per (email, origin) pair on
// top of an expiring counter store.
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"oficina/internal/shared/config"
	"oficina/internal/shared/logger"
)

// CounterStore is a shared integer counter with key expiry. Incr must be
// atomic across concurrent callers. Expired keys read as absent.
type CounterStore interface {
	// Get returns the counter and whether the key exists.
	Get(ctx context.Context, key string) (int64, bool, error)
	// Incr adds one and returns the new value, creating the key at 1.
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

const pingTimeout = 2 * time.Second

// NewCounterStore connects to Redis and falls back to an in-process store
// when Redis does not answer. The fallback is neither durable nor shared, so
// it only suits single-process deployments. The returned close func releases
// the Redis client if one was opened.
func NewCounterStore(ctx context.Context, cfg config.RedisConfig, log logger.Interface) (CounterStore, func() error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		log.Warnw("redis unavailable, using in-memory login attempt counters",
			"addr", cfg.GetAddr(),
			"error", err,
		)
		return NewMemoryCounterStore(), func() error { return nil }
	}

	log.Infow("login attempt counters backed by redis", "addr", cfg.GetAddr())
	return NewRedisCounterStore(client), client.Close
}
