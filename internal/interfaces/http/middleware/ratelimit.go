package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"oficina/internal/shared/logger"
	"oficina/internal/shared/utils"
)

// WindowCounter is the subset of an expiring counter store the request
// limiter needs.
type WindowCounter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// RateLimiter limits requests per client IP with a fixed-window counter.
// Each window gets its own key with a TTL slightly longer than the window.
type RateLimiter struct {
	counter WindowCounter
	scope   string
	limit   int64
	window  time.Duration
	timeout time.Duration
	now     func() time.Time
	logger  logger.Interface
}

// NewRateLimiter creates a limiter allowing limit requests per window.
// scope separates the keys of independent limiters sharing one store.
func NewRateLimiter(counter WindowCounter, scope string, limit int64, window time.Duration, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		counter: counter,
		scope:   scope,
		limit:   limit,
		window:  window,
		timeout: 500 * time.Millisecond,
		now:     time.Now,
		logger:  log,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
// A limit of zero or less disables it.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 || rl.window <= 0 {
			c.Next()
			return
		}

		windowBucket := rl.now().UnixNano() / int64(rl.window)
		key := fmt.Sprintf("ratelimit:%s:%s:%d", rl.scope, c.ClientIP(), windowBucket)

		ctx, cancel := context.WithTimeout(c.Request.Context(), rl.timeout)
		defer cancel()

		count, err := rl.counter.Incr(ctx, key)
		if err != nil {
			// Store unavailable: let the request through.
			rl.logger.Warnw("request rate limiter unavailable", "scope", rl.scope, "error", err)
			c.Next()
			return
		}

		if count == 1 {
			if err := rl.counter.Expire(ctx, key, rl.window+time.Second); err != nil {
				rl.logger.Warnw("failed to set rate limit window expiry", "key", key, "error", err)
			}
		}

		if count > rl.limit {
			c.Header("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
