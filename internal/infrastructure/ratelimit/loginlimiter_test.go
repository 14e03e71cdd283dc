package ratelimit

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina/internal/shared/logger"
)

func newTestLimiter(store CounterStore, maxAttempts int64) *LoginLimiter {
	return NewLoginLimiter(store, LoginLimiterConfig{
		MaxAttempts:  maxAttempts,
		Lockout:      1000 * time.Second,
		StoreTimeout: 50 * time.Millisecond,
	}, logger.NewNop())
}

func TestAttemptKey(t *testing.T) {
	assert.Equal(t, "login_attempts:a@x.com:1.2.3.4", AttemptKey("  A@X.com ", "1.2.3.4"))
	assert.Equal(t, "login_attempts:a@x.com:unknown", AttemptKey("a@x.com", ""))
}

func TestLoginLimiter_Defaults(t *testing.T) {
	l := NewLoginLimiter(NewMemoryCounterStore(), LoginLimiterConfig{}, logger.NewNop())
	assert.Equal(t, int64(DefaultMaxAttempts), l.cfg.MaxAttempts)
	assert.Equal(t, DefaultLockout, l.cfg.Lockout)
	assert.Equal(t, DefaultStoreTimeout, l.cfg.StoreTimeout)
}

func TestLoginLimiter_CeilingAndWindow(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	l := newTestLimiter(NewMemoryCounterStoreWithClock(clock.Now), 3)

	const email, addr = "a@x.com", "1.2.3.4"

	// failures at t=0,1,2
	for i := 0; i < 3; i++ {
		assert.True(t, l.MayAttempt(ctx, email, addr), "attempt %d should be allowed", i+1)
		l.RecordFailure(ctx, email, addr)
		if i < 2 {
			clock.Advance(time.Second)
		}
	}
	assert.False(t, l.MayAttempt(ctx, email, addr), "ceiling reached at t=2")

	// window is anchored to the first failure at t=0
	clock.Advance(997 * time.Second) // t=999
	assert.False(t, l.MayAttempt(ctx, email, addr))
	clock.Advance(2 * time.Second) // t=1001
	assert.True(t, l.MayAttempt(ctx, email, addr))
}

func TestLoginLimiter_BelowCeilingAllows(t *testing.T) {
	ctx := context.Background()
	l := newTestLimiter(NewMemoryCounterStore(), 5)

	for i := 0; i < 4; i++ {
		l.RecordFailure(ctx, "a@x.com", "1.2.3.4")
	}
	assert.True(t, l.MayAttempt(ctx, "a@x.com", "1.2.3.4"))

	l.RecordFailure(ctx, "a@x.com", "1.2.3.4")
	assert.False(t, l.MayAttempt(ctx, "a@x.com", "1.2.3.4"))
}

func TestLoginLimiter_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	l := newTestLimiter(NewMemoryCounterStore(), 1)

	l.RecordFailure(ctx, "A@x.com", "1.2.3.4")

	assert.False(t, l.MayAttempt(ctx, "a@x.com ", "1.2.3.4"), "email is normalized")
	assert.True(t, l.MayAttempt(ctx, "a@x.com", "5.6.7.8"))
	assert.True(t, l.MayAttempt(ctx, "b@x.com", "1.2.3.4"))
}

func TestLoginLimiter_UnknownAddressSharesBucket(t *testing.T) {
	ctx := context.Background()
	l := newTestLimiter(NewMemoryCounterStore(), 1)

	l.RecordFailure(ctx, "a@x.com", "")
	assert.False(t, l.MayAttempt(ctx, "a@x.com", UnknownAddress))
}

func TestLoginLimiter_ResetClearsImmediately(t *testing.T) {
	ctx := context.Background()
	l := newTestLimiter(NewMemoryCounterStore(), 2)

	l.RecordFailure(ctx, "a@x.com", "1.2.3.4")
	l.RecordFailure(ctx, "a@x.com", "1.2.3.4")
	require.False(t, l.MayAttempt(ctx, "a@x.com", "1.2.3.4"))

	l.Reset(ctx, "a@x.com", "1.2.3.4")
	assert.True(t, l.MayAttempt(ctx, "a@x.com", "1.2.3.4"))
}

func TestLoginLimiter_FirstFailureSetsExpiry(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := NewMemoryCounterStoreWithClock(clock.Now)
	l := newTestLimiter(store, 50)

	l.RecordFailure(ctx, "a@x.com", "1.2.3.4")
	l.RecordFailure(ctx, "a@x.com", "1.2.3.4")

	e := store.entries[AttemptKey("a@x.com", "1.2.3.4")]
	assert.Equal(t, int64(2), e.value)
	assert.Equal(t, clock.Now().Add(1000*time.Second), e.expiresAt)
}

func TestLoginLimiter_FailsOpenWhenStoreErrors(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{
		MemoryCounterStore: NewMemoryCounterStore(),
		getErr:             errStoreDown,
		incrErr:            errStoreDown,
		delErr:             errStoreDown,
	}
	l := newTestLimiter(store, 1)

	assert.NotPanics(t, func() {
		l.RecordFailure(ctx, "a@x.com", "1.2.3.4")
		l.Reset(ctx, "a@x.com", "1.2.3.4")
	})
	assert.True(t, l.MayAttempt(ctx, "a@x.com", "1.2.3.4"))
}

func TestLoginLimiter_StoreErrorLogsMaskEmail(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(&buf, nil)))
	store := &stubStore{
		MemoryCounterStore: NewMemoryCounterStore(),
		getErr:             errStoreDown,
		incrErr:            errStoreDown,
		delErr:             errStoreDown,
	}
	l := NewLoginLimiter(store, LoginLimiterConfig{MaxAttempts: 1}, log)
	ctx := context.Background()

	l.MayAttempt(ctx, "Admin@Oficina.com", "1.2.3.4")
	l.RecordFailure(ctx, "Admin@Oficina.com", "1.2.3.4")
	l.Reset(ctx, "Admin@Oficina.com", "")

	out := buf.String()
	assert.NotContains(t, out, "admin@oficina.com")
	assert.Contains(t, out, "a***@oficina.com")
	assert.Contains(t, out, "address=1.2.3.4")
	assert.Contains(t, out, "address=unknown")
}

func TestLoginLimiter_FailsOpenWhenStoreHangs(t *testing.T) {
	store := &stubStore{MemoryCounterStore: NewMemoryCounterStore(), block: true}
	l := newTestLimiter(store, 1)

	start := time.Now()
	allowed := l.MayAttempt(context.Background(), "a@x.com", "1.2.3.4")
	l.RecordFailure(context.Background(), "a@x.com", "1.2.3.4")

	assert.True(t, allowed)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestLoginLimiter_ExpireFailureKeepsCounter(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := &stubStore{
		MemoryCounterStore: NewMemoryCounterStoreWithClock(clock.Now),
		expireErr:          errStoreDown,
	}
	l := newTestLimiter(store, 1)

	l.RecordFailure(ctx, "a@x.com", "1.2.3.4")
	clock.Advance(2000 * time.Second)

	assert.False(t, l.MayAttempt(ctx, "a@x.com", "1.2.3.4"), "counter without TTL persists")

	l.Reset(ctx, "a@x.com", "1.2.3.4")
	assert.True(t, l.MayAttempt(ctx, "a@x.com", "1.2.3.4"))
}

func TestLoginLimiter_ConcurrentFailuresAreCounted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCounterStore()
	l := newTestLimiter(store, 1000)

	const workers = 100
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.RecordFailure(ctx, "a@x.com", "1.2.3.4")
		}()
	}
	wg.Wait()

	n, found, err := store.Get(ctx, AttemptKey("a@x.com", "1.2.3.4"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(workers), n)
}
