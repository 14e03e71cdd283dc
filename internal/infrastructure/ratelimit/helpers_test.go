package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var errStoreDown = errors.New("connection refused")

// stubStore lets tests fail or block individual operations.
type stubStore struct {
	*MemoryCounterStore
	getErr    error
	incrErr   error
	expireErr error
	delErr    error
	block     bool
}

func (s *stubStore) wait(ctx context.Context) error {
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (s *stubStore) Get(ctx context.Context, key string) (int64, bool, error) {
	if err := s.wait(ctx); err != nil {
		return 0, false, err
	}
	if s.getErr != nil {
		return 0, false, s.getErr
	}
	return s.MemoryCounterStore.Get(ctx, key)
}

func (s *stubStore) Incr(ctx context.Context, key string) (int64, error) {
	if err := s.wait(ctx); err != nil {
		return 0, err
	}
	if s.incrErr != nil {
		return 0, s.incrErr
	}
	return s.MemoryCounterStore.Incr(ctx, key)
}

func (s *stubStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if s.expireErr != nil {
		return s.expireErr
	}
	return s.MemoryCounterStore.Expire(ctx, key, ttl)
}

func (s *stubStore) Del(ctx context.Context, key string) error {
	if s.delErr != nil {
		return s.delErr
	}
	return s.MemoryCounterStore.Del(ctx, key)
}
