package repository

import (
	"context"
	"sync"
	"time"
)

type counter struct {
	count     int
	resetTime time.Time
}

// RateLimitMemory keeps fixed-window counters in process memory.
// A counter is created on first reference and reset in place when its
// window elapses; count never leaves [0, limit]. A single coarse lock
// guards the whole map, the category table is small and contention is low.
type RateLimitMemory struct {
	lock     sync.Mutex
	counters map[string]*counter
	now      func() time.Time
}

type RateLimitMemoryOption func(r *RateLimitMemory)

func WithClock(now func() time.Time) RateLimitMemoryOption {
	return func(r *RateLimitMemory) {
		r.now = now
	}
}

func NewRateLimitMemory(opts ...RateLimitMemoryOption) *RateLimitMemory {
	r := &RateLimitMemory{
		counters: make(map[string]*counter),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RateLimitMemory) Take(ctx context.Context, category string, limit int, window time.Duration) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	now := r.now()
	c, ok := r.counters[category]
	if !ok {
		c = &counter{resetTime: now}
		r.counters[category] = c
	}

	if !now.Before(c.resetTime) {
		c.count = 0
		c.resetTime = now.Add(window)
	}

	if c.count >= limit {
		return false, nil
	}
	c.count++
	return true, nil
}
