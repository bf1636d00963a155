package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RateLimitRedis shares fixed-window counters between replicas.
// The key carries the window index, so all replicas agree on the window
// boundary. Unlike the in-memory store, a rejected call still increments
// the counter.
type RateLimitRedis struct {
	cli redis.UniversalClient
}

func NewRateLimitRedis(cli redis.UniversalClient) RateLimitRedis {
	return RateLimitRedis{
		cli: cli,
	}
}

func (r RateLimitRedis) Take(ctx context.Context, category string, limit int, window time.Duration) (bool, error) {
	key := r.key(category, time.Now(), window)
	value, err := r.cli.Incr(ctx, key).Result()
	if err != nil {
		return false, errors.WithMessage(err, "incr")
	}

	if value == 1 {
		err := r.cli.ExpireNX(ctx, key, window).Err()
		if err != nil {
			return false, errors.WithMessage(err, "expire nx")
		}
	}

	return value <= int64(limit), nil
}

func (r RateLimitRedis) key(category string, now time.Time, window time.Duration) string {
	return fmt.Sprintf("rate_limit:%s:%d", category, now.UnixNano()/int64(window))
}
