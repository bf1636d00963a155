package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
	"twitter-gate-service/cache"
	"twitter-gate-service/domain"
)

// TrendsCache shields the legacy trends endpoint, it is the most strictly
// limited one upstream and its payload changes slowly.
type TrendsCache struct {
	cache    *cache.Cache
	duration time.Duration
}

func NewTrendsCache(duration time.Duration) TrendsCache {
	return TrendsCache{
		cache:    cache.New(),
		duration: duration,
	}
}

func (r TrendsCache) Get(ctx context.Context, woeid int) ([]domain.Trend, error) {
	data, ok := r.cache.Get(r.key(woeid))
	if !ok {
		return nil, domain.ErrTrendsCacheMiss
	}

	result := make([]domain.Trend, 0)
	err := json.Unmarshal(data, &result)
	if err != nil {
		return nil, errors.WithMessage(err, "json unmarshal trends")
	}

	return result, nil
}

func (r TrendsCache) Set(ctx context.Context, woeid int, trends []domain.Trend) error {
	value, err := json.Marshal(trends)
	if err != nil {
		return errors.WithMessage(err, "json marshal trends")
	}

	r.cache.Set(r.key(woeid), value, r.duration)

	return nil
}

func (r TrendsCache) key(woeid int) string {
	return fmt.Sprintf("trends:%d", woeid)
}
