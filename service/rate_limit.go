package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"twitter-gate-service/domain"
)

type RateLimitRepo interface {
	Take(ctx context.Context, category string, limit int, window time.Duration) (bool, error)
}

// RateLimit decides admission for categorized operations. A category
// without a configured policy always admits, that is an explicit
// "no limit configured" escape, not an error.
type RateLimit struct {
	repo     RateLimitRepo
	policies map[string]domain.RateLimitPolicy
}

func NewRateLimit(repo RateLimitRepo, policies map[string]domain.RateLimitPolicy) RateLimit {
	return RateLimit{
		repo:     repo,
		policies: policies,
	}
}

func (s RateLimit) Admit(ctx context.Context, category string) (bool, error) {
	policy, ok := s.policies[category]
	if !ok {
		return true, nil
	}

	allowed, err := s.repo.Take(ctx, category, policy.Limit, policy.Window)
	if err != nil {
		return false, errors.WithMessage(err, "take from counter store")
	}

	return allowed, nil
}
