package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"twitter-gate-service/domain"
	"twitter-gate-service/httperrors"
	"twitter-gate-service/request"
)

type RateLimiter interface {
	Admit(ctx context.Context, category string) (bool, error)
}

// RateLimit guards a categorized operation. Rejection is final for the
// call, backing off and retrying is the caller's decision.
func RateLimit(limiter RateLimiter, category string) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			if category == "" {
				return next.Handle(ctx)
			}

			allowed, err := limiter.Admit(ctx.Context(), category)
			if err != nil {
				return errors.WithMessage(err, "rate limit: admit")
			}
			if !allowed {
				return httperrors.New(
					http.StatusTooManyRequests,
					domain.ErrorCodeRateLimitExceeded,
					fmt.Sprintf("%s rate limit exceeded", category),
					errors.Errorf("rate limit: admission denied for category '%s'", category),
				)
			}

			return next.Handle(ctx)
		})
	}
}
