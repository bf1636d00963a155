package service

import (
	"context"

	"twitter-gate-service/twitter"
)

// TwitterClients supplies the cached handle pair. The first call may
// fail with a configuration error, every service surfaces it as is.
type TwitterClients interface {
	Clients(ctx context.Context) (twitter.Modern, twitter.Legacy, error)
}

// clampCount maps an optional caller-supplied page size onto the bounds
// the platform documents for the endpoint instead of passing through an
// out-of-range value.
func clampCount(requested *int, floor int, ceil int, fallback int) int {
	if requested == nil {
		return fallback
	}
	count := *requested
	if count < floor {
		return floor
	}
	if count > ceil {
		return ceil
	}
	return count
}
