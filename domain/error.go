package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrTrendsCacheMiss = errors.New("trends cache miss")
)

const (
	ErrorCodeConfiguration     = "CONFIGURATION_ERROR"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeUpstreamApi       = "UPSTREAM_API_ERROR"
	ErrorCodeInvalidRequest    = "INVALID_REQUEST"
)

// ConfigurationError is returned on the first client handle acquisition
// when one of the required secrets is absent. It is never retried.
type ConfigurationError struct {
	Missing string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Missing)
}

// UpstreamError carries a non-2xx answer of the Twitter API as is,
// without any interpretation.
type UpstreamError struct {
	Api        string
	StatusCode int
	Body       string
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("twitter api %s responded with status %d: %s", e.Api, e.StatusCode, e.Body)
}
