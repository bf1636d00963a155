package middleware

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"twitter-gate-service/domain"
	"twitter-gate-service/httperrors"
	"twitter-gate-service/request"
)

type HttpError interface {
	WriteError(w http.ResponseWriter) error
}

// ErrorHandler converts failures into the uniform error payload. Each
// error kind keeps its own errorCode so the caller can tell a
// misconfiguration from an upstream fault.
func ErrorHandler(logger log.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			err := next.Handle(ctx)
			if err == nil {
				return nil
			}

			logger.Error(ctx.Context(), err)

			httpErr, ok := err.(HttpError)
			if ok {
				return httpErr.WriteError(ctx.ResponseWriter())
			}

			configErr := domain.ConfigurationError{}
			if errors.As(err, &configErr) {
				return httperrors.
					New(http.StatusInternalServerError, domain.ErrorCodeConfiguration, configErr.Error(), err).
					WriteError(ctx.ResponseWriter())
			}

			upstreamErr := domain.UpstreamError{}
			if errors.As(err, &upstreamErr) {
				return httperrors.
					New(http.StatusBadGateway, domain.ErrorCodeUpstreamApi, "twitter api request failed", err).
					WithDetails(upstreamErr.Api, upstreamErr.StatusCode, upstreamErr.Body).
					WriteError(ctx.ResponseWriter())
			}

			return httperrors.
				New(http.StatusInternalServerError, "INTERNAL_SERVICE_ERROR", "internal service error", err).
				WriteError(ctx.ResponseWriter())
		})
	}
}
