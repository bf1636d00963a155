// Package controller binds the operation handlers to the transport:
// it decodes the named-parameter record of a call, invokes the service
// and serializes the result back.
package controller

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
	"twitter-gate-service/domain"
	"twitter-gate-service/httperrors"
	"twitter-gate-service/request"
)

// bindRequest decodes the request body into the operation record.
// An empty body is a valid empty record, several operations take no
// parameters at all.
func bindRequest(ctx *request.Context, into any) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return errors.WithMessage(err, "read request body")
	}
	if len(body) == 0 {
		return nil
	}

	err = json.Unmarshal(body, into)
	if err != nil {
		return httperrors.New(
			http.StatusBadRequest,
			domain.ErrorCodeInvalidRequest,
			"invalid request body",
			errors.WithMessage(err, "json unmarshal request"),
		)
	}
	return nil
}

func requireParam(value string, name string) error {
	if value != "" {
		return nil
	}
	return httperrors.New(
		http.StatusBadRequest,
		domain.ErrorCodeInvalidRequest,
		name+" is required",
		errors.Errorf("required parameter '%s' is empty", name),
	)
}

func respondJson(ctx *request.Context, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithMessage(err, "json marshal response")
	}

	w := ctx.ResponseWriter()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(data)
	if err != nil {
		return errors.WithMessage(err, "response write")
	}
	return nil
}
