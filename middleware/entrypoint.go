package middleware

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"twitter-gate-service/request"
)

func Entrypoint(maxReqBodySize int64, next Handler, pathPrefix string, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		req.Body = http.MaxBytesReader(writer, req.Body, maxReqBodySize)
		endpoint := strings.TrimPrefix(strings.TrimPrefix(req.URL.Path, pathPrefix), "/")
		ctx := request.NewContext(req, writer, endpoint)
		err := next.Handle(ctx)
		if err != nil {
			logger.Error(req.Context(), errors.WithMessage(err, "uncaught error"))
		}
	})
}
