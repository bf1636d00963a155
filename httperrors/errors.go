package httperrors

import (
	"net/http"

	"github.com/txix-open/isp-kit/json"
)

type HttpError struct {
	statusCode  int
	errorCode   string
	userMessage string
	details     []interface{}
	err         error
}

func New(statusCode int, errorCode string, userMessage string, internalError error) HttpError {
	return HttpError{
		statusCode:  statusCode,
		errorCode:   errorCode,
		userMessage: userMessage,
		err:         internalError,
	}
}

func (e HttpError) Error() string {
	return e.err.Error()
}

func (e HttpError) WriteError(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.statusCode)
	data := map[string]interface{}{
		"errorCode":    e.errorCode,
		"errorMessage": e.userMessage,
		"details":      e.details,
	}
	return json.NewEncoder(w).Encode(data)
}

func (e HttpError) WithDetails(details ...interface{}) HttpError {
	e.details = details
	return e
}
