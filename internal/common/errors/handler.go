// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorHandler writes request errors as structured HTTP responses.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// errorBody is the wire shape clients match against: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail"`
}

// HandleRequestError normalizes any error to an APIError, logs it, and
// writes the {"detail": ...} body with the mapped status.
func (h *ErrorHandler) HandleRequestError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := h.normalizeError(err)

	h.logRequestError(r, apiErr)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.HTTPStatus())
	_ = json.NewEncoder(w).Encode(errorBody{Detail: apiErr.Detail})
}

// normalizeError ensures we always have an APIError.
func (h *ErrorHandler) normalizeError(err error) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return &APIError{
		Code:      ErrCodeInternal,
		Detail:    "Internal server error",
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) logRequestError(r *http.Request, apiErr *APIError) {
	fields := map[string]interface{}{
		"method":    r.Method,
		"path":      r.URL.Path,
		"errorCode": string(apiErr.Code),
		"detail":    apiErr.Detail,
		"status":    apiErr.HTTPStatus(),
	}

	// Client mistakes are expected traffic; only server faults are errors.
	if apiErr.HTTPStatus() >= http.StatusInternalServerError {
		h.logger.Error("Request failed", fields)
	} else {
		h.logger.Warn("Request rejected", fields)
	}
}
