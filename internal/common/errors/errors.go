// Package errors provides standardized error handling for the activities API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp  ErrorCode = "ALREADY_SIGNED_UP"
	ErrCodeNotSignedUp      ErrorCode = "NOT_SIGNED_UP"
	ErrCodeMissingParameter ErrorCode = "MISSING_PARAMETER"
	ErrCodeSeedInvalid      ErrorCode = "SEED_INVALID"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a structured, client-facing application error.
// Detail is the text the client sees in the response body.
type APIError struct {
	Code      ErrorCode `json:"code"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Detail)
}

// HTTPStatus maps the error code to the status the HTTP layer writes.
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeActivityNotFound:
		return http.StatusNotFound
	case ErrCodeAlreadySignedUp, ErrCodeNotSignedUp, ErrCodeMissingParameter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// --- Error Constructors ---

// NewActivityNotFoundError reports an unknown activity name.
func NewActivityNotFoundError(activity string) *APIError {
	return &APIError{
		Code:      ErrCodeActivityNotFound,
		Detail:    "Activity not found",
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadySignedUpError reports a duplicate signup for one activity.
func NewAlreadySignedUpError(email, activity string) *APIError {
	return &APIError{
		Code:      ErrCodeAlreadySignedUp,
		Detail:    fmt.Sprintf("%s is already signed up for %s", email, activity),
		Timestamp: time.Now().UTC(),
	}
}

// NewNotSignedUpError reports an unregister target that is not on the roster.
func NewNotSignedUpError(email, activity string) *APIError {
	return &APIError{
		Code:      ErrCodeNotSignedUp,
		Detail:    fmt.Sprintf("%s is not signed up for %s", email, activity),
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingParameterError reports an absent required query parameter.
func NewMissingParameterError(param string) *APIError {
	return &APIError{
		Code:      ErrCodeMissingParameter,
		Detail:    fmt.Sprintf("Missing required query parameter: %s", param),
		Timestamp: time.Now().UTC(),
	}
}

// NewSeedInvalidError reports a roster seed file that failed validation.
func NewSeedInvalidError(details string) *APIError {
	return &APIError{
		Code:      ErrCodeSeedInvalid,
		Detail:    fmt.Sprintf("Seed file rejected: %s", details),
		Timestamp: time.Now().UTC(),
	}
}
