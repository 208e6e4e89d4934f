package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Error(msg string, fields map[string]interface{}) {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}

func TestAPIError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err    *APIError
		status int
	}{
		{NewActivityNotFoundError("Chess Club"), http.StatusNotFound},
		{NewAlreadySignedUpError("a@e.du", "Chess Club"), http.StatusBadRequest},
		{NewNotSignedUpError("a@e.du", "Chess Club"), http.StatusBadRequest},
		{NewMissingParameterError("email"), http.StatusBadRequest},
		{NewSeedInvalidError("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus())
		})
	}
}

func TestHandleRequestError_WritesDetailBody(t *testing.T) {
	h := NewErrorHandler(nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil)

	rec := httptest.NewRecorder()
	h.HandleRequestError(rec, req, NewAlreadySignedUpError("michael@mergington.edu", "Chess Club"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Detail, "already signed up")
}

func TestHandleRequestError_NormalizesUnknownErrors(t *testing.T) {
	h := NewErrorHandler(nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/activities", nil)

	rec := httptest.NewRecorder()
	h.HandleRequestError(rec, req, fmt.Errorf("plain failure"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Detail)
}
