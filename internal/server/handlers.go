// internal/server/handlers.go
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"activities-api/internal/common/errors"
	"activities-api/internal/common/metrics"
)

// messageResponse is the success body for the mutating endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status     string `json:"status"`
	Activities int    `json:"activities"`
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Activities())
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		s.reject(w, r, errors.NewMissingParameterError("email"))
		return
	}

	if err := s.registry.Signup(name, email); err != nil {
		s.reject(w, r, err)
		return
	}

	metrics.SignupsTotal.WithLabelValues(name).Inc()
	s.log.Info("Participant signed up", map[string]interface{}{
		"activity": name,
		"email":    email,
	})

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		s.reject(w, r, errors.NewMissingParameterError("email"))
		return
	}

	if err := s.registry.Unregister(name, email); err != nil {
		s.reject(w, r, err)
		return
	}

	metrics.UnregistrationsTotal.WithLabelValues(name).Inc()
	s.log.Info("Participant unregistered", map[string]interface{}{
		"activity": name,
		"email":    email,
	})

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Activities: s.registry.Count(),
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// reject counts the failure and delegates the response body to the
// error handler.
func (s *Server) reject(w http.ResponseWriter, r *http.Request, err error) {
	if apiErr, ok := err.(*errors.APIError); ok {
		metrics.RequestErrorsTotal.WithLabelValues(routePattern(r), string(apiErr.Code)).Inc()
	}
	s.errs.HandleRequestError(w, r, err)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
