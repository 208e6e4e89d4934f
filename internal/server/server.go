// Package server exposes the activity registry over HTTP.
package server

import (
	"net/http"

	"activities-api/internal/common/errors"
	"activities-api/internal/common/logger"
	"activities-api/internal/common/observability"
	"activities-api/internal/registry"
)

// Server wires the registry to the HTTP routes. The registry is
// injected so tests can construct a fresh instance per test.
type Server struct {
	registry  *registry.Registry
	log       logger.Logger
	errs      *errors.ErrorHandler
	obs       *observability.Observability
	staticDir string
}

func New(reg *registry.Registry, log logger.Logger, obs *observability.Observability, staticDir string) *Server {
	return &Server{
		registry:  reg,
		log:       log,
		errs:      errors.NewErrorHandler(log),
		obs:       obs,
		staticDir: staticDir,
	}
}

// Handler returns the routed HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /activities", s.handleListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", s.handleSignup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", s.handleUnregister)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir))))

	return s.withRequestID(s.withTelemetry(mux))
}
