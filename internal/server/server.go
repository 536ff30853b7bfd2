// Package server exposes a minimal HTTP surface for the benchmark harness:
// a /metrics endpoint for Prometheus scraping, wrapped in the same security
// and request-tracking middleware regardless of which handler it fronts.
package server

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Server bundles the metrics registry, logger, and security policy that
// every registered handler shares.
type Server struct {
	metrics  *Metrics
	logger   zerolog.Logger
	security SecurityConfig
}

// New builds a Server ready to register handlers on a *http.ServeMux.
func New(logger zerolog.Logger) *Server {
	return &Server{
		metrics:  NewMetrics(),
		logger:   logger,
		security: DefaultSecurityConfig(),
	}
}

// ObserveCalculation records how long one Fibonacci calculation took, for
// the fibnum_calculation_duration_seconds histogram on /metrics.
func (s *Server) ObserveCalculation(seconds float64) { s.metrics.ObserveCalculation(seconds) }

// Mux registers /metrics (and any future endpoints) on a fresh ServeMux.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleMetrics)))
	return mux
}

// metricsMiddleware tracks in-flight and total request counts around next,
// decrementing even if next panics.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		s.metrics.CountRequest(r.URL.Path)
		next(w, r)
	}
}

// handleMetrics serves the Prometheus exposition for GET requests and
// rejects anything else.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}
