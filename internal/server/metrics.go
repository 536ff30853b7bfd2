package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes the benchmark server's counters on a dedicated Prometheus
// registry, so repeated NewMetrics calls (one per test, one per server
// instance) never collide with process-global registration.
type Metrics struct {
	registry         *prometheus.Registry
	handler          http.Handler
	activeRequests   prometheus.Gauge
	requestsTotal    *prometheus.CounterVec
	calculationTimes prometheus.Histogram
}

// NewMetrics creates and registers a fresh metric set.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: registry,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fibnum_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fibnum_requests_total",
			Help: "Total HTTP requests served, by path.",
		}, []string{"path"}),
		calculationTimes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fibnum_calculation_duration_seconds",
			Help:    "Wall-clock time spent computing a Fibonacci value.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 12),
		}),
	}
	registry.MustRegister(m.activeRequests, m.requestsTotal, m.calculationTimes)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveCalculation records how long a calculation took, for histogram
// percentile reporting on /metrics.
func (m *Metrics) ObserveCalculation(seconds float64) { m.calculationTimes.Observe(seconds) }

// CountRequest tags one more served request against path.
func (m *Metrics) CountRequest(path string) { m.requestsTotal.WithLabelValues(path).Inc() }

// WritePrometheus writes the current metric set in the Prometheus text
// exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
