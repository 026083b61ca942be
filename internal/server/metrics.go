package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/bignum/internal/metrics"
)

// Metrics tracks HTTP requests on top of a metrics.Registry, which also
// carries the engine's operation metrics.
type Metrics struct {
	registry        *metrics.Registry
	activeRequests  prometheus.Gauge
	requestsTotal   prometheus.Counter
	responses       *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	handler         http.Handler
}

// NewMetrics creates server metrics on a fresh registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(metrics.NewRegistry())
}

// NewMetricsWithRegistry registers the server metrics on reg.
func NewMetricsWithRegistry(reg *metrics.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metrics.Namespace,
			Name:      "active_requests",
			Help:      "Requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "requests_total",
			Help:      "Requests received.",
		}),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "responses_total",
			Help:      "Responses sent, by path and status code.",
		}, []string{"path", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Name:      "request_duration_seconds",
			Help:      "Time spent serving requests, by path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
	}
	reg.MustRegister(m.activeRequests, m.requestsTotal, m.responses, m.requestDuration)
	m.handler = reg.Handler()
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *metrics.Registry { return m.registry }

// IncrementActiveRequests counts a request entering the server.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests counts a request leaving the server.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// ObserveResponse records the status and latency of a served request.
func (m *Metrics) ObserveResponse(path string, code int, d time.Duration) {
	m.responses.WithLabelValues(path, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(path).Observe(d.Seconds())
}

// WritePrometheus writes all metrics in the Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware tracks active requests, status codes and latency.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next(rec, r)
		s.metrics.ObserveResponse(r.URL.Path, rec.code, time.Since(start))
	}
}
