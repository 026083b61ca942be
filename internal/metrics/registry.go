// Package metrics collects operational metrics for bigcalc: a Prometheus
// registry of evaluated operations and runtime memory snapshots.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/bignum/internal/sysmon"
)

// Namespace prefixes every metric name.
const Namespace = "bigcalc"

// Registry owns a Prometheus registry and the operation collectors.
// A nil *Registry is valid and records nothing.
type Registry struct {
	reg           *prometheus.Registry
	operations    *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	operandDigits *prometheus.HistogramVec
}

// NewRegistry creates a registry with the operation collectors plus the Go
// runtime and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Evaluated operations by operation, algorithm and status.",
		}, []string{"op", "algorithm", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Wall time of evaluated operations.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"op", "algorithm"}),
		operandDigits: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operand_digits",
			Help:      "Length in digits of the larger operand.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"op"}),
	}
	mc := NewMemoryCollector()
	r.reg.MustRegister(
		r.operations,
		r.duration,
		r.operandDigits,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "heap_alloc_bytes",
			Help:      "Bytes of allocated heap objects.",
		}, func() float64 { return float64(mc.Snapshot().HeapAlloc) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "system_cpu_percent",
			Help:      "System-wide CPU usage since the previous scrape.",
		}, sysmon.CPUPercent),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "system_memory_percent",
			Help:      "System-wide memory usage.",
		}, sysmon.MemPercent),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveOperation records one evaluation. An operation that failed is
// counted under status "error" and contributes no duration sample.
func (r *Registry) ObserveOperation(op, algorithm string, d time.Duration, digits int, err error) {
	if r == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.operations.WithLabelValues(op, algorithm, status).Inc()
	r.operandDigits.WithLabelValues(op).Observe(float64(digits))
	if err == nil {
		r.duration.WithLabelValues(op, algorithm).Observe(d.Seconds())
	}
}

// MustRegister registers additional collectors, such as server request
// metrics.
func (r *Registry) MustRegister(cs ...prometheus.Collector) {
	r.reg.MustRegister(cs...)
}

// Gatherer exposes the registry for scraping and tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Handler serves the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
