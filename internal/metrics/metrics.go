// Package metrics collects and exposes Prometheus metrics for the
// credential service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation labels.
const (
	OperationRegister     = "register"
	OperationAuthenticate = "authenticate"
	OperationLookup       = "lookup"
)

// Outcome labels.
const (
	OutcomeSuccess            = "success"
	OutcomeValidationError    = "validation_error"
	OutcomeDuplicateUsername  = "duplicate_username"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeNotFound           = "not_found"
	OutcomeStorageError       = "storage_error"
	OutcomeError              = "error"
)

// MetricsCollector is the recording side used by the service layer and
// the HTTP middleware.
type MetricsCollector interface {
	RecordOperation(operation, outcome string, duration time.Duration)
	RecordHTTPStatus(statusCode int)
	RecordRateLimited(path string)
}

// Collector is the Prometheus implementation of [MetricsCollector].
type Collector struct {
	operations  *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	httpStatus  *prometheus.CounterVec
	rateLimited *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics in reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pent_credential_operations_total",
			Help: "Credential operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pent_credential_operation_duration_seconds",
			Help:    "Latency of credential operations in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pent_http_responses_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pent_rate_limited_requests_total",
			Help: "Requests rejected by the per-client rate limiter.",
		}, []string{"path"}),
	}

	reg.MustRegister(
		c.operations,
		c.latency,
		c.httpStatus,
		c.rateLimited,
	)

	return c
}

// RecordOperation counts one credential operation and observes its latency.
func (c *Collector) RecordOperation(operation, outcome string, duration time.Duration) {
	c.operations.WithLabelValues(operation, outcome).Inc()
	c.latency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordHTTPStatus counts an HTTP response by status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRateLimited counts a request rejected by the rate limiter.
func (c *Collector) RecordRateLimited(path string) {
	c.rateLimited.WithLabelValues(path).Inc()
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop is a [MetricsCollector] that records nothing.
type Nop struct{}

func (Nop) RecordOperation(string, string, time.Duration) {}
func (Nop) RecordHTTPStatus(int)                          {}
func (Nop) RecordRateLimited(string)                      {}
