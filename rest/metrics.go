package rest

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the request lifecycle.
// It is safe for concurrent use.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec
	errorsTotal      *prometheus.CounterVec
	droppedHeaders   *prometheus.CounterVec
}

// NewMetricsCollector creates a collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the supplied
// registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "restbase_requests_total",
				Help: "Total number of API requests dispatched",
			},
			[]string{"method", "status_code"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "restbase_request_duration_seconds",
				Help:    "Duration of API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "status_code"},
		),
		requestsInFlight: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "restbase_requests_in_flight",
				Help: "Number of API requests currently in flight",
			},
			[]string{"method"},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "restbase_errors_total",
				Help: "Total number of failed API requests by class",
			},
			[]string{"class", "method"},
		),
		droppedHeaders: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "restbase_dropped_headers_total",
				Help: "Total number of default headers dropped for missing values",
			},
			[]string{"header"},
		),
	}
}

// RecordRequestStart marks a request as in flight.
func (m *MetricsCollector) RecordRequestStart(method string) {
	m.requestsInFlight.WithLabelValues(method).Inc()
}

// RecordRequestEnd marks a request as no longer in flight.
func (m *MetricsCollector) RecordRequestEnd(method string) {
	m.requestsInFlight.WithLabelValues(method).Dec()
}

// RecordRequest records a completed request. statusCode 0 means no
// response was obtained.
func (m *MetricsCollector) RecordRequest(method string, statusCode int, duration time.Duration) {
	code := strconv.Itoa(statusCode)
	m.requestsTotal.WithLabelValues(method, code).Inc()
	m.requestDuration.WithLabelValues(method, code).Observe(duration.Seconds())
}

// RecordError records a failed request by class (Network, Client, Server).
func (m *MetricsCollector) RecordError(class, method string) {
	m.errorsTotal.WithLabelValues(class, method).Inc()
}

// RecordDroppedHeader records a default header dropped for a missing value.
func (m *MetricsCollector) RecordDroppedHeader(header string) {
	m.droppedHeaders.WithLabelValues(header).Inc()
}
