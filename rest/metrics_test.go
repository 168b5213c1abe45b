package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCollectorRecordsLifecycle(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetricsCollectorWithRegistry(registry)

	metrics.RecordRequestStart("GET")
	if got := testutil.ToFloat64(metrics.requestsInFlight.WithLabelValues("GET")); got != 1 {
		t.Errorf("Expected 1 request in flight, got %v", got)
	}
	metrics.RecordRequestEnd("GET")
	if got := testutil.ToFloat64(metrics.requestsInFlight.WithLabelValues("GET")); got != 0 {
		t.Errorf("Expected 0 requests in flight, got %v", got)
	}

	metrics.RecordRequest("GET", 200, 15*time.Millisecond)
	if got := testutil.ToFloat64(metrics.requestsTotal.WithLabelValues("GET", "200")); got != 1 {
		t.Errorf("Expected 1 request recorded, got %v", got)
	}

	metrics.RecordError("Network", "GET")
	if got := testutil.ToFloat64(metrics.errorsTotal.WithLabelValues("Network", "GET")); got != 1 {
		t.Errorf("Expected 1 error recorded, got %v", got)
	}

	metrics.RecordDroppedHeader("X-Missing")
	if got := testutil.ToFloat64(metrics.droppedHeaders.WithLabelValues("X-Missing")); got != 1 {
		t.Errorf("Expected 1 dropped header recorded, got %v", got)
	}
}

func TestClientWithMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()
	metrics := NewMetricsCollectorWithRegistry(registry)

	client := New(
		WithBaseURL(server.URL),
		WithHeaders(map[string]*string{"X-Missing": nil}),
		WithMetrics(metrics),
	)

	if err := client.SendRequest(context.Background(), MethodGet, "/", RequestOptions{}, nil); err != nil {
		t.Fatalf("SendRequest returned error: %v", err)
	}

	if got := testutil.ToFloat64(metrics.requestsTotal.WithLabelValues("GET", "200")); got != 1 {
		t.Errorf("Expected 1 request recorded, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.droppedHeaders.WithLabelValues("X-Missing")); got != 1 {
		t.Errorf("Expected dropped header recorded, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.requestsInFlight.WithLabelValues("GET")); got != 0 {
		t.Errorf("Expected 0 requests in flight after completion, got %v", got)
	}
}

func TestClientWithMetricsErrorClasses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()
	metrics := NewMetricsCollectorWithRegistry(registry)
	client := New(WithBaseURL(server.URL), WithMetrics(metrics))

	_ = client.SendRequest(context.Background(), MethodGet, "/", RequestOptions{}, nil)
	if got := testutil.ToFloat64(metrics.errorsTotal.WithLabelValues("Server", "GET")); got != 1 {
		t.Errorf("Expected 1 server error recorded, got %v", got)
	}

	server.Close()
	_ = client.SendRequest(context.Background(), MethodGet, "/", RequestOptions{}, nil)
	if got := testutil.ToFloat64(metrics.errorsTotal.WithLabelValues("Network", "GET")); got != 1 {
		t.Errorf("Expected 1 network error recorded, got %v", got)
	}
}
