// Package metrics provides Prometheus metrics for the ACP MCP server.
// It tracks tool call counts, latencies, gateway traffic, and error rates.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "acp_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// GatewayRequestsTotal counts public-api gateway requests
	GatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "gateway_requests_total",
		Help:      "Total gateway requests by method and status code",
	}, []string{"method", "status"})

	// GatewayRequestDuration measures gateway request latency
	GatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "Gateway request latency distribution by method",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"method"})

	// AuthFailures counts authentication failures
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_failures_total",
		Help:      "Authentication failure count by reason",
	}, []string{"reason"})

	// BulkItemsTotal counts bulk operation items by action and outcome
	BulkItemsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "bulk_items_total",
		Help:      "Bulk operation items by action and outcome",
	}, []string{"action", "outcome"})

	// ClusterSwitches counts active-cluster switches
	ClusterSwitches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cluster_switches_total",
		Help:      "Number of active cluster switches",
	})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordGatewayCall records one gateway request. A status code of zero means
// the request never produced a response (transport failure or timeout).
func RecordGatewayCall(method string, statusCode int, duration float64) {
	status := "transport_error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	GatewayRequestsTotal.WithLabelValues(method, status).Inc()
	GatewayRequestDuration.WithLabelValues(method).Observe(duration)
}

// RecordBulkOperation records the per-item outcomes of one bulk call
func RecordBulkOperation(action string, succeeded, failed int) {
	if succeeded > 0 {
		BulkItemsTotal.WithLabelValues(action, "success").Add(float64(succeeded))
	}
	if failed > 0 {
		BulkItemsTotal.WithLabelValues(action, "error").Add(float64(failed))
	}
}
