package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "acp_list_sessions",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "acp_delete_session",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordGatewayCall(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		statusCode int
		wantStatus string
	}{
		{
			name:       "successful call",
			method:     "GET",
			statusCode: 200,
			wantStatus: "200",
		},
		{
			name:       "not found",
			method:     "DELETE",
			statusCode: 404,
			wantStatus: "404",
		},
		{
			name:       "transport failure has no status code",
			method:     "POST",
			statusCode: 0,
			wantStatus: "transport_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordGatewayCall(tt.method, tt.statusCode, 0.1)

			counter, err := GatewayRequestsTotal.GetMetricWithLabelValues(tt.method, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordBulkOperation(t *testing.T) {
	initialSuccess := getCounterValue(t, mustCounter(t, BulkItemsTotal, "delete", "success"))
	initialError := getCounterValue(t, mustCounter(t, BulkItemsTotal, "delete", "error"))

	RecordBulkOperation("delete", 2, 1)

	if got := getCounterValue(t, mustCounter(t, BulkItemsTotal, "delete", "success")); got != initialSuccess+2 {
		t.Errorf("success counter = %v, want %v", got, initialSuccess+2)
	}
	if got := getCounterValue(t, mustCounter(t, BulkItemsTotal, "delete", "error")); got != initialError+1 {
		t.Errorf("error counter = %v, want %v", got, initialError+1)
	}

	// Zero counts add nothing.
	RecordBulkOperation("restart", 0, 0)
	if got := getCounterValue(t, mustCounter(t, BulkItemsTotal, "restart", "success")); got != 0 {
		t.Errorf("restart success counter = %v, want 0", got)
	}
}

func TestMetricsRegistered(t *testing.T) {
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		GatewayRequestsTotal,
		GatewayRequestDuration,
		AuthFailures,
		BulkItemsTotal,
		ClusterSwitches,
		PanicsRecovered,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "acp_mcp" {
		t.Errorf("expected namespace 'acp_mcp', got '%s'", Namespace)
	}
}

func mustCounter(t *testing.T, vec *prometheus.CounterVec, labels ...string) prometheus.Counter {
	t.Helper()
	c, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}
	return c
}

// Helper to get counter value
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}
