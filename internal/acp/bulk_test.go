package acp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	apierrors "github.com/ambient-code/acp-mcp-server/internal/errors"
)

// spyGateway is a fake gateway that records every request it receives.
type spyGateway struct {
	server   *httptest.Server
	requests atomic.Int64
	// sessions that exist; DELETE and POST against others return 404
	existing map[string]Session
	// sessions that fail with a 500 on mutation
	failing map[string]bool
}

func newSpyGateway(existing map[string]Session, failing map[string]bool) *spyGateway {
	spy := &spyGateway{existing: existing, failing: failing}
	spy.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spy.requests.Add(1)

		name := strings.TrimPrefix(r.URL.Path, "/v1/sessions/")
		name = strings.TrimSuffix(name, "/stop")
		name = strings.TrimSuffix(name, "/restart")

		if spy.failing[name] {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": "pod eviction in progress"}`))
			return
		}
		s, ok := spy.existing[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "not found"}`))
			return
		}
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_ = json.NewEncoder(w).Encode(s)
	}))
	return spy
}

func (s *spyGateway) close() { s.server.Close() }

func (s *spyGateway) calls() int64 { return s.requests.Load() }

func TestRunBulkCeilingBeforeNetwork(t *testing.T) {
	spy := newSpyGateway(nil, nil)
	defer spy.close()

	store := newTestStore(spy.server.URL)
	client := NewClient(store)

	_, err := client.runBulk(context.Background(), mustActive(t, store), "p",
		[]string{"a", "b", "c", "d"}, "delete", false, client.deleteSession)
	if !apierrors.IsValidation(err) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if spy.calls() != 0 {
		t.Errorf("gateway received %d requests, want 0", spy.calls())
	}
}

func TestRunBulkValidatesNamesBeforeNetwork(t *testing.T) {
	spy := newSpyGateway(nil, nil)
	defer spy.close()

	store := newTestStore(spy.server.URL)
	client := NewClient(store)

	_, err := client.runBulk(context.Background(), mustActive(t, store), "p",
		[]string{"ok", "Bad Name"}, "delete", false, client.deleteSession)
	if !apierrors.IsValidation(err) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if spy.calls() != 0 {
		t.Errorf("gateway received %d requests, want 0", spy.calls())
	}
}

func TestRunBulkDryRunPreview(t *testing.T) {
	spy := newSpyGateway(map[string]Session{
		"sess-1": {ID: "sess-1", Status: "running", CreatedAt: "2026-03-01T00:00:00Z"},
		"sess-2": {ID: "sess-2", Status: "stopped", CreatedAt: "2026-02-01T00:00:00Z"},
	}, nil)
	defer spy.close()

	store := newTestStore(spy.server.URL)
	client := NewClient(store)

	result, err := client.runBulk(context.Background(), mustActive(t, store), "p",
		[]string{"sess-1", "ghost", "sess-2"}, "delete", true, client.deleteSession)
	if err != nil {
		t.Fatalf("runBulk error: %v", err)
	}

	if len(result.WouldExecute) != 2 {
		t.Errorf("would_execute = %d, want 2", len(result.WouldExecute))
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Session != "ghost" {
		t.Errorf("skipped = %+v", result.Skipped)
	}
	if len(result.Succeeded) != 0 || len(result.Failed) != 0 {
		t.Errorf("dry run reported execution: %+v", result)
	}
	if result.WouldExecute[0].Status != "running" {
		t.Errorf("preview status = %q", result.WouldExecute[0].Status)
	}

	// Exactly one GET per target, no mutations.
	if spy.calls() != 3 {
		t.Errorf("gateway received %d requests, want 3", spy.calls())
	}
}

func TestRunBulkPartialFailure(t *testing.T) {
	spy := newSpyGateway(map[string]Session{
		"sess-1": {ID: "sess-1"},
		"sess-2": {ID: "sess-2"},
		"sess-3": {ID: "sess-3"},
	}, map[string]bool{"sess-2": true})
	defer spy.close()

	store := newTestStore(spy.server.URL)
	client := NewClient(store)

	result, err := client.runBulk(context.Background(), mustActive(t, store), "p",
		[]string{"sess-1", "sess-2", "sess-3"}, "delete", false, client.deleteSession)
	if err != nil {
		t.Fatalf("runBulk error: %v", err)
	}

	// The failure on sess-2 must not stop sess-3 from being attempted.
	if len(result.Succeeded) != 2 {
		t.Errorf("succeeded = %v, want sess-1 and sess-3", result.Succeeded)
	}
	if len(result.Failed) != 1 || result.Failed[0].Session != "sess-2" {
		t.Fatalf("failed = %+v", result.Failed)
	}
	if !strings.Contains(result.Failed[0].Error, "pod eviction") {
		t.Errorf("failure message lost gateway detail: %q", result.Failed[0].Error)
	}
	if spy.calls() != 3 {
		t.Errorf("gateway received %d requests, want 3", spy.calls())
	}
}

func TestRunBulkSequentialInputOrder(t *testing.T) {
	var order []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, strings.TrimPrefix(r.URL.Path, "/v1/sessions/"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	store := newTestStore(server.URL)
	client := NewClient(store)

	_, err := client.runBulk(context.Background(), mustActive(t, store), "p",
		[]string{"c", "a", "b"}, "delete", false, client.deleteSession)
	if err != nil {
		t.Fatalf("runBulk error: %v", err)
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("execution order = %v, want %v", order, want)
		}
	}
}
