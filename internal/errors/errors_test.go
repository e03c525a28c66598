package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation with field and value",
			err:  NewValidationError("session", "Bad Name", "must match DNS-1123 format"),
			want: `validation failed for session="Bad Name": must match DNS-1123 format`,
		},
		{
			name: "validation with field only",
			err:  NewValidationError("sessions", "", "must contain at least one session name"),
			want: "validation failed for sessions: must contain at least one session name",
		},
		{
			name: "configuration",
			err:  NewConfigurationError("no default_cluster configured"),
			want: "configuration error: no default_cluster configured",
		},
		{
			name: "not found with project",
			err:  NewNotFoundError("sess-1", "team-a"),
			want: `session "sess-1" not found in project "team-a"`,
		},
		{
			name: "not found without project",
			err:  NewNotFoundError("sess-1", ""),
			want: `session "sess-1" not found`,
		},
		{
			name: "timeout",
			err:  &TimeoutError{Operation: "GET /v1/sessions"},
			want: "request timed out: GET /v1/sessions",
		},
		{
			name: "request with status",
			err:  &RequestError{StatusCode: 502, Body: "bad gateway"},
			want: "gateway request failed (HTTP 502): bad gateway",
		},
		{
			name: "request transport only",
			err:  &RequestError{Body: "connection refused"},
			want: "gateway request failed: connection refused",
		},
		{
			name: "auth with message",
			err:  &AuthError{StatusCode: 401, Message: "token expired"},
			want: "authorization failed (HTTP 401): token expired",
		},
		{
			name: "unknown tool",
			err:  &UnknownToolError{Name: "Mystery"},
			want: `unknown tool: "Mystery"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("error = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthConfigErrorGuidance(t *testing.T) {
	err := &AuthConfigError{Cluster: "prod"}
	msg := err.Error()
	if !strings.Contains(msg, "prod") {
		t.Errorf("message %q does not name the cluster", msg)
	}
	if !strings.Contains(msg, "ACP_TOKEN") {
		t.Errorf("message %q does not tell the caller how to fix it", msg)
	}
}

func TestConfirmationRequiredErrorGuidance(t *testing.T) {
	err := &ConfirmationRequiredError{Tool: "acp_bulk_delete_sessions", Count: 3}
	msg := err.Error()
	for _, want := range []string{"acp_bulk_delete_sessions", "3", "confirm=true", "dry_run=true"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		pred func(error) bool
		err  error
		want bool
	}{
		{"validation match", IsValidation, NewValidationError("f", "v", "m"), true},
		{"validation mismatch", IsValidation, fmt.Errorf("other"), false},
		{"not found match", IsNotFound, NewNotFoundError("s", "p"), true},
		{"not found mismatch", IsNotFound, NewValidationError("f", "v", "m"), false},
		{"timeout match", IsTimeout, &TimeoutError{Operation: "op"}, true},
		{"timeout mismatch", IsTimeout, fmt.Errorf("slow"), false},
		{"confirmation match", IsConfirmationRequired, &ConfirmationRequiredError{}, true},
		{"confirmation mismatch", IsConfirmationRequired, fmt.Errorf("no"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}
