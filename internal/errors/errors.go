// Package errors provides shared error types for the ACP MCP server.
// Every failure surfaced at the tool boundary is one of these types, so the
// calling LLM always receives a structured, self-correctable outcome.
package errors

import (
	"fmt"
)

// ValidationError indicates malformed input, caught before any network call.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigurationError indicates missing or invalid cluster setup. Fatal to the
// current call, not to the process.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

// NewConfigurationError creates a ConfigurationError.
func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}

// AuthConfigError indicates no usable credential could be resolved for the
// active cluster. Distinct from AuthError: the request was never sent.
type AuthConfigError struct {
	Cluster string
}

func (e *AuthConfigError) Error() string {
	msg := "no authentication token available: set 'token' in clusters.yaml or the ACP_TOKEN environment variable"
	if e.Cluster != "" {
		return fmt.Sprintf("cluster %q: %s", e.Cluster, msg)
	}
	return msg
}

// AuthError indicates the gateway rejected the request credential (401/403).
// Never retried automatically.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authorization failed (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("authorization failed (HTTP %d)", e.StatusCode)
}

// NotFoundError indicates the target session does not exist in the project.
type NotFoundError struct {
	Resource string // session name
	Project  string
}

func (e *NotFoundError) Error() string {
	if e.Project != "" {
		return fmt.Sprintf("session %q not found in project %q", e.Resource, e.Project)
	}
	return fmt.Sprintf("session %q not found", e.Resource)
}

// NewNotFoundError creates a NotFoundError for a session lookup.
func NewNotFoundError(resource, project string) *NotFoundError {
	return &NotFoundError{Resource: resource, Project: project}
}

// TimeoutError indicates a gateway request exceeded the fixed request timeout.
// The in-flight request is abandoned; retry decisions belong to the caller.
type TimeoutError struct {
	Operation string // method + path of the abandoned request
}

func (e *TimeoutError) Error() string {
	return "request timed out: " + e.Operation
}

// RequestError indicates any other transport or status failure from the gateway.
type RequestError struct {
	StatusCode int    // zero for pure transport failures
	Body       string // truncated response body, if any
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway request failed (HTTP %d): %s", e.StatusCode, e.Body)
	}
	return "gateway request failed: " + e.Body
}

// ConfirmationRequiredError indicates a destructive bulk tool was called
// without confirm=true and without dry_run=true.
type ConfirmationRequiredError struct {
	Tool  string
	Count int // number of targets in the rejected request
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf(
		"%s affects %d session(s) and requires explicit confirmation: pass confirm=true to execute, or dry_run=true to preview first",
		e.Tool, e.Count)
}

// UnknownToolError indicates a tool name with no registered handler.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %q", e.Name)
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsTimeout returns true if the error is a TimeoutError.
func IsTimeout(err error) bool {
	_, ok := err.(*TimeoutError)
	return ok
}

// IsConfirmationRequired returns true if the error is a ConfirmationRequiredError.
func IsConfirmationRequired(err error) bool {
	_, ok := err.(*ConfirmationRequiredError)
	return ok
}
