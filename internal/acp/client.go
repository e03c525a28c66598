// Package acp provides the client for the Ambient Code Platform public-api
// gateway and the MCP tool surface built on top of it. All traffic goes
// through the gateway; the orchestrator API is never contacted directly.
package acp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ambient-code/acp-mcp-server/internal/config"
	apierrors "github.com/ambient-code/acp-mcp-server/internal/errors"
	"github.com/ambient-code/acp-mcp-server/metrics"
)

const (
	// DefaultTimeout bounds every gateway request. Exceeding it surfaces as
	// a TimeoutError; the request is abandoned and never retried.
	DefaultTimeout = 30 * time.Second

	// MaxBulkItems is the hard ceiling on bulk operation targets, enforced
	// before any network call.
	MaxBulkItems = 3

	// DefaultModel is used when a create request omits the model.
	DefaultModel = "claude-sonnet-4"

	// DefaultSessionTimeout is the session timeout in seconds when omitted.
	DefaultSessionTimeout = 900
)

// Client translates logical session operations into authenticated HTTP
// requests against the active cluster's gateway. It holds no mutable state
// beyond the shared HTTP client; the active-cluster selection lives in the
// config store and is snapshotted once per tool call.
type Client struct {
	store      *config.Store
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = l
	}
}

// NewClient creates a gateway client backed by the given cluster store.
func NewClient(store *config.Store, opts ...ClientOption) *Client {
	c := &Client{
		store:      store,
		httpClient: newHTTPClient(DefaultTimeout),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store exposes the cluster store for the cluster-scope tools.
func (c *Client) Store() *config.Store {
	return c.store
}

// requestSpec describes one gateway request.
type requestSpec struct {
	method  string
	path    string
	project string
	session string // target name, used in not-found errors
	body    any
}

// request issues one HTTP request against the given cluster snapshot and
// decodes a 2xx JSON body into out (when non-nil). Transport and status
// failures map onto the shared error taxonomy. No retries.
func (c *Client) request(ctx context.Context, ac config.ActiveCluster, spec requestSpec, out any) error {
	token, err := config.ResolveToken(ac.Cluster)
	if err != nil {
		metrics.AuthFailures.WithLabelValues("missing_token").Inc()
		return &apierrors.AuthConfigError{Cluster: ac.Name}
	}

	var bodyReader *bytes.Reader
	if spec.body != nil {
		payload, err := json.Marshal(spec.body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	url := ac.Cluster.Server + spec.path
	req, err := http.NewRequestWithContext(ctx, spec.method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Ambient-Project", spec.project)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordGatewayCall(spec.method, 0, time.Since(start).Seconds())
		if isTimeout(err) {
			c.logger.Error("Gateway request timed out",
				"method", spec.method, "path", spec.path)
			return &apierrors.TimeoutError{Operation: spec.method + " " + spec.path}
		}
		c.logger.Error("Gateway request failed",
			"method", spec.method, "path", spec.path, "error", err)
		return &apierrors.RequestError{Body: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.RecordGatewayCall(spec.method, resp.StatusCode, time.Since(start).Seconds())

	var raw bytes.Buffer
	if _, err := raw.ReadFrom(resp.Body); err != nil {
		return &apierrors.RequestError{Body: "failed to read response: " + err.Error()}
	}

	if resp.StatusCode >= 400 {
		msg := gatewayError(raw.Bytes(), resp.StatusCode)
		c.logger.Warn("Gateway returned error status",
			"method", spec.method,
			"path", spec.path,
			"status", resp.StatusCode,
			"error", msg)

		switch resp.StatusCode {
		case http.StatusNotFound:
			return apierrors.NewNotFoundError(spec.session, spec.project)
		case http.StatusUnauthorized, http.StatusForbidden:
			metrics.AuthFailures.WithLabelValues("gateway_rejected").Inc()
			return &apierrors.AuthError{StatusCode: resp.StatusCode, Message: msg}
		default:
			return &apierrors.RequestError{StatusCode: resp.StatusCode, Body: msg}
		}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.Unmarshal(raw.Bytes(), out); err != nil {
		return &apierrors.RequestError{Body: "failed to parse response: " + err.Error()}
	}
	return nil
}

// gatewayError extracts the gateway's error message from a response body.
func gatewayError(body []byte, statusCode int) string {
	var envelope apiErrorBody
	if json.Unmarshal(body, &envelope) == nil && envelope.Error != "" {
		return envelope.Error
	}
	return fmt.Sprintf("HTTP %d: %s", statusCode, truncate(string(body), 200))
}

// isTimeout reports whether a transport error was a deadline expiry.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with tuned transport settings.
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: DefaultTimeout,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
