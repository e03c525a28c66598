package acp

import (
	"context"
	"net/http"

	"github.com/ambient-code/acp-mcp-server/internal/config"
)

// Single-session gateway operations. Each takes an ActiveCluster snapshot so
// one tool call is served entirely by the cluster that was active at dispatch
// time, even if the selection is switched concurrently.

// listSessions fetches the raw session collection for a project. Filtering,
// sorting, and limiting happen in the list pipeline, not here.
func (c *Client) listSessions(ctx context.Context, ac config.ActiveCluster, project string) ([]Session, error) {
	var resp listSessionsResponse
	err := c.request(ctx, ac, requestSpec{
		method:  http.MethodGet,
		path:    "/v1/sessions",
		project: project,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// getSession fetches one session by name.
func (c *Client) getSession(ctx context.Context, ac config.ActiveCluster, project, session string) (*Session, error) {
	var resp Session
	err := c.request(ctx, ac, requestSpec{
		method:  http.MethodGet,
		path:    "/v1/sessions/" + session,
		project: project,
		session: session,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// createSession submits a session manifest and returns the assigned name.
func (c *Client) createSession(ctx context.Context, ac config.ActiveCluster, project string, manifest SessionManifest) (string, error) {
	var resp createSessionResponse
	err := c.request(ctx, ac, requestSpec{
		method:  http.MethodPost,
		path:    "/v1/sessions",
		project: project,
		body:    manifest,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "unknown", nil
	}
	return resp.ID, nil
}

// deleteSession removes one session. Exactly one mutation per call.
func (c *Client) deleteSession(ctx context.Context, ac config.ActiveCluster, project, session string) error {
	return c.request(ctx, ac, requestSpec{
		method:  http.MethodDelete,
		path:    "/v1/sessions/" + session,
		project: project,
		session: session,
	}, nil)
}

// stopSession stops a running session.
func (c *Client) stopSession(ctx context.Context, ac config.ActiveCluster, project, session string) error {
	return c.request(ctx, ac, requestSpec{
		method:  http.MethodPost,
		path:    "/v1/sessions/" + session + "/stop",
		project: project,
		session: session,
	}, nil)
}

// restartSession restarts a stopped session.
func (c *Client) restartSession(ctx context.Context, ac config.ActiveCluster, project, session string) error {
	return c.request(ctx, ac, requestSpec{
		method:  http.MethodPost,
		path:    "/v1/sessions/" + session + "/restart",
		project: project,
		session: session,
	}, nil)
}

// buildManifest assembles the creation payload, applying model and timeout
// defaults. Dry-run create returns exactly this manifest.
func buildManifest(args CreateSessionArgs) SessionManifest {
	model := args.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := args.Timeout
	if timeout <= 0 {
		timeout = DefaultSessionTimeout
	}
	return SessionManifest{
		InitialPrompt: args.InitialPrompt,
		Interactive:   args.Interactive,
		LLMConfig:     LLMConfig{Model: model},
		Timeout:       timeout,
		DisplayName:   args.DisplayName,
		Repos:         args.Repos,
	}
}
