package acp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ambient-code/acp-mcp-server/internal/config"
	apierrors "github.com/ambient-code/acp-mcp-server/internal/errors"
	"github.com/ambient-code/acp-mcp-server/metrics"
)

// MCP Tool wrapper methods
// These methods wrap the gateway operations with Args/Result types for MCP
// integration. Each wrapper snapshots the active cluster exactly once, so a
// concurrent cluster switch never splits a single call across clusters.

// resolveProject picks the project for a call: the explicit argument when
// given, otherwise the active cluster's default_project. The chosen name is
// validated before any request is built.
func resolveProject(ac config.ActiveCluster, override string) (string, error) {
	project := override
	if project == "" {
		project = ac.Cluster.DefaultProject
	}
	if project == "" {
		return "", apierrors.NewConfigurationError(
			"no project specified and cluster " + ac.Name + " has no default_project")
	}
	if err := ValidateName(project, "project"); err != nil {
		return "", err
	}
	return project, nil
}

// ListSessionsMCP lists sessions with optional filtering, sorting, and limit.
func (c *Client) ListSessionsMCP(ctx context.Context, args ListSessionsArgs) (ListSessionsResult, error) {
	ac, err := c.store.Active()
	if err != nil {
		return ListSessionsResult{}, err
	}
	project, err := resolveProject(ac, args.Project)
	if err != nil {
		return ListSessionsResult{}, err
	}

	sessions, err := c.listSessions(ctx, ac, project)
	if err != nil {
		return ListSessionsResult{}, err
	}

	filtered, applied, err := applyListOptions(sessions, ListOptions{
		Status:         args.Status,
		HasDisplayName: args.HasDisplayName,
		OlderThan:      args.OlderThan,
		SortBy:         args.SortBy,
		Limit:          args.Limit,
	}, time.Now())
	if err != nil {
		return ListSessionsResult{}, err
	}

	summaries := make([]SessionSummary, 0, len(filtered))
	for _, s := range filtered {
		summaries = append(summaries, summarize(s))
	}
	return ListSessionsResult{
		Sessions:       summaries,
		Total:          len(summaries),
		FiltersApplied: applied,
	}, nil
}

// GetSessionMCP fetches the full details of one session.
func (c *Client) GetSessionMCP(ctx context.Context, args GetSessionArgs) (GetSessionResult, error) {
	ac, err := c.store.Active()
	if err != nil {
		return GetSessionResult{}, err
	}
	project, err := resolveProject(ac, args.Project)
	if err != nil {
		return GetSessionResult{}, err
	}
	if err := ValidateName(args.Session, "session"); err != nil {
		return GetSessionResult{}, err
	}

	session, err := c.getSession(ctx, ac, project, args.Session)
	if err != nil {
		return GetSessionResult{}, err
	}
	return GetSessionResult{Session: session}, nil
}

// CreateSessionMCP creates a new session, or previews the manifest when
// dry_run is set. A dry run touches no network at all.
func (c *Client) CreateSessionMCP(ctx context.Context, args CreateSessionArgs) (CreateSessionResult, error) {
	if strings.TrimSpace(args.InitialPrompt) == "" {
		return CreateSessionResult{}, apierrors.NewValidationError(
			"initial_prompt", "", "must not be empty")
	}

	ac, err := c.store.Active()
	if err != nil {
		return CreateSessionResult{}, err
	}
	project, err := resolveProject(ac, args.Project)
	if err != nil {
		return CreateSessionResult{}, err
	}

	manifest := buildManifest(args)

	if args.DryRun {
		return CreateSessionResult{
			Created:  false,
			DryRun:   true,
			Project:  project,
			Message:  "Dry run: session not created",
			Manifest: &manifest,
		}, nil
	}

	name, err := c.createSession(ctx, ac, project, manifest)
	if err != nil {
		return CreateSessionResult{}, err
	}
	return CreateSessionResult{
		Created: true,
		Session: name,
		Project: project,
		Message: fmt.Sprintf("Session %s created in project %s", name, project),
	}, nil
}

// DeleteSessionMCP deletes one session, or previews the deletion when
// dry_run is set. The preview fetches the session but mutates nothing.
func (c *Client) DeleteSessionMCP(ctx context.Context, args DeleteSessionArgs) (DeleteSessionResult, error) {
	ac, err := c.store.Active()
	if err != nil {
		return DeleteSessionResult{}, err
	}
	project, err := resolveProject(ac, args.Project)
	if err != nil {
		return DeleteSessionResult{}, err
	}
	if err := ValidateName(args.Session, "session"); err != nil {
		return DeleteSessionResult{}, err
	}

	if args.DryRun {
		info, found, err := c.previewSession(ctx, ac, project, args.Session)
		if err != nil {
			return DeleteSessionResult{}, err
		}
		msg := fmt.Sprintf("Dry run: would delete session %s", args.Session)
		if !found {
			msg = fmt.Sprintf("Dry run: session %s not found, nothing to delete", args.Session)
		}
		return DeleteSessionResult{
			DryRun:      true,
			Found:       found,
			Message:     msg,
			SessionInfo: info,
		}, nil
	}

	if err := c.deleteSession(ctx, ac, project, args.Session); err != nil {
		return DeleteSessionResult{}, err
	}
	return DeleteSessionResult{
		Deleted: true,
		Found:   true,
		Message: fmt.Sprintf("Session %s deleted from project %s", args.Session, project),
	}, nil
}

// StopSessionMCP stops one running session, or previews the stop when
// dry_run is set.
func (c *Client) StopSessionMCP(ctx context.Context, args StopSessionArgs) (StopSessionResult, error) {
	ac, err := c.store.Active()
	if err != nil {
		return StopSessionResult{}, err
	}
	project, err := resolveProject(ac, args.Project)
	if err != nil {
		return StopSessionResult{}, err
	}
	if err := ValidateName(args.Session, "session"); err != nil {
		return StopSessionResult{}, err
	}

	if args.DryRun {
		info, found, err := c.previewSession(ctx, ac, project, args.Session)
		if err != nil {
			return StopSessionResult{}, err
		}
		msg := fmt.Sprintf("Dry run: would stop session %s", args.Session)
		if !found {
			msg = fmt.Sprintf("Dry run: session %s not found, nothing to stop", args.Session)
		}
		return StopSessionResult{
			DryRun:      true,
			Found:       found,
			Message:     msg,
			SessionInfo: info,
		}, nil
	}

	if err := c.stopSession(ctx, ac, project, args.Session); err != nil {
		return StopSessionResult{}, err
	}
	return StopSessionResult{
		Stopped: true,
		Found:   true,
		Message: fmt.Sprintf("Session %s stopped", args.Session),
	}, nil
}

// RestartSessionMCP restarts one stopped session, or previews the restart
// when dry_run is set.
func (c *Client) RestartSessionMCP(ctx context.Context, args RestartSessionArgs) (RestartSessionResult, error) {
	ac, err := c.store.Active()
	if err != nil {
		return RestartSessionResult{}, err
	}
	project, err := resolveProject(ac, args.Project)
	if err != nil {
		return RestartSessionResult{}, err
	}
	if err := ValidateName(args.Session, "session"); err != nil {
		return RestartSessionResult{}, err
	}

	if args.DryRun {
		info, found, err := c.previewSession(ctx, ac, project, args.Session)
		if err != nil {
			return RestartSessionResult{}, err
		}
		msg := fmt.Sprintf("Dry run: would restart session %s", args.Session)
		if !found {
			msg = fmt.Sprintf("Dry run: session %s not found, nothing to restart", args.Session)
		}
		return RestartSessionResult{
			DryRun:      true,
			Found:       found,
			Message:     msg,
			SessionInfo: info,
		}, nil
	}

	if err := c.restartSession(ctx, ac, project, args.Session); err != nil {
		return RestartSessionResult{}, err
	}
	return RestartSessionResult{
		Restarted: true,
		Found:     true,
		Message:   fmt.Sprintf("Session %s restarted", args.Session),
	}, nil
}

// previewSession fetches one session for a dry-run preview. A missing
// session is reported as found=false rather than an error.
func (c *Client) previewSession(ctx context.Context, ac config.ActiveCluster, project, session string) (*SessionSummary, bool, error) {
	s, err := c.getSession(ctx, ac, project, session)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	info := summarize(*s)
	return &info, true, nil
}

// BulkDeleteSessionsMCP deletes up to MaxBulkItems sessions in one call.
func (c *Client) BulkDeleteSessionsMCP(ctx context.Context, args BulkDeleteSessionsArgs) (BulkSessionsResult, error) {
	return c.bulkMCP(ctx, args.BulkSessionsArgs, "delete", c.deleteSession)
}

// BulkStopSessionsMCP stops up to MaxBulkItems sessions in one call.
func (c *Client) BulkStopSessionsMCP(ctx context.Context, args BulkStopSessionsArgs) (BulkSessionsResult, error) {
	return c.bulkMCP(ctx, args.BulkSessionsArgs, "stop", c.stopSession)
}

// BulkRestartSessionsMCP restarts up to MaxBulkItems sessions in one call.
func (c *Client) BulkRestartSessionsMCP(ctx context.Context, args BulkRestartSessionsArgs) (BulkSessionsResult, error) {
	return c.bulkMCP(ctx, args.BulkSessionsArgs, "restart", c.restartSession)
}

func (c *Client) bulkMCP(ctx context.Context, args BulkSessionsArgs, action string, op bulkOp) (BulkSessionsResult, error) {
	ac, err := c.store.Active()
	if err != nil {
		return BulkSessionsResult{}, err
	}
	project, err := resolveProject(ac, args.Project)
	if err != nil {
		return BulkSessionsResult{}, err
	}
	return c.runBulk(ctx, ac, project, args.Sessions, action, args.DryRun, op)
}

// ListClustersMCP lists every configured cluster alias.
func (c *Client) ListClustersMCP(ctx context.Context, args ListClustersArgs) (ListClustersResult, error) {
	clusters, active := c.store.All()
	defaultName := c.store.DefaultName()

	names := make([]string, 0, len(clusters))
	for name := range clusters {
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]ClusterSummary, 0, len(names))
	for _, name := range names {
		cluster := clusters[name]
		summaries = append(summaries, ClusterSummary{
			Name:           name,
			Server:         cluster.Server,
			Description:    cluster.Description,
			DefaultProject: cluster.DefaultProject,
			IsDefault:      name == defaultName,
			IsActive:       name == active,
		})
	}
	return ListClustersResult{
		Clusters:      summaries,
		ActiveCluster: active,
	}, nil
}

// WhoamiMCP reports the active cluster, project, and authentication status.
// The token value itself never appears in the result, only its presence.
func (c *Client) WhoamiMCP(ctx context.Context, args WhoamiArgs) (WhoamiResult, error) {
	ac, err := c.store.Active()
	if err != nil {
		return WhoamiResult{}, err
	}

	result := WhoamiResult{
		Cluster: ac.Name,
		Server:  ac.Cluster.Server,
		Project: ac.Cluster.DefaultProject,
	}

	if _, err := config.ResolveToken(ac.Cluster); err != nil {
		result.Error = "no token configured: set ACP_TOKEN or add a token to clusters.yaml"
		return result, nil
	}
	result.TokenConfigured = true

	if result.Project == "" {
		result.Error = "cluster has no default_project; authentication not probed"
		return result, nil
	}

	// Probe with a read-only call so the gateway verdict is authoritative.
	if _, err := c.listSessions(ctx, ac, result.Project); err != nil {
		result.Error = err.Error()
		return result, nil
	}
	result.Authenticated = true
	return result, nil
}

// SwitchClusterMCP changes the active cluster for subsequent tool calls.
func (c *Client) SwitchClusterMCP(ctx context.Context, args SwitchClusterArgs) (SwitchClusterResult, error) {
	if args.Cluster == "" {
		return SwitchClusterResult{}, apierrors.NewValidationError(
			"cluster", "", "must not be empty")
	}

	previous, err := c.store.Switch(args.Cluster)
	if err != nil {
		return SwitchClusterResult{}, err
	}
	metrics.ClusterSwitches.Inc()
	return SwitchClusterResult{
		Switched: true,
		Previous: previous,
		Current:  args.Cluster,
		Message:  fmt.Sprintf("Active cluster switched from %s to %s", previous, args.Cluster),
	}, nil
}
