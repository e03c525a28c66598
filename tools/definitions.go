package tools

// AllTools contains all tool specifications for the ACP MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// SESSION TOOLS
	// ==========================================================================
	{
		Name:     "acp_list_sessions",
		Method:   "ListSessions",
		Title:    "List Sessions",
		Category: "sessions",
		Description: `List agentic sessions in a project, with optional filtering and sorting.

USE WHEN: User asks "what sessions are running", "show my sessions", "list sessions older than a week".

NOT FOR: Full details of one known session (use acp_get_session instead).

PARAMETERS:
- project: Project name (defaults to the cluster's default_project)
- status: Filter by status (running, stopped, creating, failed)
- has_display_name: Filter by display name presence
- older_than: Filter by age, e.g. "7d", "24h", "30m"
- sort_by: Sort by "created", "stopped", or "name"
- limit: Max results

RETURNS: Compact session summaries, the total count, and which filters were applied.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "acp_get_session",
		Method:   "GetSession",
		Title:    "Get Session",
		Category: "sessions",
		Description: `Get the full details of one session by name.

USE WHEN: User asks "what is session X doing", "show me session X", "what's the status of X".

NOT FOR: Browsing sessions (use acp_list_sessions instead).

PARAMETERS:
- session: Session name (required)
- project: Project name (defaults to the cluster's default_project)

RETURNS: The full session object as reported by the gateway.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "acp_create_session",
		Method:   "CreateSession",
		Title:    "Create Session",
		Category: "sessions",
		Description: `Create a new agentic session with an initial prompt.

USE WHEN: User says "start a session to do X", "create a session", "kick off an agent for X".

NOT FOR: Restarting an existing stopped session (use acp_restart_session instead).

PARAMETERS:
- initial_prompt: The prompt for the session (required)
- project: Project name (defaults to the cluster's default_project)
- display_name: Human-readable session label
- repos: Repository URLs to mount
- interactive: Keep the session interactive (default false)
- model: LLM model (default claude-sonnet-4)
- timeout: Session timeout in seconds (default 900)
- dry_run: Preview the exact manifest without creating anything

RETURNS: The assigned session name, or the full manifest when dry_run is set.`,
		OpenWorld: true,
	},
	{
		Name:     "acp_delete_session",
		Method:   "DeleteSession",
		Title:    "Delete Session",
		Category: "sessions",
		Description: `Delete one session permanently.

USE WHEN: User says "delete session X", "remove X", "clean up session X".

NOT FOR: Stopping a session that should be kept (use acp_stop_session). Multiple sessions at once (use acp_bulk_delete_sessions).

PARAMETERS:
- session: Session name (required)
- project: Project name (defaults to the cluster's default_project)
- dry_run: Preview what would be deleted without deleting

RETURNS: Confirmation of the deletion, or a preview of the target session.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "acp_stop_session",
		Method:   "StopSession",
		Title:    "Stop Session",
		Category: "sessions",
		Description: `Stop one running session without deleting it.

USE WHEN: User says "stop session X", "pause X", "halt that session".

NOT FOR: Deleting a session (use acp_delete_session). Multiple sessions at once (use acp_bulk_stop_sessions).

PARAMETERS:
- session: Session name (required)
- project: Project name (defaults to the cluster's default_project)
- dry_run: Preview without stopping

RETURNS: Confirmation of the stop, or a preview of the target session.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "acp_restart_session",
		Method:   "RestartSession",
		Title:    "Restart Session",
		Category: "sessions",
		Description: `Restart one stopped session.

USE WHEN: User says "restart session X", "resume X", "start X again".

NOT FOR: Creating a brand new session (use acp_create_session).

PARAMETERS:
- session: Session name (required)
- project: Project name (defaults to the cluster's default_project)
- dry_run: Preview without restarting

RETURNS: Confirmation of the restart, or a preview of the target session.`,
		OpenWorld: true,
	},

	// ==========================================================================
	// BULK TOOLS
	// ==========================================================================
	{
		Name:     "acp_bulk_delete_sessions",
		Method:   "BulkDeleteSessions",
		Title:    "Bulk Delete Sessions",
		Category: "bulk",
		Description: `Delete up to 3 sessions in one call. Requires confirm=true to execute.

USE WHEN: User says "delete these sessions", "clean up X, Y and Z".

NOT FOR: One session (use acp_delete_session). More than 3 sessions (call repeatedly).

PARAMETERS:
- sessions: Session names, max 3 (required)
- project: Project name (defaults to the cluster's default_project)
- confirm: Must be true to execute; omit for a refusal with guidance
- dry_run: Preview each target without deleting

RETURNS: Per-session outcomes; a failure on one session does not abort the rest.`,
		Destructive:     true,
		OpenWorld:       true,
		RequiresConfirm: true,
	},
	{
		Name:     "acp_bulk_stop_sessions",
		Method:   "BulkStopSessions",
		Title:    "Bulk Stop Sessions",
		Category: "bulk",
		Description: `Stop up to 3 sessions in one call. Requires confirm=true to execute.

USE WHEN: User says "stop all of these", "halt X, Y and Z".

NOT FOR: One session (use acp_stop_session).

PARAMETERS:
- sessions: Session names, max 3 (required)
- project: Project name (defaults to the cluster's default_project)
- confirm: Must be true to execute
- dry_run: Preview each target without stopping

RETURNS: Per-session outcomes; a failure on one session does not abort the rest.`,
		OpenWorld:       true,
		RequiresConfirm: true,
	},
	{
		Name:     "acp_bulk_restart_sessions",
		Method:   "BulkRestartSessions",
		Title:    "Bulk Restart Sessions",
		Category: "bulk",
		Description: `Restart up to 3 stopped sessions in one call. Requires confirm=true to execute.

USE WHEN: User says "restart these sessions", "resume X, Y and Z".

NOT FOR: One session (use acp_restart_session).

PARAMETERS:
- sessions: Session names, max 3 (required)
- project: Project name (defaults to the cluster's default_project)
- confirm: Must be true to execute
- dry_run: Preview each target without restarting

RETURNS: Per-session outcomes; a failure on one session does not abort the rest.`,
		OpenWorld:       true,
		RequiresConfirm: true,
	},

	// ==========================================================================
	// CLUSTER TOOLS
	// ==========================================================================
	{
		Name:     "acp_list_clusters",
		Method:   "ListClusters",
		Title:    "List Clusters",
		Category: "clusters",
		Description: `List every cluster configured in clusters.yaml.

USE WHEN: User asks "which clusters do I have", "what environments are configured".

NOT FOR: Checking the current connection (use acp_whoami instead).

PARAMETERS: None.

RETURNS: Each cluster's alias, gateway URL, description, default project, and whether it is active.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "acp_whoami",
		Method:   "Whoami",
		Title:    "Who Am I",
		Category: "clusters",
		Description: `Report the active cluster, default project, and authentication status.

USE WHEN: User asks "which cluster am I on", "am I logged in", "why are my calls failing".

NOT FOR: Listing all clusters (use acp_list_clusters instead).

PARAMETERS: None.

RETURNS: Active cluster name, gateway URL, default project, whether a token is configured, and whether the gateway accepts it. The token value is never returned.`,
		ReadOnly:  true,
		OpenWorld: true,
	},
	{
		Name:     "acp_switch_cluster",
		Method:   "SwitchCluster",
		Title:    "Switch Cluster",
		Category: "clusters",
		Description: `Switch the active cluster for all subsequent tool calls.

USE WHEN: User says "switch to staging", "use the prod cluster".

NOT FOR: One-off calls against another cluster (there is no per-call override; switch, call, switch back).

PARAMETERS:
- cluster: Cluster alias from clusters.yaml (required)

RETURNS: The previous and new active cluster. An unknown alias leaves the selection unchanged.`,
		Idempotent: true,
	},
}

// ToolsByCategory returns tool specs grouped by category.
func ToolsByCategory() map[string][]ToolSpec {
	result := make(map[string][]ToolSpec)
	for _, spec := range AllTools {
		result[spec.Category] = append(result[spec.Category], spec)
	}
	return result
}
