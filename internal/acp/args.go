package acp

// Args and Result types for the MCP tool surface. Field tags drive the
// generated JSON schemas; required fields are enforced by the protocol layer
// before a handler runs.

// ListSessionsArgs contains parameters for listing sessions.
type ListSessionsArgs struct {
	Project        string `json:"project,omitempty" jsonschema_description:"Project/namespace name (defaults to the active cluster's default_project)"`
	Status         string `json:"status,omitempty" jsonschema_description:"Filter by status: running, stopped, creating, or failed"`
	HasDisplayName *bool  `json:"has_display_name,omitempty" jsonschema_description:"Filter by display name presence"`
	OlderThan      string `json:"older_than,omitempty" jsonschema_description:"Filter by age, e.g. '7d', '24h', '30m'"`
	SortBy         string `json:"sort_by,omitempty" jsonschema_description:"Sort field: created, stopped, or name"`
	Limit          int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results"`
}

// ListSessionsResult is the result of listing sessions.
type ListSessionsResult struct {
	Sessions       []SessionSummary `json:"sessions"`
	Total          int              `json:"total"`
	FiltersApplied AppliedFilters   `json:"filters_applied"`
}

// GetSessionArgs contains parameters for fetching one session.
type GetSessionArgs struct {
	Session string `json:"session" jsonschema:"required" jsonschema_description:"Session name"`
	Project string `json:"project,omitempty" jsonschema_description:"Project/namespace name (defaults to the active cluster's default_project)"`
}

// GetSessionResult is the result of fetching one session.
type GetSessionResult struct {
	Session *Session `json:"session"`
}

// CreateSessionArgs contains parameters for creating a session.
type CreateSessionArgs struct {
	InitialPrompt string   `json:"initial_prompt" jsonschema:"required" jsonschema_description:"The prompt to send to the session"`
	Project       string   `json:"project,omitempty" jsonschema_description:"Project/namespace name (defaults to the active cluster's default_project)"`
	DisplayName   string   `json:"display_name,omitempty" jsonschema_description:"Display name for the session"`
	Repos         []string `json:"repos,omitempty" jsonschema_description:"Repository URLs to make available to the session"`
	Interactive   bool     `json:"interactive,omitempty" jsonschema_description:"Create an interactive session (default: false)"`
	Model         string   `json:"model,omitempty" jsonschema_description:"LLM model to use (default: claude-sonnet-4)"`
	Timeout       int      `json:"timeout,omitempty" jsonschema_description:"Session timeout in seconds (default: 900)"`
	DryRun        bool     `json:"dry_run,omitempty" jsonschema_description:"Preview the manifest without creating (default: false)"`
}

// CreateSessionResult is the result of creating (or previewing) a session.
type CreateSessionResult struct {
	Created  bool             `json:"created"`
	DryRun   bool             `json:"dry_run,omitempty"`
	Session  string           `json:"session,omitempty"`
	Project  string           `json:"project"`
	Message  string           `json:"message"`
	Manifest *SessionManifest `json:"manifest,omitempty"`
}

// DeleteSessionArgs contains parameters for deleting a session.
type DeleteSessionArgs struct {
	Session string `json:"session" jsonschema:"required" jsonschema_description:"Session name"`
	Project string `json:"project,omitempty" jsonschema_description:"Project/namespace name (defaults to the active cluster's default_project)"`
	DryRun  bool   `json:"dry_run,omitempty" jsonschema_description:"Preview without deleting (default: false)"`
}

// DeleteSessionResult is the result of deleting (or previewing) a deletion.
type DeleteSessionResult struct {
	Deleted     bool            `json:"deleted"`
	DryRun      bool            `json:"dry_run,omitempty"`
	Found       bool            `json:"found"`
	Message     string          `json:"message"`
	SessionInfo *SessionSummary `json:"session_info,omitempty"`
}

// StopSessionArgs contains parameters for stopping a session.
type StopSessionArgs struct {
	Session string `json:"session" jsonschema:"required" jsonschema_description:"Session name"`
	Project string `json:"project,omitempty" jsonschema_description:"Project/namespace name (defaults to the active cluster's default_project)"`
	DryRun  bool   `json:"dry_run,omitempty" jsonschema_description:"Preview without stopping (default: false)"`
}

// StopSessionResult is the result of stopping (or previewing) a stop.
type StopSessionResult struct {
	Stopped     bool            `json:"stopped"`
	DryRun      bool            `json:"dry_run,omitempty"`
	Found       bool            `json:"found"`
	Message     string          `json:"message"`
	SessionInfo *SessionSummary `json:"session_info,omitempty"`
}

// RestartSessionArgs contains parameters for restarting a session.
type RestartSessionArgs struct {
	Session string `json:"session" jsonschema:"required" jsonschema_description:"Session name"`
	Project string `json:"project,omitempty" jsonschema_description:"Project/namespace name (defaults to the active cluster's default_project)"`
	DryRun  bool   `json:"dry_run,omitempty" jsonschema_description:"Preview without restarting (default: false)"`
}

// RestartSessionResult is the result of restarting (or previewing) a restart.
type RestartSessionResult struct {
	Restarted   bool            `json:"restarted"`
	DryRun      bool            `json:"dry_run,omitempty"`
	Found       bool            `json:"found"`
	Message     string          `json:"message"`
	SessionInfo *SessionSummary `json:"session_info,omitempty"`
}

// BulkSessionsArgs contains parameters shared by all bulk session tools.
type BulkSessionsArgs struct {
	Sessions []string `json:"sessions" jsonschema:"required" jsonschema_description:"Session names to operate on (maximum 3)"`
	Project  string   `json:"project,omitempty" jsonschema_description:"Project/namespace name (defaults to the active cluster's default_project)"`
	Confirm  bool     `json:"confirm,omitempty" jsonschema_description:"Required for execution: explicit confirmation of a destructive bulk operation"`
	DryRun   bool     `json:"dry_run,omitempty" jsonschema_description:"Preview without executing (default: false)"`
}

// BulkDeleteSessionsArgs contains parameters for bulk deletion.
type BulkDeleteSessionsArgs struct {
	BulkSessionsArgs
}

// BulkStopSessionsArgs contains parameters for bulk stop.
type BulkStopSessionsArgs struct {
	BulkSessionsArgs
}

// BulkRestartSessionsArgs contains parameters for bulk restart.
type BulkRestartSessionsArgs struct {
	BulkSessionsArgs
}

// ListClustersArgs has no parameters.
type ListClustersArgs struct{}

// ClusterSummary describes one configured cluster alias.
type ClusterSummary struct {
	Name           string `json:"name"`
	Server         string `json:"server"`
	Description    string `json:"description,omitempty"`
	DefaultProject string `json:"default_project,omitempty"`
	IsDefault      bool   `json:"is_default"`
	IsActive       bool   `json:"is_active"`
}

// ListClustersResult is the result of listing configured clusters.
type ListClustersResult struct {
	Clusters      []ClusterSummary `json:"clusters"`
	ActiveCluster string           `json:"active_cluster,omitempty"`
}

// WhoamiArgs has no parameters.
type WhoamiArgs struct{}

// WhoamiResult reports the current configuration status. The token value
// itself is never included.
type WhoamiResult struct {
	Cluster         string `json:"cluster"`
	Server          string `json:"server"`
	Project         string `json:"project"`
	TokenConfigured bool   `json:"token_configured"`
	Authenticated   bool   `json:"authenticated"`
	Error           string `json:"error,omitempty"`
}

// SwitchClusterArgs contains parameters for switching the active cluster.
type SwitchClusterArgs struct {
	Cluster string `json:"cluster" jsonschema:"required" jsonschema_description:"Cluster alias name from clusters.yaml"`
}

// SwitchClusterResult is the result of a cluster switch.
type SwitchClusterResult struct {
	Switched bool   `json:"switched"`
	Previous string `json:"previous,omitempty"`
	Current  string `json:"current"`
	Message  string `json:"message"`
}

// Targets returns the bulk target list for the confirmation gate.
func (a BulkSessionsArgs) Targets() []string { return a.Sessions }

// IsConfirmed reports whether the caller passed confirm=true.
func (a BulkSessionsArgs) IsConfirmed() bool { return a.Confirm }

// IsDryRun reports whether the caller requested a preview.
func (a BulkSessionsArgs) IsDryRun() bool { return a.DryRun }
