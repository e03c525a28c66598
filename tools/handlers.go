package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/ambient-code/acp-mcp-server/internal/acp"
	apierrors "github.com/ambient-code/acp-mcp-server/internal/errors"
	"github.com/ambient-code/acp-mcp-server/metrics"
	"github.com/ambient-code/acp-mcp-server/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *acp.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *acp.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		if err := h.registerByName(server, spec); err != nil {
			h.logger.Error("Tool not registered", "tool", spec.Name, "error", err)
		}
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) error {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Session tools
	case "ListSessions":
		register(h, server, tool, spec, h.client.ListSessionsMCP)
	case "GetSession":
		register(h, server, tool, spec, h.client.GetSessionMCP)
	case "CreateSession":
		register(h, server, tool, spec, h.client.CreateSessionMCP)
	case "DeleteSession":
		register(h, server, tool, spec, h.client.DeleteSessionMCP)
	case "StopSession":
		register(h, server, tool, spec, h.client.StopSessionMCP)
	case "RestartSession":
		register(h, server, tool, spec, h.client.RestartSessionMCP)

	// Bulk tools
	case "BulkDeleteSessions":
		register(h, server, tool, spec, h.client.BulkDeleteSessionsMCP)
	case "BulkStopSessions":
		register(h, server, tool, spec, h.client.BulkStopSessionsMCP)
	case "BulkRestartSessions":
		register(h, server, tool, spec, h.client.BulkRestartSessionsMCP)

	// Cluster tools
	case "ListClusters":
		register(h, server, tool, spec, h.client.ListClustersMCP)
	case "Whoami":
		register(h, server, tool, spec, h.client.WhoamiMCP)
	case "SwitchCluster":
		register(h, server, tool, spec, h.client.SwitchClusterMCP)

	default:
		return &apierrors.UnknownToolError{Name: spec.Method}
	}
	return nil
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// bulkArgs is implemented by arguments of confirmation-gated tools.
type bulkArgs interface {
	Targets() []string
	IsConfirmed() bool
	IsDryRun() bool
}

// checkConfirmation enforces the confirm gate on destructive bulk tools.
// Dry runs pass; live runs without confirm=true are refused before the
// client method executes.
func checkConfirmation(spec ToolSpec, args any) error {
	if !spec.RequiresConfirm {
		return nil
	}
	b, ok := args.(bulkArgs)
	if !ok {
		return nil
	}
	if b.IsDryRun() || b.IsConfirmed() {
		return nil
	}
	return &apierrors.ConfirmationRequiredError{
		Tool:  spec.Name,
		Count: len(b.Targets()),
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		if err := checkConfirmation(spec, args); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, 0, false)
			var zero Result
			return nil, zero, err
		}

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case acp.ListSessionsArgs:
		if a.Status != "" {
			attrs = append(attrs, "status", a.Status)
		}
		if a.OlderThan != "" {
			attrs = append(attrs, "older_than", a.OlderThan)
		}
	case acp.GetSessionArgs:
		attrs = append(attrs, "session", a.Session)
	case acp.CreateSessionArgs:
		attrs = append(attrs, "dry_run", a.DryRun, "interactive", a.Interactive)
	case acp.DeleteSessionArgs:
		attrs = append(attrs, "session", a.Session, "dry_run", a.DryRun)
	case acp.StopSessionArgs:
		attrs = append(attrs, "session", a.Session, "dry_run", a.DryRun)
	case acp.RestartSessionArgs:
		attrs = append(attrs, "session", a.Session, "dry_run", a.DryRun)
	case acp.BulkDeleteSessionsArgs:
		attrs = append(attrs, "targets", len(a.Sessions), "dry_run", a.DryRun)
	case acp.BulkStopSessionsArgs:
		attrs = append(attrs, "targets", len(a.Sessions), "dry_run", a.DryRun)
	case acp.BulkRestartSessionsArgs:
		attrs = append(attrs, "targets", len(a.Sessions), "dry_run", a.DryRun)
	case acp.SwitchClusterArgs:
		attrs = append(attrs, "cluster", a.Cluster)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case acp.ListSessionsResult:
		attrs = append(attrs, "total", r.Total)
	case acp.CreateSessionResult:
		attrs = append(attrs, "created", r.Created, "session", r.Session)
	case acp.DeleteSessionResult:
		attrs = append(attrs, "deleted", r.Deleted)
	case acp.StopSessionResult:
		attrs = append(attrs, "stopped", r.Stopped)
	case acp.RestartSessionResult:
		attrs = append(attrs, "restarted", r.Restarted)
	case acp.BulkSessionsResult:
		attrs = append(attrs, "succeeded", len(r.Succeeded), "failed", len(r.Failed))
	case acp.ListClustersResult:
		attrs = append(attrs, "clusters", len(r.Clusters))
	case acp.WhoamiResult:
		attrs = append(attrs, "cluster", r.Cluster, "authenticated", r.Authenticated)
	case acp.SwitchClusterResult:
		attrs = append(attrs, "current", r.Current)
	}

	h.logger.Info("Tool executed", attrs...)
}
