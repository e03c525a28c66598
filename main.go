// ACP MCP Server - A Model Context Protocol server for the Ambient Code Platform
// Provides tools for managing agentic sessions through the public-api gateway
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ambient-code/acp-mcp-server/internal/acp"
	"github.com/ambient-code/acp-mcp-server/internal/config"
	"github.com/ambient-code/acp-mcp-server/tools"
	"github.com/ambient-code/acp-mcp-server/tracing"
)

const (
	ServerName    = "acp-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load cluster configuration
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		log.Fatalf("Failed to load cluster configuration: %v", err)
	}
	store := config.NewStore(cfg)

	// Create gateway client
	client := acp.NewClient(store, acp.WithLogger(logger))

	// Set up tracing
	ctx := context.Background()
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		logger.Warn("Tracing disabled", "error", err)
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `ACP MCP Server provides tools for managing Ambient Code Platform agentic sessions.

Available tools:
- acp_list_sessions: List sessions with filtering, sorting, and limits
- acp_get_session: Get full details of one session
- acp_create_session: Create a new session (supports dry_run preview)
- acp_delete_session: Delete one session (supports dry_run preview)
- acp_stop_session: Stop one running session
- acp_restart_session: Restart one stopped session
- acp_bulk_delete_sessions: Delete up to 3 sessions (requires confirm=true)
- acp_bulk_stop_sessions: Stop up to 3 sessions (requires confirm=true)
- acp_bulk_restart_sessions: Restart up to 3 sessions (requires confirm=true)
- acp_list_clusters: List configured clusters
- acp_whoami: Show active cluster, project, and auth status
- acp_switch_cluster: Switch the active cluster

Configure via ~/.config/acp/clusters.yaml (override with ACP_CLUSTER_CONFIG).
The ACP_TOKEN environment variable overrides any stored cluster token.`,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting ACP MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"clusters", len(cfg.Clusters),
		"default_cluster", cfg.DefaultCluster,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
