// Package config loads and validates the cluster configuration for the ACP
// MCP server. Configuration lives in clusters.yaml; each entry points at a
// public-api gateway, never at the orchestrator API directly.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apierrors "github.com/ambient-code/acp-mcp-server/internal/errors"
)

// EnvConfigPath overrides the default clusters.yaml location.
const EnvConfigPath = "ACP_CLUSTER_CONFIG"

// EnvToken overrides the per-cluster token when set.
const EnvToken = "ACP_TOKEN"

// Cluster holds the connection settings for one ACP cluster.
type Cluster struct {
	// Server is the public-api gateway URL
	// (e.g. https://public-api-ambient.apps.cluster.example.com).
	Server string `yaml:"server"`

	// Token is the bearer token for gateway access. Optional: the ACP_TOKEN
	// environment variable takes precedence when set.
	Token string `yaml:"token,omitempty"`

	// DefaultProject is the project/namespace used when a tool call omits one.
	DefaultProject string `yaml:"default_project,omitempty"`

	// Description is a human-readable label for the cluster.
	Description string `yaml:"description,omitempty"`
}

// Clusters is the full parsed clusters.yaml document.
type Clusters struct {
	Clusters       map[string]Cluster `yaml:"clusters"`
	DefaultCluster string             `yaml:"default_cluster,omitempty"`
}

// DefaultPath returns the default clusters.yaml location
// (~/.config/acp/clusters.yaml), honoring the ACP_CLUSTER_CONFIG override.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "acp", "clusters.yaml")
	}
	return filepath.Join(home, ".config", "acp", "clusters.yaml")
}

// Load reads and validates the cluster configuration at path.
func Load(path string) (*Clusters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apierrors.NewConfigurationError("cluster configuration not found: " + path)
		}
		return nil, fmt.Errorf("failed to read cluster configuration: %w", err)
	}
	return Parse(data)
}

// Parse validates raw clusters.yaml content.
func Parse(data []byte) (*Clusters, error) {
	var cfg Clusters
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apierrors.NewConfigurationError("failed to parse clusters.yaml: " + err.Error())
	}

	if len(cfg.Clusters) == 0 {
		return nil, apierrors.NewConfigurationError("cluster configuration is empty: define at least one cluster")
	}

	for name, cluster := range cfg.Clusters {
		if err := ValidateServerURL(cluster.Server); err != nil {
			return nil, apierrors.NewConfigurationError(fmt.Sprintf("cluster %q: %v", name, err))
		}
		// Trailing slash stripped so request paths join cleanly.
		cluster.Server = strings.TrimRight(cluster.Server, "/")
		cfg.Clusters[name] = cluster
	}

	if cfg.DefaultCluster != "" {
		if _, ok := cfg.Clusters[cfg.DefaultCluster]; !ok {
			return nil, apierrors.NewConfigurationError(fmt.Sprintf(
				"default_cluster %q not found in clusters (%s)",
				cfg.DefaultCluster, strings.Join(clusterNames(&cfg), ", ")))
		}
	}

	return &cfg, nil
}

// ValidateServerURL checks that a gateway URL is http/https and does not
// point at the orchestrator API port. Traffic must go through the gateway,
// never around it.
func ValidateServerURL(server string) error {
	if server == "" {
		return apierrors.NewValidationError("server", "", "server URL is required")
	}
	if !strings.HasPrefix(server, "https://") && !strings.HasPrefix(server, "http://") {
		return apierrors.NewValidationError("server", server, "server URL must start with https:// or http://")
	}
	if strings.Contains(server, ":6443") {
		return apierrors.NewValidationError("server", server,
			"direct orchestrator API URLs (port 6443) are not supported; use the public-api gateway URL instead")
	}
	return nil
}

// ResolveToken returns the bearer token for a cluster: the ACP_TOKEN
// environment variable when set, otherwise the stored cluster token.
func ResolveToken(cluster Cluster) (string, error) {
	if token := os.Getenv(EnvToken); token != "" {
		return token, nil
	}
	if cluster.Token != "" {
		return cluster.Token, nil
	}
	return "", &apierrors.AuthConfigError{}
}

func clusterNames(cfg *Clusters) []string {
	names := make([]string, 0, len(cfg.Clusters))
	for name := range cfg.Clusters {
		names = append(names, name)
	}
	return names
}
