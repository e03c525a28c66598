package config

import (
	"sync"

	apierrors "github.com/ambient-code/acp-mcp-server/internal/errors"
)

// Store holds the immutable cluster configuration and the single piece of
// process-wide mutable state: the active cluster selection. Tool invocations
// snapshot the active cluster exactly once per call so a request is never
// validated against one cluster's config and executed against another's.
type Store struct {
	mu      sync.RWMutex
	cfg     *Clusters
	current string
}

// ActiveCluster is a read-once snapshot of the active cluster for one call.
type ActiveCluster struct {
	Name    string
	Cluster Cluster
}

// NewStore creates a Store with the configured default cluster active.
func NewStore(cfg *Clusters) *Store {
	return &Store{cfg: cfg, current: cfg.DefaultCluster}
}

// Active returns a snapshot of the currently active cluster.
func (s *Store) Active() (ActiveCluster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == "" {
		return ActiveCluster{}, apierrors.NewConfigurationError(
			"no cluster specified and no default_cluster configured")
	}
	cluster, ok := s.cfg.Clusters[s.current]
	if !ok {
		return ActiveCluster{}, apierrors.NewConfigurationError(
			"cluster " + s.current + " not found in configuration")
	}
	return ActiveCluster{Name: s.current, Cluster: cluster}, nil
}

// Switch atomically replaces the active cluster. An unknown alias leaves the
// active cluster unchanged and returns the previous selection alongside the
// error.
func (s *Store) Switch(name string) (previous string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous = s.current
	if _, ok := s.cfg.Clusters[name]; !ok {
		return previous, apierrors.NewConfigurationError(
			"unknown cluster: " + name + " (use acp_list_clusters to see available clusters)")
	}
	s.current = name
	return previous, nil
}

// All returns every configured cluster alias with its settings, plus the
// active alias. Used by the list_clusters and whoami tools.
func (s *Store) All() (map[string]Cluster, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Cluster, len(s.cfg.Clusters))
	for name, cluster := range s.cfg.Clusters {
		out[name] = cluster
	}
	return out, s.current
}

// DefaultName returns the configured default_cluster alias. The default never
// changes at runtime; only the active selection does.
func (s *Store) DefaultName() string {
	return s.cfg.DefaultCluster
}
