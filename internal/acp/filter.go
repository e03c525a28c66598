package acp

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	apierrors "github.com/ambient-code/acp-mcp-server/internal/errors"
)

// ListOptions are the optional filter/sort/limit parameters of a list call.
// Absent parameters contribute no predicate.
type ListOptions struct {
	Status         string
	HasDisplayName *bool
	OlderThan      string
	SortBy         string
	Limit          int
}

// AppliedFilters echoes back which parameters shaped a list result.
type AppliedFilters struct {
	Status         string `json:"status,omitempty"`
	HasDisplayName *bool  `json:"has_display_name,omitempty"`
	OlderThan      string `json:"older_than,omitempty"`
	SortBy         string `json:"sort_by,omitempty"`
	Limit          int    `json:"limit,omitempty"`
}

// predicate is one composable filter over a session. Active predicates
// combine with logical AND.
type predicate func(Session) bool

// ageExpr matches relative durations like "7d", "24h", "30m". Anything else
// is rejected rather than silently ignored.
var ageExpr = regexp.MustCompile(`^(\d+)([dhm])$`)

// applyListOptions runs the list pipeline: build predicates, AND-filter,
// stable sort, truncate. With no options the gateway order is preserved.
func applyListOptions(sessions []Session, opts ListOptions, now time.Time) ([]Session, AppliedFilters, error) {
	var preds []predicate
	var applied AppliedFilters

	if opts.Status != "" {
		status := opts.Status
		preds = append(preds, func(s Session) bool {
			return strings.EqualFold(s.Status, status)
		})
		applied.Status = status
	}

	if opts.HasDisplayName != nil {
		want := *opts.HasDisplayName
		preds = append(preds, func(s Session) bool {
			return (s.DisplayName != "") == want
		})
		applied.HasDisplayName = opts.HasDisplayName
	}

	if opts.OlderThan != "" {
		age, err := parseAge(opts.OlderThan)
		if err != nil {
			return nil, AppliedFilters{}, err
		}
		cutoff := now.UTC().Add(-age)
		preds = append(preds, func(s Session) bool {
			return createdBefore(s.CreatedAt, cutoff)
		})
		applied.OlderThan = opts.OlderThan
	}

	filtered := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if matchesAll(s, preds) {
			filtered = append(filtered, s)
		}
	}

	if opts.SortBy != "" {
		if err := sortSessions(filtered, opts.SortBy); err != nil {
			return nil, AppliedFilters{}, err
		}
		applied.SortBy = opts.SortBy
	}

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
		applied.Limit = opts.Limit
	} else if opts.Limit > 0 {
		applied.Limit = opts.Limit
	}

	return filtered, applied, nil
}

func matchesAll(s Session, preds []predicate) bool {
	for _, p := range preds {
		if !p(s) {
			return false
		}
	}
	return true
}

// parseAge converts a relative duration like "7d" into a time.Duration.
func parseAge(value string) (time.Duration, error) {
	m := ageExpr.FindStringSubmatch(strings.ToLower(strings.TrimSpace(value)))
	if m == nil {
		return 0, apierrors.NewValidationError("older_than", value,
			`invalid duration format: use forms like "7d", "24h", or "30m"`)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, apierrors.NewValidationError("older_than", value, "duration value out of range")
	}
	switch m[2] {
	case "d":
		return time.Duration(n) * 24 * time.Hour, nil
	case "h":
		return time.Duration(n) * time.Hour, nil
	default:
		return time.Duration(n) * time.Minute, nil
	}
}

// createdBefore reports whether an RFC3339 timestamp falls before the cutoff.
// Both sides are normalized to UTC so mixed-offset timestamps compare
// correctly. Missing or unparsable timestamps never match.
func createdBefore(timestamp string, cutoff time.Time) bool {
	if timestamp == "" {
		return false
	}
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return false
	}
	return t.UTC().Before(cutoff)
}

// sortSessions orders sessions by the requested key. Creation and stop times
// sort newest first; names sort ascending. The sort is stable so ties keep
// the gateway-provided order. RFC3339 timestamps compare correctly as
// strings.
func sortSessions(sessions []Session, sortBy string) error {
	switch sortBy {
	case "created":
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].CreatedAt > sessions[j].CreatedAt
		})
	case "stopped":
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].CompletedAt > sessions[j].CompletedAt
		})
	case "name":
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].ID < sessions[j].ID
		})
	default:
		return apierrors.NewValidationError("sort_by", sortBy,
			`unknown sort field: use "created", "stopped", or "name"`)
	}
	return nil
}
