package acp

import (
	"context"
	"fmt"

	"github.com/ambient-code/acp-mcp-server/internal/config"
	apierrors "github.com/ambient-code/acp-mcp-server/internal/errors"
	"github.com/ambient-code/acp-mcp-server/metrics"
)

// BulkFailure records one session that could not be acted on.
type BulkFailure struct {
	Session string `json:"session"`
	Error   string `json:"error"`
}

// BulkPreviewItem is one dry-run entry for a session that exists.
type BulkPreviewItem struct {
	Session string `json:"session"`
	Status  string `json:"status,omitempty"`
	Created string `json:"created,omitempty"`
}

// BulkSkipped is one dry-run entry for a session that does not exist.
type BulkSkipped struct {
	Session string `json:"session"`
	Reason  string `json:"reason"`
}

// BulkSessionsResult is shared by all bulk session tools.
type BulkSessionsResult struct {
	Action       string            `json:"action"`
	DryRun       bool              `json:"dry_run,omitempty"`
	Succeeded    []string          `json:"succeeded,omitempty"`
	Failed       []BulkFailure     `json:"failed,omitempty"`
	WouldExecute []BulkPreviewItem `json:"would_execute,omitempty"`
	Skipped      []BulkSkipped     `json:"skipped,omitempty"`
	Message      string            `json:"message"`
}

// bulkOp applies one action to one session.
type bulkOp func(ctx context.Context, ac config.ActiveCluster, project, session string) error

// runBulk executes or previews a bulk session operation. The target ceiling
// and name validation are checked before any network call. Dry-run previews
// each target with a GET; execution runs sequentially in input order, and a
// failure on one target never aborts the rest.
func (c *Client) runBulk(ctx context.Context, ac config.ActiveCluster, project string, sessions []string, action string, dryRun bool, op bulkOp) (BulkSessionsResult, error) {
	if len(sessions) > MaxBulkItems {
		return BulkSessionsResult{}, apierrors.NewValidationError("sessions",
			fmt.Sprintf("%d items", len(sessions)),
			fmt.Sprintf("bulk operations are limited to %d sessions per call", MaxBulkItems))
	}
	if err := validateTargets(sessions); err != nil {
		return BulkSessionsResult{}, err
	}

	result := BulkSessionsResult{Action: action, DryRun: dryRun}

	if dryRun {
		for _, session := range sessions {
			s, err := c.getSession(ctx, ac, project, session)
			switch {
			case err == nil:
				result.WouldExecute = append(result.WouldExecute, BulkPreviewItem{
					Session: session,
					Status:  s.Status,
					Created: s.CreatedAt,
				})
			case apierrors.IsNotFound(err):
				result.Skipped = append(result.Skipped, BulkSkipped{
					Session: session,
					Reason:  "not found",
				})
			default:
				return BulkSessionsResult{}, err
			}
		}
		result.Message = fmt.Sprintf("Dry run: would %s %d session(s), %d skipped",
			action, len(result.WouldExecute), len(result.Skipped))
		return result, nil
	}

	for _, session := range sessions {
		if err := op(ctx, ac, project, session); err != nil {
			c.logger.Warn("Bulk operation item failed",
				"action", action, "session", session, "error", err)
			result.Failed = append(result.Failed, BulkFailure{
				Session: session,
				Error:   err.Error(),
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, session)
	}

	metrics.RecordBulkOperation(action, len(result.Succeeded), len(result.Failed))
	result.Message = fmt.Sprintf("Bulk %s complete: %d succeeded, %d failed",
		action, len(result.Succeeded), len(result.Failed))
	return result, nil
}
