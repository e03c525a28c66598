package acp

import (
	"regexp"

	apierrors "github.com/ambient-code/acp-mcp-server/internal/errors"
)

// nameRegex matches DNS-1123 labels: lowercase alphanumerics with internal
// hyphens, no leading or trailing hyphen.
var nameRegex = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)

// maxNameLength is the longest accepted resource name.
const maxNameLength = 253

// ValidateName checks that value is a DNS-1123-shaped resource name. It is
// called before any outbound request is built and never mutates its input.
func ValidateName(value, field string) error {
	if value == "" {
		return apierrors.NewValidationError(field, "", "must not be empty")
	}
	if len(value) > maxNameLength {
		return apierrors.NewValidationError(field, value, "exceeds maximum length of 253 characters")
	}
	if !nameRegex.MatchString(value) {
		return apierrors.NewValidationError(field, value,
			"must match DNS-1123 format: lowercase alphanumerics and internal hyphens only")
	}
	return nil
}

// validateTargets checks every name in a bulk target list before any network
// call is made. Duplicates are allowed and passed through.
func validateTargets(sessions []string) error {
	if len(sessions) == 0 {
		return apierrors.NewValidationError("sessions", "", "must contain at least one session name")
	}
	for _, session := range sessions {
		if err := ValidateName(session, "sessions"); err != nil {
			return err
		}
	}
	return nil
}
