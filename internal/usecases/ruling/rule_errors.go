package ruling

import "errors"

var (
	// ErrProfileNotConfigured means the workspace has no business profile
	// yet; the rule engine cannot run without one.
	ErrProfileNotConfigured = errors.New("business profile not configured")

	// ErrGuardrailsNotConfigured means the workspace has no guardrails yet.
	ErrGuardrailsNotConfigured = errors.New("guardrails not configured")
)
