package domain

import "time"

// AuditLogEntry is one append-only record of a mutation performed against
// an external platform on behalf of a workspace. Entries reference their
// execution action but do not own it; they are never updated or deleted.
type AuditLogEntry struct {
	ID                int64        `json:"id"`
	WorkspaceID       string       `json:"workspace_id"`
	UserID            string       `json:"user_id"`
	Action            string       `json:"action"`
	Channel           Channel      `json:"channel"`
	EntityType        EntityLevel  `json:"entity_type"`
	EntityID          string       `json:"entity_id"`
	BeforeState       *EntityState `json:"before_state,omitempty"`
	AfterState        *EntityState `json:"after_state,omitempty"`
	Reason            string       `json:"reason"`
	ExecutionActionID *string      `json:"execution_action_id,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}
