package domain

import "time"

// OpsTaskStatus is the lifecycle state of an operator task.
type OpsTaskStatus string

const (
	OpsTaskOpen OpsTaskStatus = "OPEN"
	OpsTaskDone OpsTaskStatus = "DONE"
)

// OpsTask is a unit of manual work queued by the execution engine for
// actions that have no platform mutation (SHOPIFY and OPS channels,
// creative duplication). An operator picks it up outside this system.
type OpsTask struct {
	ID               string        `json:"id"`
	WorkspaceID      string        `json:"workspace_id"`
	ProposedActionID string        `json:"proposed_action_id"`
	Channel          Channel       `json:"channel"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Status           OpsTaskStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
