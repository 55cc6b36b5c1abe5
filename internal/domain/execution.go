package domain

import "time"

// ExecutionRunStatus classifies the aggregate outcome of one execution batch.
type ExecutionRunStatus string

const (
	ExecutionRunRunning   ExecutionRunStatus = "RUNNING"
	ExecutionRunCompleted ExecutionRunStatus = "COMPLETED"
	ExecutionRunPartial   ExecutionRunStatus = "PARTIAL"
	ExecutionRunFailed    ExecutionRunStatus = "FAILED"
)

// ExecutionActionStatus is the terminal outcome of one attempted action.
type ExecutionActionStatus string

const (
	ExecutionActionExecuted ExecutionActionStatus = "EXECUTED"
	ExecutionActionFailed   ExecutionActionStatus = "FAILED"
)

// EntityState is the budget/status pair captured around an external mutation.
type EntityState struct {
	DailyBudget float64 `json:"daily_budget"`
	Status      string  `json:"status"`
}

// ExecutionRun groups one execution attempt over a set of approved
// proposed actions belonging to one recommendation.
type ExecutionRun struct {
	ID               string             `json:"id"`
	WorkspaceID      string             `json:"workspace_id"`
	RecommendationID string             `json:"recommendation_id"`
	Status           ExecutionRunStatus `json:"status"`
	StartedAt        time.Time          `json:"started_at"`
	FinishedAt       *time.Time         `json:"finished_at,omitempty"`
}

// ExecutionAction is the immutable audit record of exactly what happened to
// one proposed action during a run. Never updated once written.
type ExecutionAction struct {
	ID               string                `json:"id"`
	RunID            string                `json:"run_id"`
	ProposedActionID string                `json:"proposed_action_id"`
	Channel          Channel               `json:"channel"`
	Type             ActionType            `json:"type"`
	Entity           ActionEntity          `json:"entity"`
	BeforeState      *EntityState          `json:"before_state,omitempty"`
	AfterState       *EntityState          `json:"after_state,omitempty"`
	Status           ExecutionActionStatus `json:"status"`
	Error            string                `json:"error,omitempty"`
	ExecutedAt       time.Time             `json:"executed_at"`
}

// ActionResult is the per-action line of an execution summary returned to
// the caller, so partial success stays legible.
type ActionResult struct {
	ProposedActionID string                `json:"proposed_action_id"`
	EntityID         string                `json:"entity_id"`
	Status           ExecutionActionStatus `json:"status"`
	Error            string                `json:"error,omitempty"`
}

// ExecutionSummary is what one RunExecution invocation returns.
type ExecutionSummary struct {
	ExecutionRunID string          `json:"execution_run_id"`
	Status         ExecutionRunStatus `json:"status"`
	Results        []*ActionResult `json:"results"`
}
