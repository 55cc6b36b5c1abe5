package domain

import "time"

// RecommendationStatus is the lifecycle state of a recommendation.
// DRAFT → PROPOSED → APPROVED | REJECTED → EXECUTED.
type RecommendationStatus string

const (
	RecommendationDraft    RecommendationStatus = "DRAFT"
	RecommendationProposed RecommendationStatus = "PROPOSED"
	RecommendationApproved RecommendationStatus = "APPROVED"
	RecommendationRejected RecommendationStatus = "REJECTED"
	RecommendationExecuted RecommendationStatus = "EXECUTED"
)

// ActionType is the kind of mutation a proposed action requests.
type ActionType string

const (
	ActionTypeUpdateBudget   ActionType = "UPDATE_BUDGET"
	ActionTypePauseEntity    ActionType = "PAUSE_ENTITY"
	ActionTypeCreateTask     ActionType = "CREATE_TASK"
	ActionTypeDuplicateAdset ActionType = "DUPLICATE_ADSET"
)

// ValidActionType reports whether t is one of the known action types.
func ValidActionType(t ActionType) bool {
	switch t {
	case ActionTypeUpdateBudget, ActionTypePauseEntity, ActionTypeCreateTask, ActionTypeDuplicateAdset:
		return true
	}
	return false
}

// ProposedActionStatus is the lifecycle state of one proposed action.
// PENDING → APPROVED → EXECUTED | FAILED, or PENDING → REJECTED.
type ProposedActionStatus string

const (
	ProposedActionPending  ProposedActionStatus = "PENDING"
	ProposedActionApproved ProposedActionStatus = "APPROVED"
	ProposedActionExecuted ProposedActionStatus = "EXECUTED"
	ProposedActionFailed   ProposedActionStatus = "FAILED"
	ProposedActionRejected ProposedActionStatus = "REJECTED"
)

// Terminal reports whether the action can no longer change state.
func (s ProposedActionStatus) Terminal() bool {
	return s == ProposedActionExecuted || s == ProposedActionFailed || s == ProposedActionRejected
}

// ActionEntity identifies the single external entity a proposed action
// targets. Level decides which channel mutation API applies; the execution
// engine dispatches on it exhaustively.
type ActionEntity struct {
	Level EntityLevel `json:"level"`
	ID    string      `json:"id"`
	Name  string      `json:"name,omitempty"`
}

// ProposedAction is one discrete suggested mutation awaiting approval.
type ProposedAction struct {
	ID               string               `json:"id"`
	RecommendationID string               `json:"recommendation_id"`
	Channel          Channel              `json:"channel"`
	Type             ActionType           `json:"type"`
	Entity           ActionEntity         `json:"entity"`
	Rationale        string               `json:"rationale"`
	ExpectedImpact   string               `json:"expected_impact"`
	GuardrailNotes   string               `json:"guardrail_notes,omitempty"`
	// BudgetChangePct is the signed percentage for UPDATE_BUDGET actions.
	BudgetChangePct *float64             `json:"budget_change_pct,omitempty"`
	Status          ProposedActionStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// Diagnostic is one metric/finding/evidence triple attached to a recommendation.
type Diagnostic struct {
	ID               string `json:"id"`
	RecommendationID string `json:"recommendation_id"`
	Metric           string `json:"metric"`
	Finding          string `json:"finding"`
	Evidence         string `json:"evidence"`
}

// CreativeBrief sketches a replacement creative for a fatigued entity.
type CreativeBrief struct {
	ID               string `json:"id"`
	RecommendationID string `json:"recommendation_id"`
	EntityID         string `json:"entity_id"`
	EntityName       string `json:"entity_name"`
	Angle            string `json:"angle"`
	Hook             string `json:"hook"`
	CallToAction     string `json:"call_to_action"`
}

// SnapshotEntity is the frozen per-entity metric record inside a data
// snapshot. The JSON field names are a persisted compatibility contract.
type SnapshotEntity struct {
	EntityID   string  `json:"entityId"`
	EntityName string  `json:"entityName"`
	Spend      float64 `json:"spend"`
	Revenue    float64 `json:"revenue"`
	ROAS       float64 `json:"roas"`
	CPA        float64 `json:"cpa"`
}

// SnapshotRuleResult is the frozen rule verdict inside a data snapshot.
type SnapshotRuleResult struct {
	Action   RuleAction `json:"action"`
	EntityID string     `json:"entityId"`
	Reason   string     `json:"reason"`
}

// DataSnapshot freezes the entities and rule results a recommendation was
// generated from, so later inspection can explain the recommendation
// without re-running the engine against changed live data.
type DataSnapshot struct {
	Entities    []SnapshotEntity     `json:"entities"`
	RuleResults []SnapshotRuleResult `json:"ruleResults"`
}

// Recommendation is one generated optimization proposal for a workspace,
// owning its diagnostics, proposed actions and creative briefs.
type Recommendation struct {
	ID                 string               `json:"id"`
	WorkspaceID        string               `json:"workspace_id"`
	Status             RecommendationStatus `json:"status"`
	Summary            string               `json:"summary"`
	ModeRecommendation StrategicMode        `json:"mode_recommendation"`
	DataSnapshot       *DataSnapshot        `json:"data_snapshot,omitempty"`
	Diagnostics        []*Diagnostic        `json:"diagnostics,omitempty"`
	ProposedActions    []*ProposedAction    `json:"proposed_actions,omitempty"`
	CreativeBriefs     []*CreativeBrief     `json:"creative_briefs,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
	ProposedAt         *time.Time           `json:"proposed_at,omitempty"`
	DecidedAt          *time.Time           `json:"decided_at,omitempty"`
	ExecutedAt         *time.Time           `json:"executed_at,omitempty"`
}
