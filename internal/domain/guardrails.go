package domain

import (
	"fmt"
	"time"
)

// Guardrails are the workspace-configured hard limits consulted before any
// automatic budget or pause mutation. A violation blocks execution of the
// offending action; it is never a warning.
type Guardrails struct {
	WorkspaceID                 string    `json:"workspace_id"`
	MaxBudgetChangePercentDaily float64   `json:"max_budget_change_percent_daily"`
	MaxPausesPerDay             int       `json:"max_pauses_per_day"`
	MinSpendZar                 float64   `json:"min_spend_zar"`
	MaxSpendZar                 *float64  `json:"max_spend_zar,omitempty"`
	RequireApprovalFor          []string  `json:"require_approval_for"`
	CreatedAt                   time.Time `json:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at"`
}

// Validate checks the configured limits are usable.
func (g *Guardrails) Validate() error {
	if g.MaxBudgetChangePercentDaily <= 0 || g.MaxBudgetChangePercentDaily > 100 {
		return fmt.Errorf("max_budget_change_percent_daily must be in (0, 100], got %.2f", g.MaxBudgetChangePercentDaily)
	}
	if g.MaxPausesPerDay < 0 {
		return fmt.Errorf("max_pauses_per_day must not be negative, got %d", g.MaxPausesPerDay)
	}
	if g.MinSpendZar < 0 {
		return fmt.Errorf("min_spend_zar must not be negative, got %.2f", g.MinSpendZar)
	}
	if g.MaxSpendZar != nil && *g.MaxSpendZar <= 0 {
		return fmt.Errorf("max_spend_zar must be positive when set")
	}
	return nil
}

// DefaultGuardrails returns the limits a freshly created workspace starts with.
func DefaultGuardrails(workspaceID string) *Guardrails {
	return &Guardrails{
		WorkspaceID:                 workspaceID,
		MaxBudgetChangePercentDaily: 30,
		MaxPausesPerDay:             5,
		MinSpendZar:                 100,
		RequireApprovalFor:          []string{"UPDATE_BUDGET", "PAUSE_ENTITY"},
	}
}
