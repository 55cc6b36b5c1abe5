package textgen

import (
	"fmt"

	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

// RecommendationPayload is the structured document the model must return.
// It is validated before anything touches the database; a payload failing
// Validate is treated as a generation failure, never stored.
type RecommendationPayload struct {
	Summary            string             `json:"summary"`
	ModeRecommendation string             `json:"mode_recommendation"`
	Diagnostics        []DiagnosticPayload `json:"diagnostics"`
	ProposedActions    []ActionPayload     `json:"proposed_actions"`
	CreativeBriefs     []BriefPayload      `json:"creative_briefs"`
}

type DiagnosticPayload struct {
	Metric   string `json:"metric"`
	Finding  string `json:"finding"`
	Evidence string `json:"evidence"`
}

type ActionPayload struct {
	Channel         string              `json:"channel"`
	Type            string              `json:"type"`
	Entity          ActionEntityPayload `json:"entity"`
	Rationale       string              `json:"rationale"`
	ExpectedImpact  string              `json:"expected_impact"`
	BudgetChangePct *float64            `json:"budget_change_pct,omitempty"`
}

type ActionEntityPayload struct {
	Level string `json:"level"`
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
}

type BriefPayload struct {
	EntityID     string `json:"entity_id"`
	EntityName   string `json:"entity_name"`
	Angle        string `json:"angle"`
	Hook         string `json:"hook"`
	CallToAction string `json:"call_to_action"`
}

// Validate enforces the contract the model is prompted with. Enum checks
// are strict: an unknown channel, action type or entity level rejects the
// whole payload.
func (p *RecommendationPayload) Validate() error {
	if p.Summary == "" {
		return fmt.Errorf("summary is required")
	}

	if !domain.ValidStrategicMode(domain.StrategicMode(p.ModeRecommendation)) {
		return fmt.Errorf("invalid mode_recommendation: %q", p.ModeRecommendation)
	}

	for i, d := range p.Diagnostics {
		if d.Metric == "" || d.Finding == "" {
			return fmt.Errorf("diagnostic %d: metric and finding are required", i)
		}
	}

	for i, a := range p.ProposedActions {
		if !domain.ValidChannel(domain.Channel(a.Channel)) {
			return fmt.Errorf("action %d: invalid channel %q", i, a.Channel)
		}

		if !domain.ValidActionType(domain.ActionType(a.Type)) {
			return fmt.Errorf("action %d: invalid type %q", i, a.Type)
		}

		switch domain.EntityLevel(a.Entity.Level) {
		case domain.LevelCampaign, domain.LevelAdset, domain.LevelAd, domain.LevelAdgroup:
		default:
			return fmt.Errorf("action %d: invalid entity level %q", i, a.Entity.Level)
		}

		if a.Entity.ID == "" {
			return fmt.Errorf("action %d: entity id is required", i)
		}

		if a.Rationale == "" {
			return fmt.Errorf("action %d: rationale is required", i)
		}

		if domain.ActionType(a.Type) == domain.ActionTypeUpdateBudget && a.BudgetChangePct == nil {
			return fmt.Errorf("action %d: budget_change_pct is required for UPDATE_BUDGET", i)
		}
	}

	for i, b := range p.CreativeBriefs {
		if b.EntityID == "" {
			return fmt.Errorf("creative brief %d: entity_id is required", i)
		}
		if b.Angle == "" || b.Hook == "" || b.CallToAction == "" {
			return fmt.Errorf("creative brief %d: angle, hook and call_to_action are required", i)
		}
	}

	return nil
}
