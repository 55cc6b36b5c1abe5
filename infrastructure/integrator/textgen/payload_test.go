package textgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func validTestPayload() *RecommendationPayload {
	return &RecommendationPayload{
		Summary:            "Shift budget to the winning campaigns.",
		ModeRecommendation: "GROWTH",
		Diagnostics: []DiagnosticPayload{
			{Metric: "roas", Finding: "Prospecting above break-even", Evidence: "ROAS 4.00 vs 2.00"},
		},
		ProposedActions: []ActionPayload{
			{
				Channel:         "META",
				Type:            "UPDATE_BUDGET",
				Entity:          ActionEntityPayload{Level: "campaign", ID: "C1", Name: "Prospecting"},
				Rationale:       "Strong ROAS supports a raise",
				ExpectedImpact:  "More purchases at similar efficiency",
				BudgetChangePct: floatPtr(15),
			},
			{
				Channel:   "GOOGLE",
				Type:      "PAUSE_ENTITY",
				Entity:    ActionEntityPayload{Level: "campaign", ID: "G1"},
				Rationale: "Dead spend",
			},
		},
		CreativeBriefs: []BriefPayload{
			{
				EntityID:     "A1",
				EntityName:   "Fatigued Adset",
				Angle:        "Social proof",
				Hook:         "10 000 happy customers",
				CallToAction: "Shop now",
			},
		},
	}
}

func TestPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *RecommendationPayload)
		wantErr string
	}{
		{
			name:   "valid payload passes",
			mutate: func(p *RecommendationPayload) {},
		},
		{
			name: "shopify task action passes",
			mutate: func(p *RecommendationPayload) {
				p.ProposedActions = append(p.ProposedActions, ActionPayload{
					Channel:   "SHOPIFY",
					Type:      "CREATE_TASK",
					Entity:    ActionEntityPayload{Level: "campaign", ID: "S1"},
					Rationale: "Review landing page speed",
				})
			},
		},
		{
			name: "ops task action passes",
			mutate: func(p *RecommendationPayload) {
				p.ProposedActions = append(p.ProposedActions, ActionPayload{
					Channel:   "OPS",
					Type:      "CREATE_TASK",
					Entity:    ActionEntityPayload{Level: "campaign", ID: "O1"},
					Rationale: "Brief the designer on a new angle",
				})
			},
		},
		{
			name:    "missing summary",
			mutate:  func(p *RecommendationPayload) { p.Summary = "" },
			wantErr: "summary",
		},
		{
			name:    "unknown strategic mode",
			mutate:  func(p *RecommendationPayload) { p.ModeRecommendation = "AGGRESSIVE" },
			wantErr: "mode",
		},
		{
			name:    "unknown channel",
			mutate:  func(p *RecommendationPayload) { p.ProposedActions[0].Channel = "TIKTOK" },
			wantErr: "channel",
		},
		{
			name:    "unknown action type",
			mutate:  func(p *RecommendationPayload) { p.ProposedActions[0].Type = "DELETE_EVERYTHING" },
			wantErr: "type",
		},
		{
			name:    "unknown entity level",
			mutate:  func(p *RecommendationPayload) { p.ProposedActions[0].Entity.Level = "portfolio" },
			wantErr: "level",
		},
		{
			name:    "missing entity id",
			mutate:  func(p *RecommendationPayload) { p.ProposedActions[0].Entity.ID = "" },
			wantErr: "entity",
		},
		{
			name:    "missing rationale",
			mutate:  func(p *RecommendationPayload) { p.ProposedActions[1].Rationale = "" },
			wantErr: "rationale",
		},
		{
			name:    "budget update without a change percentage",
			mutate:  func(p *RecommendationPayload) { p.ProposedActions[0].BudgetChangePct = nil },
			wantErr: "budget_change_pct",
		},
		{
			name:    "incomplete creative brief",
			mutate:  func(p *RecommendationPayload) { p.CreativeBriefs[0].Hook = "" },
			wantErr: "hook",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validTestPayload()
			tt.mutate(payload)

			err := payload.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
