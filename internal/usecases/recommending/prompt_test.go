package recommending

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

func TestBuildPromptClassifiesResults(t *testing.T) {
	change := 15.0
	cap := 50000.0

	profile := &domain.BusinessProfile{
		WorkspaceID:        "WS001",
		TargetCpaZar:       200,
		BreakEvenRoas:      2.0,
		StrategicMode:      domain.ModeGrowth,
		MonthlySpendCapZar: &cap,
	}

	results := []*domain.RuleResult{
		{
			Action:                domain.ActionScale,
			Entity:                &domain.EntityPerformance{EntityID: "W1", EntityName: "Winner", Channel: domain.ChannelMeta, Level: domain.LevelCampaign, Spend: 500, Revenue: 2000, ROAS: 4, CPA: 50, Purchases: 10},
			Reason:                "Winner: ROAS 4.00 above 2.40 and CPA R50.00 below R160.00.",
			SuggestedBudgetChange: &change,
		},
		{
			Action: domain.ActionPause,
			Entity: &domain.EntityPerformance{EntityID: "L1", EntityName: "Loser", Channel: domain.ChannelGoogle, Level: domain.LevelCampaign, Spend: 200},
			Reason: "Spend R200.00 above the R100.00 minimum with zero purchases recorded.",
		},
		{
			Action: domain.ActionHold,
			Entity: &domain.EntityPerformance{EntityID: "F1", EntityName: "Fatigued", Channel: domain.ChannelMeta, Level: domain.LevelAdset, Spend: 300},
			Reason: "Creative refresh needed: frequency 4.5 above 3.0 with CTR 0.50% below 1.00%.",
		},
		{
			Action: domain.ActionHold,
			Entity: &domain.EntityPerformance{EntityID: "H1", EntityName: "Steady", Channel: domain.ChannelMeta, Level: domain.LevelCampaign, Spend: 400},
			Reason: "Performance within acceptable range. No action needed.",
		},
	}

	prompt := buildPrompt(profile, results)

	assert.Contains(t, prompt, "target CPA R200.00")
	assert.Contains(t, prompt, "Monthly spend cap: R50000.00")

	winnersIdx := strings.Index(prompt, "WINNERS")
	losersIdx := strings.Index(prompt, "LOSERS")
	refreshIdx := strings.Index(prompt, "CREATIVE REFRESH CANDIDATES")

	w1 := strings.Index(prompt, "Winner (W1)")
	l1 := strings.Index(prompt, "Loser (L1)")
	f1 := strings.Index(prompt, "Fatigued (F1)")

	assert.True(t, winnersIdx < w1 && w1 < losersIdx, "winner entity belongs to the WINNERS section")
	assert.True(t, losersIdx < l1 && l1 < refreshIdx, "paused entity belongs to the LOSERS section")
	assert.True(t, refreshIdx < f1, "fatigued entity belongs to the refresh section")

	// A plain HOLD is omitted entirely; there is nothing to do for it.
	assert.NotContains(t, prompt, "Steady (H1)")

	assert.Contains(t, prompt, "suggested budget change +15%")
}

func TestBuildPromptEmptySections(t *testing.T) {
	profile := &domain.BusinessProfile{
		TargetCpaZar:  200,
		BreakEvenRoas: 2.0,
		StrategicMode: domain.ModeHold,
	}

	prompt := buildPrompt(profile, nil)

	assert.Contains(t, prompt, "WINNERS")
	assert.Contains(t, prompt, "none")
	assert.NotContains(t, prompt, "Monthly spend cap")
}
