package recommending

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

const creativeRefreshMarker = "Creative refresh"

// buildPrompt assembles the analysis context the text-generation
// collaborator reasons over: winners, losers and creative-refresh
// candidates, plus the workspace economics.
func buildPrompt(profile *domain.BusinessProfile, results []*domain.RuleResult) string {
	var winners, losers, refreshCandidates []*domain.RuleResult

	for _, result := range results {
		switch result.Action {
		case domain.ActionScale:
			winners = append(winners, result)
		case domain.ActionReduce, domain.ActionPause:
			losers = append(losers, result)
		case domain.ActionHold:
			if strings.Contains(result.Reason, creativeRefreshMarker) {
				refreshCandidates = append(refreshCandidates, result)
			}
		}
	}

	var b strings.Builder

	b.WriteString("You are a performance marketing analyst for an e-commerce business in South Africa (currency ZAR).\n")
	b.WriteString("Produce a recommendation document as JSON matching the response schema. Do not invent entities.\n\n")

	fmt.Fprintf(&b, "Business profile: target CPA R%.2f, break-even ROAS %.2f, strategic mode %s.\n",
		profile.TargetCpaZar, profile.BreakEvenRoas, profile.StrategicMode)
	if profile.MonthlySpendCapZar != nil {
		fmt.Fprintf(&b, "Monthly spend cap: R%.2f.\n", *profile.MonthlySpendCapZar)
	}
	b.WriteString("\n")

	writeSection(&b, "WINNERS (rule engine suggests scaling)", winners)
	writeSection(&b, "LOSERS (rule engine suggests reducing or pausing)", losers)
	writeSection(&b, "CREATIVE REFRESH CANDIDATES (fatigued creatives, propose briefs)", refreshCandidates)

	b.WriteString("Propose concrete actions for the entities above, respecting the rule engine's suggested budget changes.\n")
	b.WriteString("For every creative refresh candidate, include a creative brief with angle, hook and call to action.\n")

	return b.String()
}

func writeSection(b *strings.Builder, title string, results []*domain.RuleResult) {
	fmt.Fprintf(b, "%s:\n", title)
	if len(results) == 0 {
		b.WriteString("  none\n\n")
		return
	}

	for _, result := range results {
		entity := result.Entity
		fmt.Fprintf(b, "  - [%s/%s] %s (%s): spend R%.2f, revenue R%.2f, ROAS %.2f, CPA R%.2f, purchases %d",
			entity.Channel, entity.Level, entity.EntityName, entity.EntityID,
			entity.Spend, entity.Revenue, entity.ROAS, entity.CPA, entity.Purchases)
		if result.SuggestedBudgetChange != nil {
			fmt.Fprintf(b, ", suggested budget change %+.0f%%", *result.SuggestedBudgetChange)
		}
		fmt.Fprintf(b, ". Reason: %s\n", result.Reason)
	}
	b.WriteString("\n")
}
