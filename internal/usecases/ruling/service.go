package ruling

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

const defaultHoldReason = "Performance within acceptable range. No action needed."

// Ruler evaluates the rule set against analyzed entities.
type Ruler interface {
	ApplyRules(ctx context.Context, workspaceID string, entities []*domain.EntityPerformance) ([]*domain.RuleResult, error)
}

type service struct {
	profileRepository    repository.BusinessProfileRepository
	guardrailsRepository repository.GuardrailsRepository
	thresholds           domain.RuleThresholds
}

func NewService(
	profileRepository repository.BusinessProfileRepository,
	guardrailsRepository repository.GuardrailsRepository,
	thresholds domain.RuleThresholds,
) Ruler {
	return &service{
		profileRepository:    profileRepository,
		guardrailsRepository: guardrailsRepository,
		thresholds:           thresholds,
	}
}

// ApplyRules runs the fixed-order rule set per entity. The order is a total
// order and first match wins: the underperformance check deliberately takes
// priority over the dead-spend check, so an entity with bad ROAS, zero
// purchases and spend above minSpend lands on REDUCE, never on rule 2's
// PAUSE. Reordering changes verdicts.
func (s *service) ApplyRules(ctx context.Context, workspaceID string, entities []*domain.EntityPerformance) ([]*domain.RuleResult, error) {
	profile, err := s.profileRepository.GetByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load business profile")
	}
	if profile == nil {
		return nil, ErrProfileNotConfigured
	}

	guardrails, err := s.guardrailsRepository.GetByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guardrails")
	}
	if guardrails == nil {
		return nil, ErrGuardrailsNotConfigured
	}

	results := make([]*domain.RuleResult, 0, len(entities))
	for _, entity := range entities {
		result := s.evaluate(entity, profile, guardrails)
		results = append(results, result)
	}

	log.ForContext(ctx).
		WithField("workspace_id", workspaceID).
		WithField("entities", len(entities)).
		Debug("Rules applied")

	return results, nil
}

func (s *service) evaluate(entity *domain.EntityPerformance, profile *domain.BusinessProfile, guardrails *domain.Guardrails) *domain.RuleResult {
	// Rule 1: underperformance.
	if entity.ROAS < profile.BreakEvenRoas || entity.CPA > profile.TargetCpaZar {
		if entity.Spend < guardrails.MinSpendZar && entity.Purchases == 0 {
			return &domain.RuleResult{
				Action: domain.ActionPause,
				Entity: entity,
				Reason: fmt.Sprintf(
					"ROAS %.2f below break-even %.2f with zero purchases and spend R%.2f under the R%.2f minimum.",
					entity.ROAS, profile.BreakEvenRoas, entity.Spend, guardrails.MinSpendZar,
				),
			}
		}

		change := s.clampBudgetChange(s.thresholds.ReduceBudgetChange, guardrails)
		return &domain.RuleResult{
			Action: domain.ActionReduce,
			Entity: entity,
			Reason: fmt.Sprintf(
				"Underperforming: ROAS %.2f vs break-even %.2f, CPA R%.2f vs target R%.2f.",
				entity.ROAS, profile.BreakEvenRoas, entity.CPA, profile.TargetCpaZar,
			),
			SuggestedBudgetChange: &change,
		}
	}

	// Rule 2: dead spend. Only reachable when ROAS and CPA look fine.
	if entity.Spend >= guardrails.MinSpendZar && entity.Purchases == 0 {
		return &domain.RuleResult{
			Action: domain.ActionPause,
			Entity: entity,
			Reason: fmt.Sprintf(
				"Spend R%.2f above the R%.2f minimum with zero purchases recorded.",
				entity.Spend, guardrails.MinSpendZar,
			),
		}
	}

	// Rule 3: creative fatigue. The "Creative refresh" wording is matched
	// downstream to pick brief candidates.
	if entity.Frequency != nil && *entity.Frequency > s.thresholds.FatigueFrequency && entity.CTR < s.thresholds.FatigueCTR {
		return &domain.RuleResult{
			Action: domain.ActionHold,
			Entity: entity,
			Reason: fmt.Sprintf(
				"Creative refresh needed: frequency %.1f above %.1f with CTR %.2f%% below %.2f%%.",
				*entity.Frequency, s.thresholds.FatigueFrequency, entity.CTR, s.thresholds.FatigueCTR,
			),
		}
	}

	// Rule 4: winner.
	if entity.ROAS > profile.BreakEvenRoas*s.thresholds.ScaleRoasFactor &&
		entity.CPA < profile.TargetCpaZar*s.thresholds.ScaleCpaFactor {
		change := s.clampBudgetChange(s.thresholds.ScaleBudgetChange, guardrails)
		return &domain.RuleResult{
			Action: domain.ActionScale,
			Entity: entity,
			Reason: fmt.Sprintf(
				"Winner: ROAS %.2f above %.2f and CPA R%.2f below R%.2f.",
				entity.ROAS, profile.BreakEvenRoas*s.thresholds.ScaleRoasFactor,
				entity.CPA, profile.TargetCpaZar*s.thresholds.ScaleCpaFactor,
			),
			SuggestedBudgetChange: &change,
		}
	}

	return &domain.RuleResult{
		Action: domain.ActionHold,
		Entity: entity,
		Reason: defaultHoldReason,
	}
}

// clampBudgetChange caps a suggested change to the workspace's daily limit
// in both directions.
func (s *service) clampBudgetChange(change float64, guardrails *domain.Guardrails) float64 {
	limit := guardrails.MaxBudgetChangePercentDaily
	if limit <= 0 {
		return change
	}
	if change > limit {
		return limit
	}
	if change < -limit {
		return -limit
	}
	return change
}
