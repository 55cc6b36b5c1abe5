package analyzing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
	"github.com/vfg2006/ad-pilot-api/pkg/utils"
)

// DefaultWindowDays is the trailing window applied when the caller does not
// pick one.
const DefaultWindowDays = 7

// Analyzer aggregates per-entity performance over a trailing window.
type Analyzer interface {
	AnalyzeEntityPerformance(ctx context.Context, workspaceID string, days int) ([]*domain.EntityPerformance, error)
}

type service struct {
	performanceRepository repository.PerformanceRepository
}

func NewService(performanceRepository repository.PerformanceRepository) Analyzer {
	return &service{
		performanceRepository: performanceRepository,
	}
}

// AnalyzeEntityPerformance returns every entity with nonzero spend in the
// window, with spend normalized to currency units and ROAS/CPA/CTR derived.
// An empty result is not an error; it just means there is nothing to analyze.
func (s *service) AnalyzeEntityPerformance(ctx context.Context, workspaceID string, days int) ([]*domain.EntityPerformance, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}

	endDate := utils.StartOfDay(time.Now())
	startDate := endDate.AddDate(0, 0, -days)

	aggregates, err := s.performanceRepository.AggregateByEntity(ctx, workspaceID, startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate entity performance")
	}

	entities := make([]*domain.EntityPerformance, 0, len(aggregates))
	for _, agg := range aggregates {
		spend := agg.Spend
		revenue := agg.Revenue

		// Google stores monetary values in micros.
		if agg.Channel == domain.ChannelGoogle {
			spend = spend / domain.MicrosPerUnit
			revenue = revenue / domain.MicrosPerUnit
		}

		// Zero-spend entities never reach the rule engine. The aggregate
		// query already filters them, this guards rounding artifacts.
		if spend <= 0 {
			continue
		}

		entities = append(entities, &domain.EntityPerformance{
			EntityID:    agg.EntityID,
			EntityName:  agg.EntityName,
			Level:       agg.Level,
			Channel:     agg.Channel,
			Spend:       utils.RoundWithTwoDecimalPlace(spend),
			Revenue:     utils.RoundWithTwoDecimalPlace(revenue),
			ROAS:        utils.RoundWithTwoDecimalPlace(utils.SafeDivide(revenue, spend)),
			CPA:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(spend, float64(agg.Purchases))),
			Purchases:   agg.Purchases,
			Impressions: agg.Impressions,
			Clicks:      agg.Clicks,
			CTR:         utils.RoundWithTwoDecimalPlace(agg.AvgCTR),
			Frequency:   agg.AvgFrequency,
		})
	}

	log.ForContext(ctx).
		WithField("workspace_id", workspaceID).
		WithField("window_days", days).
		WithField("entities", len(entities)).
		Debug("Entity performance analyzed")

	return entities, nil
}
