package googleclient

import (
	"context"
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

type campaignBudgetMutate struct {
	Operations []campaignBudgetOperation `json:"operations"`
}

type campaignBudgetOperation struct {
	UpdateMask string               `json:"updateMask"`
	Update     campaignBudgetUpdate `json:"update"`
}

type campaignBudgetUpdate struct {
	ResourceName string `json:"resourceName"`
	AmountMicros int64  `json:"amountMicros"`
}

// UpdateCampaignBudget sets the daily budget of a campaign. dailyBudget
// arrives in currency units and is converted to micros.
func (c *GoogleClient) UpdateCampaignBudget(ctx context.Context, campaignID string, dailyBudget float64) error {
	amountMicros := int64(math.Round(dailyBudget * domain.MicrosPerUnit))

	payload := campaignBudgetMutate{
		Operations: []campaignBudgetOperation{
			{
				UpdateMask: "amount_micros",
				Update: campaignBudgetUpdate{
					ResourceName: fmt.Sprintf("customers/%s/campaignBudgets/%s", c.Cfg.GoogleAds.CustomerID, campaignID),
					AmountMicros: amountMicros,
				},
			},
		},
	}

	body, err := jsoniter.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode budget mutation: %w", err)
	}

	if _, err := c.doMutate(ctx, "campaignBudgets:mutate", body); err != nil {
		log.ForContext(ctx).WithError(err).Error("Failed to update Google Ads budget")
		return err
	}

	log.ForContext(ctx).WithField("campaign_id", campaignID).
		WithField("amount_micros", amountMicros).
		Info("Google Ads campaign budget updated")

	return nil
}
