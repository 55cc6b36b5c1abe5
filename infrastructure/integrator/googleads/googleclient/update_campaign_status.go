package googleclient

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

type campaignMutate struct {
	Operations []campaignOperation `json:"operations"`
}

type campaignOperation struct {
	UpdateMask string         `json:"updateMask"`
	Update     campaignUpdate `json:"update"`
}

type campaignUpdate struct {
	ResourceName string `json:"resourceName"`
	Status       string `json:"status"`
}

// UpdateCampaignStatus flips a campaign between ENABLED and PAUSED.
func (c *GoogleClient) UpdateCampaignStatus(ctx context.Context, campaignID string, status string) error {
	// Google calls the running state ENABLED where Meta says ACTIVE.
	googleStatus := "PAUSED"
	if status == domain.EntityStatusActive {
		googleStatus = "ENABLED"
	}

	payload := campaignMutate{
		Operations: []campaignOperation{
			{
				UpdateMask: "status",
				Update: campaignUpdate{
					ResourceName: fmt.Sprintf("customers/%s/campaigns/%s", c.Cfg.GoogleAds.CustomerID, campaignID),
					Status:       googleStatus,
				},
			},
		},
	}

	body, err := jsoniter.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode status mutation: %w", err)
	}

	if _, err := c.doMutate(ctx, "campaigns:mutate", body); err != nil {
		log.ForContext(ctx).WithError(err).Error("Failed to update Google Ads status")
		return err
	}

	log.ForContext(ctx).WithField("campaign_id", campaignID).
		WithField("status", googleStatus).
		Info("Google Ads campaign status updated")

	return nil
}
