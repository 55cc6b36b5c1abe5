package googleclient

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

type adGroupMutate struct {
	Operations []adGroupOperation `json:"operations"`
}

type adGroupOperation struct {
	UpdateMask string        `json:"updateMask"`
	Update     adGroupUpdate `json:"update"`
}

type adGroupUpdate struct {
	ResourceName string `json:"resourceName"`
	Status       string `json:"status"`
}

// UpdateAdGroupStatus flips an ad group between ENABLED and PAUSED. Ad
// groups carry no budget of their own, so status is the only mutation
// supported at this level.
func (c *GoogleClient) UpdateAdGroupStatus(ctx context.Context, adGroupID string, status string) error {
	googleStatus := "PAUSED"
	if status == domain.EntityStatusActive {
		googleStatus = "ENABLED"
	}

	payload := adGroupMutate{
		Operations: []adGroupOperation{
			{
				UpdateMask: "status",
				Update: adGroupUpdate{
					ResourceName: fmt.Sprintf("customers/%s/adGroups/%s", c.Cfg.GoogleAds.CustomerID, adGroupID),
					Status:       googleStatus,
				},
			},
		},
	}

	body, err := jsoniter.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode status mutation: %w", err)
	}

	if _, err := c.doMutate(ctx, "adGroups:mutate", body); err != nil {
		log.ForContext(ctx).WithError(err).Error("Failed to update Google Ads ad group status")
		return err
	}

	log.ForContext(ctx).WithField("ad_group_id", adGroupID).
		WithField("status", googleStatus).
		Info("Google Ads ad group status updated")

	return nil
}
