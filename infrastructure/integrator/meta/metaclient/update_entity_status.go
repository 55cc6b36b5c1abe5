package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

// UpdateEntityStatus flips a campaign or adset between ACTIVE and PAUSED.
func (c *MetaClient) UpdateEntityStatus(ctx context.Context, entityID string, status string) error {
	params := url.Values{}
	params.Set("status", status)
	params.Set("access_token", c.Cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, entityID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Failed to call Meta status update")
		return fmt.Errorf("failed to update meta status: %w", err)
	}

	if _, err := c.handleResponse(resp); err != nil {
		return err
	}

	log.ForContext(ctx).WithField("entity_id", entityID).
		WithField("status", status).
		Info("Meta entity status updated")

	return nil
}
