package googleclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vfg2006/ad-pilot-api/internal/config"
)

// Client mutates campaigns through the Google Ads REST API. Monetary
// amounts cross the wire in micros.
type Client interface {
	UpdateCampaignBudget(ctx context.Context, campaignID string, dailyBudget float64) error
	UpdateCampaignStatus(ctx context.Context, campaignID string, status string) error
	UpdateAdGroupStatus(ctx context.Context, adGroupID string, status string) error
}

type GoogleClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GoogleClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *GoogleClient) doMutate(ctx context.Context, path string, payload []byte) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/%s", c.Cfg.GoogleAds.URL, c.Cfg.GoogleAds.CustomerID, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.GoogleAds.AccessToken)
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call google ads api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("google ads api returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
