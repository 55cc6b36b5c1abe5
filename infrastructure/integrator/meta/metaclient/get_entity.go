package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

type entityResponse struct {
	ID          string `json:"id"`
	DailyBudget string `json:"daily_budget"`
	Status      string `json:"status"`
}

// GetEntity reads the live budget and status of an entity. Used to capture
// the before state ahead of a mutation.
func (c *MetaClient) GetEntity(ctx context.Context, entityID string) (*domain.EntityState, error) {
	params := url.Values{}
	params.Set("fields", "id,daily_budget,status")
	params.Set("access_token", c.Cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, entityID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meta entity: %w", err)
	}

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response entityResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode meta entity: %w", err)
	}

	// Graph returns daily_budget as a string in cents.
	var dailyBudget float64
	if response.DailyBudget != "" {
		cents, err := strconv.ParseFloat(response.DailyBudget, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse daily budget %q: %w", response.DailyBudget, err)
		}
		dailyBudget = cents / 100
	}

	return &domain.EntityState{
		DailyBudget: dailyBudget,
		Status:      response.Status,
	}, nil
}
