package metaclient

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

// UpdateEntityBudget sets the daily budget of a campaign or adset.
// dailyBudget arrives in currency units and is converted to cents, which is
// what the Graph API expects.
func (c *MetaClient) UpdateEntityBudget(ctx context.Context, entityID string, dailyBudget float64) error {
	budgetCents := int64(math.Round(dailyBudget * 100))

	params := url.Values{}
	params.Set("daily_budget", strconv.FormatInt(budgetCents, 10))
	params.Set("access_token", c.Cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, entityID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Failed to call Meta budget update")
		return fmt.Errorf("failed to update meta budget: %w", err)
	}

	if _, err := c.handleResponse(resp); err != nil {
		return err
	}

	log.ForContext(ctx).WithField("entity_id", entityID).
		WithField("daily_budget_cents", budgetCents).
		Info("Meta entity budget updated")

	return nil
}
