package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vfg2006/ad-pilot-api/internal/config"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

// Client mutates entities through the Meta Graph API. Budgets cross the
// wire in minor units (cents).
type Client interface {
	UpdateEntityBudget(ctx context.Context, entityID string, dailyBudget float64) error
	UpdateEntityStatus(ctx context.Context, entityID string, status string) error
	GetEntity(ctx context.Context, entityID string) (*domain.EntityState, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("meta api returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
