package domain

import "time"

// Channel identifies the advertising platform an entity belongs to.
type Channel string

const (
	ChannelMeta    Channel = "META"
	ChannelGoogle  Channel = "GOOGLE"
	ChannelShopify Channel = "SHOPIFY"
	ChannelOps     Channel = "OPS"
)

// ValidChannel reports whether c is one of the known channels.
func ValidChannel(c Channel) bool {
	switch c {
	case ChannelMeta, ChannelGoogle, ChannelShopify, ChannelOps:
		return true
	}
	return false
}

// EntityLevel identifies the granularity of an advertising entity.
type EntityLevel string

const (
	LevelCampaign EntityLevel = "campaign"
	LevelAdset    EntityLevel = "adset"
	LevelAd       EntityLevel = "ad"
	LevelAdgroup  EntityLevel = "adgroup"
)

// MicrosPerUnit is the Google Ads cost denomination (1e6 micros = 1 currency unit).
const MicrosPerUnit = 1_000_000.0

// EntityPerformance holds the aggregated metrics of one advertising entity
// over a trailing window. ROAS and CPA are always non-negative; divisions
// by zero are guarded to 0, never NaN or Inf.
type EntityPerformance struct {
	EntityID    string      `json:"entity_id"`
	EntityName  string      `json:"entity_name"`
	Level       EntityLevel `json:"level"`
	Channel     Channel     `json:"channel"`
	Spend       float64     `json:"spend"`
	Revenue     float64     `json:"revenue"`
	ROAS        float64     `json:"roas"`
	CPA         float64     `json:"cpa"`
	Purchases   int         `json:"purchases"`
	Impressions int         `json:"impressions"`
	Clicks      int         `json:"clicks"`
	CTR         float64     `json:"ctr"`
	Frequency   *float64    `json:"frequency,omitempty"`
}

// PerformanceRow is one stored per-entity, per-day row of the performance
// store. GOOGLE rows keep spend and revenue in micros as delivered by the
// Ads API; all other channels store currency units.
type PerformanceRow struct {
	WorkspaceID string      `json:"workspace_id"`
	Channel     Channel     `json:"channel"`
	Level       EntityLevel `json:"level"`
	EntityID    string      `json:"entity_id"`
	EntityName  string      `json:"entity_name"`
	Date        time.Time   `json:"date"`
	Spend       float64     `json:"spend"`
	Revenue     float64     `json:"revenue"`
	Purchases   int         `json:"purchases"`
	Impressions int         `json:"impressions"`
	Clicks      int         `json:"clicks"`
	CTR         float64     `json:"ctr"`
	Frequency   *float64    `json:"frequency,omitempty"`
}

// EntityAggregate is the raw grouped result of the trailing-window query,
// before currency normalization and derived-metric calculation.
type EntityAggregate struct {
	Channel      Channel
	Level        EntityLevel
	EntityID     string
	EntityName   string
	Spend        float64
	Revenue      float64
	Purchases    int
	Impressions  int
	Clicks       int
	AvgCTR       float64
	AvgFrequency *float64
}

// AdEntity is the current stored state of one external advertising entity,
// used for before/after capture around mutations.
type AdEntity struct {
	WorkspaceID string      `json:"workspace_id"`
	Channel     Channel     `json:"channel"`
	Level       EntityLevel `json:"level"`
	EntityID    string      `json:"entity_id"`
	Name        string      `json:"name"`
	DailyBudget float64     `json:"daily_budget"`
	Status      string      `json:"status"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Entity statuses as mirrored from the ad platforms.
const (
	EntityStatusActive = "ACTIVE"
	EntityStatusPaused = "PAUSED"
)
