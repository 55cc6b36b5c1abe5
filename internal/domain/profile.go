package domain

import (
	"fmt"
	"time"
)

// StrategicMode steers how aggressively the rule engine output should be read.
type StrategicMode string

const (
	ModeGrowth      StrategicMode = "GROWTH"
	ModeEfficiency  StrategicMode = "EFFICIENCY"
	ModeRecovery    StrategicMode = "RECOVERY"
	ModeLiquidation StrategicMode = "LIQUIDATION"
	ModeHold        StrategicMode = "HOLD"
)

// ValidStrategicMode reports whether s is one of the known modes.
func ValidStrategicMode(s StrategicMode) bool {
	switch s {
	case ModeGrowth, ModeEfficiency, ModeRecovery, ModeLiquidation, ModeHold:
		return true
	}
	return false
}

// BusinessProfile carries the per-workspace economics every rule threshold
// derives from. One row per workspace, created with defaults at workspace
// creation and mutated only through a validated update.
type BusinessProfile struct {
	WorkspaceID        string        `json:"workspace_id"`
	TargetCpaZar       float64       `json:"target_cpa_zar"`
	BreakEvenRoas      float64       `json:"break_even_roas"`
	GrossMarginPct     float64       `json:"gross_margin_pct"`
	AvgShippingCostZar float64       `json:"avg_shipping_cost_zar"`
	ReturnRatePct      float64       `json:"return_rate_pct"`
	PaymentFeesPct     float64       `json:"payment_fees_pct"`
	MonthlySpendCapZar *float64      `json:"monthly_spend_cap_zar,omitempty"`
	StrategicMode      StrategicMode `json:"strategic_mode"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// Validate checks the ranges the UI cannot be trusted to enforce.
func (p *BusinessProfile) Validate() error {
	if p.TargetCpaZar <= 0 {
		return fmt.Errorf("target_cpa_zar must be positive, got %.2f", p.TargetCpaZar)
	}
	if p.BreakEvenRoas <= 0 {
		return fmt.Errorf("break_even_roas must be positive, got %.2f", p.BreakEvenRoas)
	}
	for _, pct := range []struct {
		name  string
		value float64
	}{
		{"gross_margin_pct", p.GrossMarginPct},
		{"return_rate_pct", p.ReturnRatePct},
		{"payment_fees_pct", p.PaymentFeesPct},
	} {
		if pct.value < 0 || pct.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %.2f", pct.name, pct.value)
		}
	}
	if p.MonthlySpendCapZar != nil && *p.MonthlySpendCapZar <= 0 {
		return fmt.Errorf("monthly_spend_cap_zar must be positive when set")
	}
	if !ValidStrategicMode(p.StrategicMode) {
		return fmt.Errorf("invalid strategic mode %q", p.StrategicMode)
	}
	return nil
}

// DefaultBusinessProfile returns the profile a freshly created workspace starts with.
func DefaultBusinessProfile(workspaceID string) *BusinessProfile {
	return &BusinessProfile{
		WorkspaceID:    workspaceID,
		TargetCpaZar:   200,
		BreakEvenRoas:  2.0,
		GrossMarginPct: 0.5,
		ReturnRatePct:  0.05,
		PaymentFeesPct: 0.03,
		StrategicMode:  ModeGrowth,
	}
}
