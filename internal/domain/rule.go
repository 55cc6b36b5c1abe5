package domain

// RuleAction is the discrete verdict the rule engine produces per entity.
type RuleAction string

const (
	ActionScale  RuleAction = "SCALE"
	ActionReduce RuleAction = "REDUCE"
	ActionPause  RuleAction = "PAUSE"
	ActionHold   RuleAction = "HOLD"
)

// RuleResult pairs one analyzed entity with the action the engine picked
// for it. Produced fresh on each analysis run and summarized into the
// recommendation's data snapshot; never persisted directly.
type RuleResult struct {
	Action RuleAction         `json:"action"`
	Entity *EntityPerformance `json:"entity"`
	Reason string             `json:"reason"`
	// SuggestedBudgetChange is a signed percentage applied multiplicatively
	// to the current budget (newBudget = current * (1 + change/100)).
	// Set for SCALE and REDUCE only.
	SuggestedBudgetChange *float64 `json:"suggested_budget_change,omitempty"`
}

// RuleThresholds are the tunable constants of the rule engine, injected per
// call so workspaces can be tuned and tests can use synthetic values.
type RuleThresholds struct {
	// ReduceBudgetChange is the signed percentage cut applied on REDUCE.
	ReduceBudgetChange float64
	// ScaleBudgetChange is the signed percentage raise applied on SCALE.
	ScaleBudgetChange float64
	// ScaleRoasFactor widens the break-even ROAS into the winner band.
	ScaleRoasFactor float64
	// ScaleCpaFactor narrows the target CPA into the winner band.
	ScaleCpaFactor float64
	// FatigueFrequency is the frequency above which creative fatigue is assumed.
	FatigueFrequency float64
	// FatigueCTR is the CTR (percent) below which creative fatigue is assumed.
	FatigueCTR float64
}

// DefaultRuleThresholds returns the production thresholds.
func DefaultRuleThresholds() RuleThresholds {
	return RuleThresholds{
		ReduceBudgetChange: -30,
		ScaleBudgetChange:  15,
		ScaleRoasFactor:    1.2,
		ScaleCpaFactor:     0.8,
		FatigueFrequency:   3,
		FatigueCTR:         1.0,
	}
}
