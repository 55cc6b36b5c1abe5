package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DecisionMetrics holds the counters and histograms of the decision engine.
type DecisionMetrics struct {
	RecommendationsGeneratedTotal *prometheus.CounterVec
	RecommendationsFailedTotal    *prometheus.CounterVec

	ActionsExecutedTotal *prometheus.CounterVec
	ActionsFailedTotal   *prometheus.CounterVec

	GuardrailBlocksTotal *prometheus.CounterVec

	ExecutionRunDuration *prometheus.HistogramVec
	GenerationDuration   *prometheus.HistogramVec
}

// New registers and returns the decision engine metrics.
func New() *DecisionMetrics {
	return &DecisionMetrics{
		RecommendationsGeneratedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "recommendations_generated_total",
			Help: "Recommendations persisted in DRAFT status",
		}, []string{"workspace_id"}),
		RecommendationsFailedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "recommendations_failed_total",
			Help: "Recommendation generation attempts that failed",
		}, []string{"workspace_id", "reason"}),
		ActionsExecutedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "actions_executed_total",
			Help: "Proposed actions executed against external platforms",
		}, []string{"workspace_id", "channel", "type"}),
		ActionsFailedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "actions_failed_total",
			Help: "Proposed actions that failed during execution",
		}, []string{"workspace_id", "channel", "type"}),
		GuardrailBlocksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guardrail_blocks_total",
			Help: "Actions rejected by a workspace guardrail",
		}, []string{"workspace_id", "guardrail"}),
		ExecutionRunDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "execution_run_duration_seconds",
			Help:    "Wall time of one execution batch",
			Buckets: prometheus.DefBuckets,
		}, []string{"workspace_id"}),
		GenerationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "recommendation_generation_duration_seconds",
			Help:    "Wall time of one recommendation generation",
			Buckets: prometheus.DefBuckets,
		}, []string{"workspace_id"}),
	}
}
