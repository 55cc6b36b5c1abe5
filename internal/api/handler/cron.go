package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/ad-pilot-api/internal/scheduler"
)

// CronJobServices groups the schedulers exposed for manual triggering.
type CronJobServices struct {
	RecommendationSyncService *scheduler.RecommendationSyncService
}

// TriggerRecommendationSync kicks off one sync cycle outside the schedule.
func TriggerRecommendationSync(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Detached from the request context; the sync outlives the request.
		go services.RecommendationSyncService.RunManually(context.Background())

		respondJSON(w, http.StatusAccepted, map[string]string{
			"status": "recommendation sync triggered",
		})
	}
}

// RecommendationSyncStatus reports whether a sync cycle is running.
func RecommendationSyncStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		running, startedAt, completedAt := services.RecommendationSyncService.Status()

		respondJSON(w, http.StatusOK, map[string]any{
			"running":      running,
			"started_at":   startedAt,
			"completed_at": completedAt,
		})
	}
}
