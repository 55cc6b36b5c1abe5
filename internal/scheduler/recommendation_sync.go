package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/internal/config"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/recommending"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/ruling"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

// RecommendationSyncConfig holds the scheduling knobs for the nightly
// recommendation generation job.
type RecommendationSyncConfig struct {
	CronSchedule        string
	WindowDays          int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// RecommendationSyncService generates a recommendation for every
// sync-enabled workspace on a cron schedule.
type RecommendationSyncService struct {
	scheduler           *gocron.Scheduler
	config              RecommendationSyncConfig
	workspaceRepository repository.WorkspaceRepository
	recommender         recommending.Recommender
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRecommendationSyncService(
	workspaceRepository repository.WorkspaceRepository,
	recommender recommending.Recommender,
	appConfig *config.Config,
) *RecommendationSyncService {
	syncConfig := RecommendationSyncConfig{
		CronSchedule:        appConfig.RecommendationSync.CronSchedule,
		WindowDays:          appConfig.RecommendationSync.WindowDays,
		RequestDelaySeconds: appConfig.RecommendationSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.RecommendationSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"window_days":           syncConfig.WindowDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Recommendation sync scheduler configured")

	return &RecommendationSyncService{
		scheduler:           gocron.NewScheduler(time.Local),
		config:              syncConfig,
		workspaceRepository: workspaceRepository,
		recommender:         recommender,
	}
}

// Start schedules the job and stops the scheduler when ctx is cancelled.
func (s *RecommendationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Recommendation sync disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Starting recommendation sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllWorkspaces(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule recommendation sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Stopping recommendation sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunManually triggers one sync cycle outside the schedule.
func (s *RecommendationSyncService) RunManually(ctx context.Context) {
	s.syncAllWorkspaces(ctx)
}

func (s *RecommendationSyncService) syncAllWorkspaces(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Recommendation sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	workspaces, err := s.workspaceRepository.ListSyncEnabled(ctx)
	if err != nil {
		log.L.WithError(err).Error("Failed to list sync-enabled workspaces")
		return
	}

	log.L.WithField("workspaces", len(workspaces)).Info("Recommendation sync started")

	generated, skipped, failed := 0, 0, 0
	for i, workspace := range workspaces {
		if i > 0 && s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		recommendationID, err := s.recommender.GenerateRecommendation(ctx, workspace.ID)
		switch {
		case err == nil:
			generated++
			log.L.WithField("workspace_id", workspace.ID).
				WithField("recommendation_id", recommendationID).
				Info("Scheduled recommendation generated")
		case errors.Is(err, recommending.ErrNoEntityData),
			errors.Is(err, ruling.ErrProfileNotConfigured),
			errors.Is(err, ruling.ErrGuardrailsNotConfigured):
			// Workspace is not ready yet; expected, not an incident.
			skipped++
			log.L.WithError(err).WithField("workspace_id", workspace.ID).
				Debug("Workspace skipped during recommendation sync")
		default:
			failed++
			log.L.WithError(err).WithField("workspace_id", workspace.ID).
				Error("Scheduled recommendation generation failed")
		}
	}

	log.L.WithFields(log.Fields{
		"generated":   generated,
		"skipped":     skipped,
		"failed":      failed,
		"duration_ms": time.Since(s.lastSyncStartedAt).Milliseconds(),
	}).Info("Recommendation sync finished")
}

// Status reports whether a sync is running and the last start/finish times.
func (s *RecommendationSyncService) Status() (running bool, startedAt, completedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt
}
