package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-pilot-api/internal/config"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	recommendingmocks "github.com/vfg2006/ad-pilot-api/internal/usecases/recommending/mocks"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/ruling"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func testSyncConfig() *config.Config {
	return &config.Config{
		RecommendationSync: config.RecommendationSync{
			CronSchedule:        "0 6 * * *",
			WindowDays:          7,
			RequestDelaySeconds: 0,
			Enabled:             true,
		},
	}
}

func TestRunManually(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workspaceRepo := mocks.NewMockWorkspaceRepository(ctrl)
	recommender := recommendingmocks.NewMockRecommender(ctrl)

	workspaceRepo.EXPECT().ListSyncEnabled(gomock.Any()).Return([]*domain.Workspace{
		{ID: "WS001", Name: "Healthy", SyncEnabled: true},
		{ID: "WS002", Name: "Unconfigured", SyncEnabled: true},
		{ID: "WS003", Name: "Broken", SyncEnabled: true},
	}, nil)

	recommender.EXPECT().GenerateRecommendation(gomock.Any(), "WS001").Return("REC001", nil)
	recommender.EXPECT().GenerateRecommendation(gomock.Any(), "WS002").Return("", ruling.ErrProfileNotConfigured)
	recommender.EXPECT().GenerateRecommendation(gomock.Any(), "WS003").Return("", errors.New("upstream timeout"))

	service := NewRecommendationSyncService(workspaceRepo, recommender, testSyncConfig())
	service.RunManually(context.Background())

	running, startedAt, completedAt := service.Status()
	assert.False(t, running)
	assert.False(t, startedAt.IsZero())
	assert.False(t, completedAt.IsZero())
	assert.False(t, completedAt.Before(startedAt))
}

func TestRunManuallyListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workspaceRepo := mocks.NewMockWorkspaceRepository(ctrl)
	recommender := recommendingmocks.NewMockRecommender(ctrl)

	workspaceRepo.EXPECT().ListSyncEnabled(gomock.Any()).Return(nil, errors.New("connection refused"))

	service := NewRecommendationSyncService(workspaceRepo, recommender, testSyncConfig())
	service.RunManually(context.Background())

	running, _, _ := service.Status()
	assert.False(t, running)
}

func TestStartDisabledDoesNotSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workspaceRepo := mocks.NewMockWorkspaceRepository(ctrl)
	recommender := recommendingmocks.NewMockRecommender(ctrl)

	cfg := testSyncConfig()
	cfg.RecommendationSync.Enabled = false

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := NewRecommendationSyncService(workspaceRepo, recommender, cfg)
	assert.NoError(t, service.Start(ctx))
}
