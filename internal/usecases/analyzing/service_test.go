package analyzing

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestAnalyzeEntityPerformance(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		aggregates []*domain.EntityAggregate
		validate   func(t *testing.T, entities []*domain.EntityPerformance)
	}{
		{
			name: "derives ROAS and CPA from raw aggregates",
			aggregates: []*domain.EntityAggregate{
				{
					Channel:      domain.ChannelMeta,
					Level:        domain.LevelCampaign,
					EntityID:     "C1",
					EntityName:   "Prospecting",
					Spend:        500,
					Revenue:      1500,
					Purchases:    10,
					Impressions:  20000,
					Clicks:       300,
					AvgCTR:       1.5,
					AvgFrequency: floatPtr(2.1),
				},
			},
			validate: func(t *testing.T, entities []*domain.EntityPerformance) {
				require.Len(t, entities, 1)
				assert.Equal(t, 500.0, entities[0].Spend)
				assert.Equal(t, 3.0, entities[0].ROAS)
				assert.Equal(t, 50.0, entities[0].CPA)
				assert.Equal(t, 1.5, entities[0].CTR)
			},
		},
		{
			name: "converts Google micros to currency units",
			aggregates: []*domain.EntityAggregate{
				{
					Channel:    domain.ChannelGoogle,
					Level:      domain.LevelCampaign,
					EntityID:   "G1",
					EntityName: "Search Brand",
					Spend:      250_000_000,
					Revenue:    750_000_000,
					Purchases:  5,
				},
			},
			validate: func(t *testing.T, entities []*domain.EntityPerformance) {
				require.Len(t, entities, 1)
				assert.Equal(t, 250.0, entities[0].Spend)
				assert.Equal(t, 750.0, entities[0].Revenue)
				assert.Equal(t, 3.0, entities[0].ROAS)
				assert.Equal(t, 50.0, entities[0].CPA)
			},
		},
		{
			name: "zero purchases yields zero CPA, never a division error",
			aggregates: []*domain.EntityAggregate{
				{
					Channel:   domain.ChannelMeta,
					EntityID:  "C2",
					Spend:     120,
					Revenue:   0,
					Purchases: 0,
				},
			},
			validate: func(t *testing.T, entities []*domain.EntityPerformance) {
				require.Len(t, entities, 1)
				assert.Equal(t, 0.0, entities[0].CPA)
				assert.Equal(t, 0.0, entities[0].ROAS)
			},
		},
		{
			name: "zero-spend entities are excluded",
			aggregates: []*domain.EntityAggregate{
				{
					Channel:   domain.ChannelMeta,
					EntityID:  "C3",
					Spend:     0,
					Revenue:   100,
					Purchases: 1,
				},
				{
					Channel:   domain.ChannelMeta,
					EntityID:  "C4",
					Spend:     50,
					Revenue:   100,
					Purchases: 1,
				},
			},
			validate: func(t *testing.T, entities []*domain.EntityPerformance) {
				require.Len(t, entities, 1)
				assert.Equal(t, "C4", entities[0].EntityID)
			},
		},
		{
			name:       "no aggregates produces an empty result, not an error",
			aggregates: []*domain.EntityAggregate{},
			validate: func(t *testing.T, entities []*domain.EntityPerformance) {
				assert.Empty(t, entities)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			performanceRepo := mocks.NewMockPerformanceRepository(ctrl)
			performanceRepo.EXPECT().
				AggregateByEntity(gomock.Any(), "WS001", gomock.Any(), gomock.Any()).
				Return(tt.aggregates, nil)

			service := NewService(performanceRepo)

			entities, err := service.AnalyzeEntityPerformance(context.Background(), "WS001", 7)
			require.NoError(t, err)

			tt.validate(t, entities)
		})
	}
}

func TestAnalyzeEntityPerformanceRepositoryError(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	performanceRepo := mocks.NewMockPerformanceRepository(ctrl)
	performanceRepo.EXPECT().
		AggregateByEntity(gomock.Any(), "WS001", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	service := NewService(performanceRepo)

	_, err := service.AnalyzeEntityPerformance(context.Background(), "WS001", 7)
	assert.Error(t, err)
}

func TestAnalyzeEntityPerformanceDefaultsWindow(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	performanceRepo := mocks.NewMockPerformanceRepository(ctrl)
	performanceRepo.EXPECT().
		AggregateByEntity(gomock.Any(), "WS001", gomock.Any(), gomock.Any()).
		Return([]*domain.EntityAggregate{}, nil)

	service := NewService(performanceRepo)

	// A non-positive window falls back to the default instead of querying
	// an empty range.
	_, err := service.AnalyzeEntityPerformance(context.Background(), "WS001", 0)
	require.NoError(t, err)
}
