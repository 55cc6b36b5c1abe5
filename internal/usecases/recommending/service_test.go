package recommending

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-pilot-api/infrastructure/integrator/textgen"
	textgenmocks "github.com/vfg2006/ad-pilot-api/infrastructure/integrator/textgen/mocks"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	analyzingmocks "github.com/vfg2006/ad-pilot-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/ruling"
	rulingmocks "github.com/vfg2006/ad-pilot-api/internal/usecases/ruling/mocks"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
	"github.com/vfg2006/ad-pilot-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

// promauto registers against the default registry, so the package shares
// one instance across tests.
var testMetrics = metrics.New()

func floatPtr(v float64) *float64 {
	return &v
}

type serviceMocks struct {
	analyzer   *analyzingmocks.MockAnalyzer
	ruler      *rulingmocks.MockRuler
	generator  *textgenmocks.MockGenerator
	profiles   *mocks.MockBusinessProfileRepository
	guardrails *mocks.MockGuardrailsRepository
	recs       *mocks.MockRecommendationRepository
}

func newTestService(ctrl *gomock.Controller) (Recommender, *serviceMocks) {
	m := &serviceMocks{
		analyzer:   analyzingmocks.NewMockAnalyzer(ctrl),
		ruler:      rulingmocks.NewMockRuler(ctrl),
		generator:  textgenmocks.NewMockGenerator(ctrl),
		profiles:   mocks.NewMockBusinessProfileRepository(ctrl),
		guardrails: mocks.NewMockGuardrailsRepository(ctrl),
		recs:       mocks.NewMockRecommendationRepository(ctrl),
	}
	service := NewService(m.analyzer, m.ruler, m.generator, m.profiles, m.guardrails, m.recs, testMetrics, 7)
	return service, m
}

func testGuardrails() *domain.Guardrails {
	return &domain.Guardrails{
		WorkspaceID:                 "WS001",
		MaxBudgetChangePercentDaily: 50,
		MaxPausesPerDay:             5,
		MinSpendZar:                 100,
		RequireApprovalFor:          []string{"UPDATE_BUDGET", "PAUSE_ENTITY"},
	}
}

func testProfile() *domain.BusinessProfile {
	return &domain.BusinessProfile{
		WorkspaceID:   "WS001",
		TargetCpaZar:  200,
		BreakEvenRoas: 2.0,
		StrategicMode: domain.ModeGrowth,
	}
}

func testEntities() []*domain.EntityPerformance {
	return []*domain.EntityPerformance{
		{
			EntityID:   "C1",
			EntityName: "Prospecting",
			Level:      domain.LevelCampaign,
			Channel:    domain.ChannelMeta,
			Spend:      500,
			Revenue:    2000,
			ROAS:       4.0,
			CPA:        50,
			Purchases:  10,
		},
	}
}

func testRuleResults(entities []*domain.EntityPerformance) []*domain.RuleResult {
	change := 15.0
	return []*domain.RuleResult{
		{
			Action:                domain.ActionScale,
			Entity:                entities[0],
			Reason:                "Winner: ROAS 4.00 above 2.40 and CPA R50.00 below R160.00.",
			SuggestedBudgetChange: &change,
		},
	}
}

func validPayload() *textgen.RecommendationPayload {
	return &textgen.RecommendationPayload{
		Summary:            "Scale the winning prospecting campaign.",
		ModeRecommendation: "GROWTH",
		Diagnostics: []textgen.DiagnosticPayload{
			{Metric: "roas", Finding: "Prospecting is well above break-even", Evidence: "ROAS 4.00 vs 2.00"},
		},
		ProposedActions: []textgen.ActionPayload{
			{
				Channel:         "META",
				Type:            string(domain.ActionTypeUpdateBudget),
				Entity:          textgen.ActionEntityPayload{Level: "campaign", ID: "C1", Name: "Prospecting"},
				Rationale:       "ROAS supports a controlled raise",
				ExpectedImpact:  "More purchases at similar efficiency",
				BudgetChangePct: floatPtr(15),
			},
		},
	}
}

func TestGenerateRecommendation(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	entities := testEntities()
	results := testRuleResults(entities)

	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(testProfile(), nil)
	m.analyzer.EXPECT().AnalyzeEntityPerformance(gomock.Any(), "WS001", 7).Return(entities, nil)
	m.ruler.EXPECT().ApplyRules(gomock.Any(), "WS001", entities).Return(results, nil)
	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(validPayload(), nil)
	m.guardrails.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(testGuardrails(), nil)

	var created *domain.Recommendation
	m.recs.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.Recommendation) error {
			created = rec
			return nil
		})

	recommendationID, err := service.GenerateRecommendation(context.Background(), "WS001")
	require.NoError(t, err)
	require.NotEmpty(t, recommendationID)

	require.NotNil(t, created)
	assert.Equal(t, recommendationID, created.ID)
	assert.Equal(t, domain.RecommendationDraft, created.Status)
	assert.Equal(t, domain.ModeGrowth, created.ModeRecommendation)

	// The snapshot freezes the data the decision was made on.
	require.NotNil(t, created.DataSnapshot)
	require.Len(t, created.DataSnapshot.Entities, 1)
	assert.Equal(t, "C1", created.DataSnapshot.Entities[0].EntityID)
	assert.Equal(t, 4.0, created.DataSnapshot.Entities[0].ROAS)
	require.Len(t, created.DataSnapshot.RuleResults, 1)
	assert.Equal(t, domain.ActionScale, created.DataSnapshot.RuleResults[0].Action)

	require.Len(t, created.ProposedActions, 1)
	assert.Equal(t, domain.ProposedActionPending, created.ProposedActions[0].Status)
	assert.Equal(t, domain.ChannelMeta, created.ProposedActions[0].Channel)
	assert.NotEmpty(t, created.ProposedActions[0].ID)
}

func TestGenerateRecommendationAutoApprovesOutsideApprovalSet(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	entities := testEntities()
	results := testRuleResults(entities)

	payload := validPayload()
	payload.ProposedActions = append(payload.ProposedActions, textgen.ActionPayload{
		Channel:   "OPS",
		Type:      string(domain.ActionTypeCreateTask),
		Entity:    textgen.ActionEntityPayload{Level: "campaign", ID: "C9", Name: "Retention"},
		Rationale: "Set up a post-purchase email flow",
	})

	// Only budget changes need a human decision in this workspace.
	guardrails := testGuardrails()
	guardrails.RequireApprovalFor = []string{"UPDATE_BUDGET"}

	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(testProfile(), nil)
	m.analyzer.EXPECT().AnalyzeEntityPerformance(gomock.Any(), "WS001", 7).Return(entities, nil)
	m.ruler.EXPECT().ApplyRules(gomock.Any(), "WS001", entities).Return(results, nil)
	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(payload, nil)
	m.guardrails.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(guardrails, nil)

	var created *domain.Recommendation
	m.recs.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.Recommendation) error {
			created = rec
			return nil
		})

	_, err := service.GenerateRecommendation(context.Background(), "WS001")
	require.NoError(t, err)

	require.NotNil(t, created)
	require.Len(t, created.ProposedActions, 2)
	assert.Equal(t, domain.ProposedActionPending, created.ProposedActions[0].Status)
	assert.Equal(t, domain.ProposedActionApproved, created.ProposedActions[1].Status)
}

func TestGenerateRecommendationMissingProfile(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(nil, nil)

	_, err := service.GenerateRecommendation(context.Background(), "WS001")
	assert.ErrorIs(t, err, ruling.ErrProfileNotConfigured)
}

func TestGenerateRecommendationNoData(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(testProfile(), nil)
	m.analyzer.EXPECT().AnalyzeEntityPerformance(gomock.Any(), "WS001", 7).Return(nil, nil)

	_, err := service.GenerateRecommendation(context.Background(), "WS001")
	assert.ErrorIs(t, err, ErrNoEntityData)
}

func TestGenerateRecommendationRetriesInvalidPayload(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	entities := testEntities()
	results := testRuleResults(entities)

	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(testProfile(), nil)
	m.analyzer.EXPECT().AnalyzeEntityPerformance(gomock.Any(), "WS001", 7).Return(entities, nil)
	m.ruler.EXPECT().ApplyRules(gomock.Any(), "WS001", entities).Return(results, nil)

	invalid := validPayload()
	invalid.Summary = ""

	gomock.InOrder(
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(invalid, nil),
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(validPayload(), nil),
	)

	m.guardrails.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(testGuardrails(), nil)
	m.recs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := service.GenerateRecommendation(context.Background(), "WS001")
	assert.NoError(t, err)
}

func TestGenerateRecommendationSchemaViolation(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	entities := testEntities()
	results := testRuleResults(entities)

	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(testProfile(), nil)
	m.analyzer.EXPECT().AnalyzeEntityPerformance(gomock.Any(), "WS001", 7).Return(entities, nil)
	m.ruler.EXPECT().ApplyRules(gomock.Any(), "WS001", entities).Return(results, nil)

	invalid := validPayload()
	invalid.ModeRecommendation = "AGGRESSIVE"

	// Both attempts fail validation; nothing may be persisted.
	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(invalid, nil).Times(2)

	_, err := service.GenerateRecommendation(context.Background(), "WS001")
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestGenerateRecommendationGeneratorError(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	entities := testEntities()
	results := testRuleResults(entities)

	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(testProfile(), nil)
	m.analyzer.EXPECT().AnalyzeEntityPerformance(gomock.Any(), "WS001", 7).Return(entities, nil)
	m.ruler.EXPECT().ApplyRules(gomock.Any(), "WS001", entities).Return(results, nil)
	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, errors.New("deadline exceeded"))

	_, err := service.GenerateRecommendation(context.Background(), "WS001")
	assert.Error(t, err)
}

func TestRecommendationTransitions(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name        string
		fromStatus  domain.RecommendationStatus
		call        func(service Recommender) error
		expectErr   error
		expectMoved domain.RecommendationStatus
	}{
		{
			name:        "propose a draft",
			fromStatus:  domain.RecommendationDraft,
			expectMoved: domain.RecommendationProposed,
			call: func(service Recommender) error {
				return service.ProposeRecommendation(context.Background(), "WS001", "REC001")
			},
		},
		{
			name:       "propose an already proposed recommendation",
			fromStatus: domain.RecommendationProposed,
			expectErr:  ErrInvalidTransition,
			call: func(service Recommender) error {
				return service.ProposeRecommendation(context.Background(), "WS001", "REC001")
			},
		},
		{
			name:       "approve a draft",
			fromStatus: domain.RecommendationDraft,
			expectErr:  ErrInvalidTransition,
			call: func(service Recommender) error {
				return service.ApproveRecommendation(context.Background(), "WS001", "REC001")
			},
		},
		{
			name:       "reject an executed recommendation",
			fromStatus: domain.RecommendationExecuted,
			expectErr:  ErrInvalidTransition,
			call: func(service Recommender) error {
				return service.RejectRecommendation(context.Background(), "WS001", "REC001")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl)

			m.recs.EXPECT().
				GetByID(gomock.Any(), "WS001", "REC001").
				Return(&domain.Recommendation{
					ID:          "REC001",
					WorkspaceID: "WS001",
					Status:      tt.fromStatus,
				}, nil)

			if tt.expectErr == nil {
				m.recs.EXPECT().
					UpdateStatus(gomock.Any(), "REC001", tt.expectMoved, gomock.Any()).
					Return(nil)
			}

			err := tt.call(service)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApproveRecommendationSettlesPendingActions(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	recommendation := &domain.Recommendation{
		ID:          "REC001",
		WorkspaceID: "WS001",
		Status:      domain.RecommendationProposed,
		ProposedActions: []*domain.ProposedAction{
			{ID: "A1", Status: domain.ProposedActionPending},
			{ID: "A2", Status: domain.ProposedActionRejected},
			{ID: "A3", Status: domain.ProposedActionPending},
		},
	}

	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC001").Return(recommendation, nil)
	m.recs.EXPECT().UpdateStatus(gomock.Any(), "REC001", domain.RecommendationApproved, gomock.Any()).Return(nil)

	// Only the pending actions move; A2 was already decided individually.
	m.recs.EXPECT().UpdateActionStatus(gomock.Any(), "A1", domain.ProposedActionApproved, "").Return(nil)
	m.recs.EXPECT().UpdateActionStatus(gomock.Any(), "A3", domain.ProposedActionApproved, "").Return(nil)

	err := service.ApproveRecommendation(context.Background(), "WS001", "REC001")
	assert.NoError(t, err)
}

func TestSettleSingleAction(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name      string
		actions   []*domain.ProposedAction
		actionID  string
		expectErr error
	}{
		{
			name: "approve a pending action",
			actions: []*domain.ProposedAction{
				{ID: "A1", Status: domain.ProposedActionPending},
			},
			actionID: "A1",
		},
		{
			name: "unknown action",
			actions: []*domain.ProposedAction{
				{ID: "A1", Status: domain.ProposedActionPending},
			},
			actionID:  "A9",
			expectErr: ErrActionNotFound,
		},
		{
			name: "already decided action",
			actions: []*domain.ProposedAction{
				{ID: "A1", Status: domain.ProposedActionApproved},
			},
			actionID:  "A1",
			expectErr: ErrActionNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl)

			m.recs.EXPECT().
				GetByID(gomock.Any(), "WS001", "REC001").
				Return(&domain.Recommendation{
					ID:              "REC001",
					WorkspaceID:     "WS001",
					Status:          domain.RecommendationProposed,
					ProposedActions: tt.actions,
				}, nil)

			if tt.expectErr == nil {
				m.recs.EXPECT().
					UpdateActionStatus(gomock.Any(), tt.actionID, domain.ProposedActionApproved, "").
					Return(nil)
			}

			err := service.ApproveAction(context.Background(), "WS001", "REC001", tt.actionID)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetRecommendationNotFound(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC404").Return(nil, nil)

	_, err := service.GetRecommendation(context.Background(), "WS001", "REC404")
	assert.ErrorIs(t, err, ErrRecommendationNotFound)
}
