package executing

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	googlemocks "github.com/vfg2006/ad-pilot-api/infrastructure/integrator/googleads/googleclient/mocks"
	metamocks "github.com/vfg2006/ad-pilot-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
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
	recs        *mocks.MockRecommendationRepository
	runs        *mocks.MockExecutionRepository
	performance *mocks.MockPerformanceRepository
	guardrails  *mocks.MockGuardrailsRepository
	profiles    *mocks.MockBusinessProfileRepository
	audit       *mocks.MockAuditLogRepository
	tasks       *mocks.MockTaskRepository
	meta        *metamocks.MockClient
	google      *googlemocks.MockClient
}

func newTestService(ctrl *gomock.Controller) (Executor, *serviceMocks) {
	m := &serviceMocks{
		recs:        mocks.NewMockRecommendationRepository(ctrl),
		runs:        mocks.NewMockExecutionRepository(ctrl),
		performance: mocks.NewMockPerformanceRepository(ctrl),
		guardrails:  mocks.NewMockGuardrailsRepository(ctrl),
		profiles:    mocks.NewMockBusinessProfileRepository(ctrl),
		audit:       mocks.NewMockAuditLogRepository(ctrl),
		tasks:       mocks.NewMockTaskRepository(ctrl),
		meta:        metamocks.NewMockClient(ctrl),
		google:      googlemocks.NewMockClient(ctrl),
	}
	service := NewService(m.recs, m.runs, m.performance, m.guardrails, m.profiles, m.audit, m.tasks, m.meta, m.google, testMetrics)
	return service, m
}

func approvedRecommendation() *domain.Recommendation {
	return &domain.Recommendation{
		ID:          "REC001",
		WorkspaceID: "WS001",
		Status:      domain.RecommendationApproved,
	}
}

func budgetAction(id, entityID string, changePct float64) *domain.ProposedAction {
	return &domain.ProposedAction{
		ID:               id,
		RecommendationID: "REC001",
		Channel:          domain.ChannelMeta,
		Type:             domain.ActionTypeUpdateBudget,
		Entity:           domain.ActionEntity{Level: domain.LevelCampaign, ID: entityID, Name: "Campaign " + entityID},
		Rationale:        "strong ROAS",
		BudgetChangePct:  floatPtr(changePct),
		Status:           domain.ProposedActionApproved,
	}
}

func pauseAction(id, entityID string) *domain.ProposedAction {
	return &domain.ProposedAction{
		ID:               id,
		RecommendationID: "REC001",
		Channel:          domain.ChannelMeta,
		Type:             domain.ActionTypePauseEntity,
		Entity:           domain.ActionEntity{Level: domain.LevelCampaign, ID: entityID, Name: "Campaign " + entityID},
		Rationale:        "dead spend",
		Status:           domain.ProposedActionApproved,
	}
}

func executionGuardrails() *domain.Guardrails {
	return &domain.Guardrails{
		WorkspaceID:                 "WS001",
		MaxBudgetChangePercentDaily: 50,
		MaxPausesPerDay:             5,
		MinSpendZar:                 100,
	}
}

func executionProfile() *domain.BusinessProfile {
	return &domain.BusinessProfile{
		WorkspaceID:   "WS001",
		TargetCpaZar:  200,
		BreakEvenRoas: 2.0,
	}
}

func storedEntity(entityID string, budget float64) *domain.AdEntity {
	return &domain.AdEntity{
		WorkspaceID: "WS001",
		Channel:     domain.ChannelMeta,
		Level:       domain.LevelCampaign,
		EntityID:    entityID,
		DailyBudget: budget,
		Status:      domain.EntityStatusActive,
	}
}

func TestRunExecutionCompleted(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	actions := []*domain.ProposedAction{
		budgetAction("A1", "E1", 15),
		pauseAction("A2", "E2"),
	}

	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC001").Return(approvedRecommendation(), nil)
	m.recs.EXPECT().GetActionsByIDs(gomock.Any(), "REC001", []string{"A1", "A2"}).Return(actions, nil)
	m.guardrails.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(executionGuardrails(), nil)
	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(executionProfile(), nil)
	m.runs.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)

	// Budget update: R100 * 1.15 = R115.
	m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelMeta, "E1").Return(storedEntity("E1", 100), nil)
	m.meta.EXPECT().UpdateEntityBudget(gomock.Any(), "E1", 115.0).Return(nil)

	// Pause: quota is checked, then the platform call.
	m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelMeta, "E2").Return(storedEntity("E2", 80), nil)
	m.runs.EXPECT().CountPausesSince(gomock.Any(), "WS001", gomock.Any()).Return(0, nil)
	m.meta.EXPECT().UpdateEntityStatus(gomock.Any(), "E2", domain.EntityStatusPaused).Return(nil)

	m.performance.EXPECT().UpsertEntityState(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.runs.EXPECT().CreateAction(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.recs.EXPECT().UpdateActionStatus(gomock.Any(), "A1", domain.ProposedActionExecuted, "").Return(nil)
	m.recs.EXPECT().UpdateActionStatus(gomock.Any(), "A2", domain.ProposedActionExecuted, "").Return(nil)
	m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	m.runs.EXPECT().FinishRun(gomock.Any(), gomock.Any(), domain.ExecutionRunCompleted, gomock.Any()).Return(nil)
	m.recs.EXPECT().CountNonTerminalActions(gomock.Any(), "REC001").Return(0, nil)
	m.recs.EXPECT().UpdateStatus(gomock.Any(), "REC001", domain.RecommendationExecuted, gomock.Any()).Return(nil)

	summary, err := service.RunExecution(context.Background(), "WS001", "REC001", []string{"A1", "A2"}, "USR001")
	require.NoError(t, err)

	assert.Equal(t, domain.ExecutionRunCompleted, summary.Status)
	require.Len(t, summary.Results, 2)
	assert.Equal(t, domain.ExecutionActionExecuted, summary.Results[0].Status)
	assert.Equal(t, domain.ExecutionActionExecuted, summary.Results[1].Status)
}

func TestRunExecutionPartialFailure(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	actions := []*domain.ProposedAction{
		budgetAction("A1", "E1", 15),
		budgetAction("A2", "E2", 10),
	}

	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC001").Return(approvedRecommendation(), nil)
	m.recs.EXPECT().GetActionsByIDs(gomock.Any(), "REC001", gomock.Any()).Return(actions, nil)
	m.guardrails.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(executionGuardrails(), nil)
	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(executionProfile(), nil)
	m.runs.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)

	m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelMeta, "E1").Return(storedEntity("E1", 100), nil)
	m.meta.EXPECT().UpdateEntityBudget(gomock.Any(), "E1", 115.0).Return(nil)
	m.performance.EXPECT().UpsertEntityState(gomock.Any(), gomock.Any()).Return(nil)

	m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelMeta, "E2").Return(storedEntity("E2", 200), nil)
	m.meta.EXPECT().UpdateEntityBudget(gomock.Any(), "E2", 220.0).Return(errors.New("rate limited"))

	m.runs.EXPECT().CreateAction(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.recs.EXPECT().UpdateActionStatus(gomock.Any(), "A1", domain.ProposedActionExecuted, "").Return(nil)
	m.recs.EXPECT().UpdateActionStatus(gomock.Any(), "A2", domain.ProposedActionFailed, "").Return(nil)
	m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	m.runs.EXPECT().FinishRun(gomock.Any(), gomock.Any(), domain.ExecutionRunPartial, gomock.Any()).Return(nil)
	m.recs.EXPECT().CountNonTerminalActions(gomock.Any(), "REC001").Return(1, nil)

	summary, err := service.RunExecution(context.Background(), "WS001", "REC001", []string{"A1", "A2"}, "USR001")
	require.NoError(t, err)

	assert.Equal(t, domain.ExecutionRunPartial, summary.Status)
	require.Len(t, summary.Results, 2)
	assert.Equal(t, domain.ExecutionActionExecuted, summary.Results[0].Status)
	assert.Equal(t, domain.ExecutionActionFailed, summary.Results[1].Status)
	assert.Contains(t, summary.Results[1].Error, "rate limited")
}

func TestRunExecutionGuardrailBlocksBudgetChange(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	actions := []*domain.ProposedAction{budgetAction("A1", "E1", 60)}

	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC001").Return(approvedRecommendation(), nil)
	m.recs.EXPECT().GetActionsByIDs(gomock.Any(), "REC001", gomock.Any()).Return(actions, nil)
	m.guardrails.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(executionGuardrails(), nil)
	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(executionProfile(), nil)
	m.runs.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)

	m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelMeta, "E1").Return(storedEntity("E1", 100), nil)

	m.runs.EXPECT().CreateAction(gomock.Any(), gomock.Any()).Return(nil)

	var notes string
	m.recs.EXPECT().
		UpdateActionStatus(gomock.Any(), "A1", domain.ProposedActionFailed, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ domain.ProposedActionStatus, guardrailNotes string) error {
			notes = guardrailNotes
			return nil
		})

	m.runs.EXPECT().FinishRun(gomock.Any(), gomock.Any(), domain.ExecutionRunFailed, gomock.Any()).Return(nil)
	m.recs.EXPECT().CountNonTerminalActions(gomock.Any(), "REC001").Return(0, nil)
	m.recs.EXPECT().UpdateStatus(gomock.Any(), "REC001", domain.RecommendationExecuted, gomock.Any()).Return(nil)

	summary, err := service.RunExecution(context.Background(), "WS001", "REC001", []string{"A1"}, "USR001")
	require.NoError(t, err)

	// Blocked, not errored: the run itself finishes and records the block.
	assert.Equal(t, domain.ExecutionRunFailed, summary.Status)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, domain.ExecutionActionFailed, summary.Results[0].Status)
	assert.Contains(t, notes, "max_budget_change_percent_daily")
}

func TestRunExecutionPauseQuotaExhausted(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	actions := []*domain.ProposedAction{pauseAction("A1", "E1")}

	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC001").Return(approvedRecommendation(), nil)
	m.recs.EXPECT().GetActionsByIDs(gomock.Any(), "REC001", gomock.Any()).Return(actions, nil)
	m.guardrails.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(executionGuardrails(), nil)
	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(executionProfile(), nil)
	m.runs.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)

	m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelMeta, "E1").Return(storedEntity("E1", 80), nil)
	m.runs.EXPECT().CountPausesSince(gomock.Any(), "WS001", gomock.Any()).Return(5, nil)

	m.runs.EXPECT().CreateAction(gomock.Any(), gomock.Any()).Return(nil)
	m.recs.EXPECT().
		UpdateActionStatus(gomock.Any(), "A1", domain.ProposedActionFailed, gomock.Any()).
		Return(nil)

	m.runs.EXPECT().FinishRun(gomock.Any(), gomock.Any(), domain.ExecutionRunFailed, gomock.Any()).Return(nil)
	m.recs.EXPECT().CountNonTerminalActions(gomock.Any(), "REC001").Return(2, nil)

	summary, err := service.RunExecution(context.Background(), "WS001", "REC001", []string{"A1"}, "USR001")
	require.NoError(t, err)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, domain.ExecutionActionFailed, summary.Results[0].Status)
	assert.Contains(t, summary.Results[0].Error, "max_pauses_per_day")
}

// expectSingleActionRun installs the plumbing every one-action run shares.
// Outcome-specific calls (platform mutations, upserts, audit entries) belong
// to the individual test.
func expectSingleActionRun(m *serviceMocks, action *domain.ProposedAction) {
	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC001").Return(approvedRecommendation(), nil)
	m.recs.EXPECT().GetActionsByIDs(gomock.Any(), "REC001", gomock.Any()).Return([]*domain.ProposedAction{action}, nil)
	m.guardrails.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(executionGuardrails(), nil)
	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(executionProfile(), nil)
	m.runs.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)
	m.runs.EXPECT().CreateAction(gomock.Any(), gomock.Any()).Return(nil)
	m.recs.EXPECT().UpdateActionStatus(gomock.Any(), action.ID, gomock.Any(), gomock.Any()).Return(nil)
	m.runs.EXPECT().FinishRun(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.recs.EXPECT().CountNonTerminalActions(gomock.Any(), "REC001").Return(1, nil)
}

func TestRunExecutionDispatchesByEntityLevel(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		action     *domain.ProposedAction
		setup      func(m *serviceMocks)
		wantStatus domain.ExecutionActionStatus
		wantErr    string
	}{
		{
			name: "google ad group pause uses the ad group mutate",
			action: &domain.ProposedAction{
				ID:               "A1",
				RecommendationID: "REC001",
				Channel:          domain.ChannelGoogle,
				Type:             domain.ActionTypePauseEntity,
				Entity:           domain.ActionEntity{Level: domain.LevelAdgroup, ID: "AG1"},
				Status:           domain.ProposedActionApproved,
			},
			setup: func(m *serviceMocks) {
				m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelGoogle, "AG1").Return(nil, nil)
				m.runs.EXPECT().CountPausesSince(gomock.Any(), "WS001", gomock.Any()).Return(0, nil)
				m.google.EXPECT().UpdateAdGroupStatus(gomock.Any(), "AG1", domain.EntityStatusPaused).Return(nil)
				m.performance.EXPECT().UpsertEntityState(gomock.Any(), gomock.Any()).Return(nil)
				m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: domain.ExecutionActionExecuted,
		},
		{
			name: "google ad group budget update is rejected",
			action: &domain.ProposedAction{
				ID:               "A1",
				RecommendationID: "REC001",
				Channel:          domain.ChannelGoogle,
				Type:             domain.ActionTypeUpdateBudget,
				Entity:           domain.ActionEntity{Level: domain.LevelAdgroup, ID: "AG1"},
				BudgetChangePct:  floatPtr(15),
				Status:           domain.ProposedActionApproved,
			},
			setup: func(m *serviceMocks) {
				m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelGoogle, "AG1").Return(&domain.AdEntity{
					WorkspaceID: "WS001",
					Channel:     domain.ChannelGoogle,
					Level:       domain.LevelAdgroup,
					EntityID:    "AG1",
					DailyBudget: 100,
					Status:      domain.EntityStatusActive,
				}, nil)
			},
			wantStatus: domain.ExecutionActionFailed,
			wantErr:    "budgets live on campaigns",
		},
		{
			name: "meta adset budget update uses the entity endpoint",
			action: &domain.ProposedAction{
				ID:               "A1",
				RecommendationID: "REC001",
				Channel:          domain.ChannelMeta,
				Type:             domain.ActionTypeUpdateBudget,
				Entity:           domain.ActionEntity{Level: domain.LevelAdset, ID: "AS1"},
				BudgetChangePct:  floatPtr(15),
				Status:           domain.ProposedActionApproved,
			},
			setup: func(m *serviceMocks) {
				m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelMeta, "AS1").Return(storedEntity("AS1", 100), nil)
				m.meta.EXPECT().UpdateEntityBudget(gomock.Any(), "AS1", 115.0).Return(nil)
				m.performance.EXPECT().UpsertEntityState(gomock.Any(), gomock.Any()).Return(nil)
				m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: domain.ExecutionActionExecuted,
		},
		{
			name: "meta pause at ad group level is rejected",
			action: &domain.ProposedAction{
				ID:               "A1",
				RecommendationID: "REC001",
				Channel:          domain.ChannelMeta,
				Type:             domain.ActionTypePauseEntity,
				Entity:           domain.ActionEntity{Level: domain.LevelAdgroup, ID: "AG1"},
				Status:           domain.ProposedActionApproved,
			},
			setup: func(m *serviceMocks) {
				m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelMeta, "AG1").Return(storedEntity("AG1", 100), nil)
				m.runs.EXPECT().CountPausesSince(gomock.Any(), "WS001", gomock.Any()).Return(0, nil)
			},
			wantStatus: domain.ExecutionActionFailed,
			wantErr:    "has no adgroup",
		},
		{
			name: "unknown entity level is rejected",
			action: &domain.ProposedAction{
				ID:               "A1",
				RecommendationID: "REC001",
				Channel:          domain.ChannelMeta,
				Type:             domain.ActionTypePauseEntity,
				Entity:           domain.ActionEntity{Level: domain.EntityLevel("portfolio"), ID: "P1"},
				Status:           domain.ProposedActionApproved,
			},
			setup: func(m *serviceMocks) {
				m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelMeta, "P1").Return(storedEntity("P1", 100), nil)
				m.runs.EXPECT().CountPausesSince(gomock.Any(), "WS001", gomock.Any()).Return(0, nil)
			},
			wantStatus: domain.ExecutionActionFailed,
			wantErr:    "unknown entity level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl)
			expectSingleActionRun(m, tt.action)
			tt.setup(m)

			summary, err := service.RunExecution(context.Background(), "WS001", "REC001", []string{"A1"}, "USR001")
			require.NoError(t, err)

			require.Len(t, summary.Results, 1)
			assert.Equal(t, tt.wantStatus, summary.Results[0].Status)
			if tt.wantErr != "" {
				assert.Contains(t, summary.Results[0].Error, tt.wantErr)
			}
		})
	}
}

func TestRunExecutionCreatesOpsTask(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	action := &domain.ProposedAction{
		ID:               "A1",
		RecommendationID: "REC001",
		Channel:          domain.ChannelOps,
		Type:             domain.ActionTypeCreateTask,
		Entity:           domain.ActionEntity{Level: domain.LevelCampaign, ID: "C9", Name: "Retention"},
		Rationale:        "Set up a post-purchase email flow",
		Status:           domain.ProposedActionApproved,
	}

	expectSingleActionRun(m, action)
	m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelOps, "C9").Return(nil, nil)

	var task *domain.OpsTask
	m.tasks.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, created *domain.OpsTask) error {
			task = created
			return nil
		})
	m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := service.RunExecution(context.Background(), "WS001", "REC001", []string{"A1"}, "USR001")
	require.NoError(t, err)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, domain.ExecutionActionExecuted, summary.Results[0].Status)

	require.NotNil(t, task)
	assert.Equal(t, "WS001", task.WorkspaceID)
	assert.Equal(t, "A1", task.ProposedActionID)
	assert.Equal(t, domain.ChannelOps, task.Channel)
	assert.Equal(t, domain.OpsTaskOpen, task.Status)
	assert.Equal(t, "CREATE_TASK: Retention", task.Title)
	assert.Equal(t, "Set up a post-purchase email flow", task.Description)
}

func TestRunExecutionFetchesBeforeStateFromPlatform(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	action := budgetAction("A1", "E1", 15)
	expectSingleActionRun(m, action)

	// No local mirror yet; the live Meta point read supplies the base budget.
	m.performance.EXPECT().GetEntityState(gomock.Any(), "WS001", domain.ChannelMeta, "E1").Return(nil, nil)
	m.meta.EXPECT().GetEntity(gomock.Any(), "E1").Return(&domain.EntityState{DailyBudget: 100, Status: domain.EntityStatusActive}, nil)

	m.meta.EXPECT().UpdateEntityBudget(gomock.Any(), "E1", 115.0).Return(nil)
	m.performance.EXPECT().UpsertEntityState(gomock.Any(), gomock.Any()).Return(nil)
	m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := service.RunExecution(context.Background(), "WS001", "REC001", []string{"A1"}, "USR001")
	require.NoError(t, err)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, domain.ExecutionActionExecuted, summary.Results[0].Status)
}

func TestRunExecutionRequiresApprovedRecommendation(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	draft := approvedRecommendation()
	draft.Status = domain.RecommendationDraft

	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC001").Return(draft, nil)

	_, err := service.RunExecution(context.Background(), "WS001", "REC001", []string{"A1"}, "USR001")
	assert.ErrorIs(t, err, ErrRecommendationNotApproved)
}

func TestRunExecutionIdempotentOnTerminalActions(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	executed := budgetAction("A1", "E1", 15)
	executed.Status = domain.ProposedActionExecuted

	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC001").Return(approvedRecommendation(), nil)
	m.recs.EXPECT().GetActionsByIDs(gomock.Any(), "REC001", gomock.Any()).Return([]*domain.ProposedAction{executed}, nil)

	// No run is created and nothing is re-executed.
	summary, err := service.RunExecution(context.Background(), "WS001", "REC001", []string{"A1"}, "USR001")
	require.NoError(t, err)

	assert.Equal(t, domain.ExecutionRunCompleted, summary.Status)
	assert.Empty(t, summary.Results)
}

func TestRunExecutionNoApprovedActions(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	pending := budgetAction("A1", "E1", 15)
	pending.Status = domain.ProposedActionPending

	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC001").Return(approvedRecommendation(), nil)
	m.recs.EXPECT().GetActionsByIDs(gomock.Any(), "REC001", gomock.Any()).Return([]*domain.ProposedAction{pending}, nil)

	_, err := service.RunExecution(context.Background(), "WS001", "REC001", []string{"A1"}, "USR001")
	assert.ErrorIs(t, err, ErrNoApprovedActions)
}

func TestRunExecutionRejectsDuplicateEntities(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	actions := []*domain.ProposedAction{
		budgetAction("A1", "E1", 15),
		pauseAction("A2", "E1"),
	}

	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC001").Return(approvedRecommendation(), nil)
	m.recs.EXPECT().GetActionsByIDs(gomock.Any(), "REC001", gomock.Any()).Return(actions, nil)

	_, err := service.RunExecution(context.Background(), "WS001", "REC001", []string{"A1", "A2"}, "USR001")
	assert.ErrorIs(t, err, ErrDuplicateEntity)
}

func TestRunExecutionAlreadyInProgress(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	actions := []*domain.ProposedAction{budgetAction("A1", "E1", 15)}

	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC001").Return(approvedRecommendation(), nil)
	m.recs.EXPECT().GetActionsByIDs(gomock.Any(), "REC001", gomock.Any()).Return(actions, nil)
	m.guardrails.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(executionGuardrails(), nil)
	m.profiles.EXPECT().GetByWorkspaceID(gomock.Any(), "WS001").Return(executionProfile(), nil)
	m.runs.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(repository.ErrRunInProgress)

	_, err := service.RunExecution(context.Background(), "WS001", "REC001", []string{"A1"}, "USR001")
	assert.ErrorIs(t, err, ErrExecutionInProgress)
}

func TestRunExecutionRecommendationNotFound(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.recs.EXPECT().GetByID(gomock.Any(), "WS001", "REC404").Return(nil, nil)

	_, err := service.RunExecution(context.Background(), "WS001", "REC404", []string{"A1"}, "USR001")
	assert.ErrorIs(t, err, ErrRecommendationNotFound)
}

func TestClassifyRun(t *testing.T) {
	assert.Equal(t, domain.ExecutionRunCompleted, classifyRun(3, 3))
	assert.Equal(t, domain.ExecutionRunPartial, classifyRun(1, 3))
	assert.Equal(t, domain.ExecutionRunFailed, classifyRun(0, 3))
}
