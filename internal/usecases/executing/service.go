package executing

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-pilot-api/infrastructure/integrator/googleads/googleclient"
	"github.com/vfg2006/ad-pilot-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
	"github.com/vfg2006/ad-pilot-api/pkg/metrics"
	"github.com/vfg2006/ad-pilot-api/pkg/utils"
)

// Executor runs approved proposed actions against the external platforms.
type Executor interface {
	RunExecution(ctx context.Context, workspaceID, recommendationID string, actionIDs []string, userID string) (*domain.ExecutionSummary, error)
	ListRuns(ctx context.Context, workspaceID, recommendationID string) ([]*domain.ExecutionRun, error)
}

type service struct {
	recommendationRepository repository.RecommendationRepository
	executionRepository      repository.ExecutionRepository
	performanceRepository    repository.PerformanceRepository
	guardrailsRepository     repository.GuardrailsRepository
	profileRepository        repository.BusinessProfileRepository
	auditLogRepository       repository.AuditLogRepository
	taskRepository           repository.TaskRepository
	metaClient               metaclient.Client
	googleClient             googleclient.Client
	metrics                  *metrics.DecisionMetrics
}

func NewService(
	recommendationRepository repository.RecommendationRepository,
	executionRepository repository.ExecutionRepository,
	performanceRepository repository.PerformanceRepository,
	guardrailsRepository repository.GuardrailsRepository,
	profileRepository repository.BusinessProfileRepository,
	auditLogRepository repository.AuditLogRepository,
	taskRepository repository.TaskRepository,
	metaClient metaclient.Client,
	googleClient googleclient.Client,
	decisionMetrics *metrics.DecisionMetrics,
) Executor {
	return &service{
		recommendationRepository: recommendationRepository,
		executionRepository:      executionRepository,
		performanceRepository:    performanceRepository,
		guardrailsRepository:     guardrailsRepository,
		profileRepository:        profileRepository,
		auditLogRepository:       auditLogRepository,
		taskRepository:           taskRepository,
		metaClient:               metaClient,
		googleClient:             googleClient,
		metrics:                  decisionMetrics,
	}
}

// guardrailViolation marks an action blocked by a workspace limit rather
// than an external failure. Recorded in guardrailNotes so the caller can
// tell the two apart.
type guardrailViolation struct {
	guardrail string
	detail    string
}

func (v *guardrailViolation) Error() string {
	return fmt.Sprintf("guardrail exceeded (%s): %s", v.guardrail, v.detail)
}

// RunExecution executes the approved subset of actionIDs under one run.
// Per-action failures never abort the batch; the summary carries one result
// line per processed action.
func (s *service) RunExecution(ctx context.Context, workspaceID, recommendationID string, actionIDs []string, userID string) (*domain.ExecutionSummary, error) {
	recommendation, err := s.recommendationRepository.GetByID(ctx, workspaceID, recommendationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch recommendation")
	}
	if recommendation == nil {
		return nil, ErrRecommendationNotFound
	}

	// Actions may be auto-approved at generation time, so the approval
	// gate sits on the recommendation itself. EXECUTED is allowed for
	// idempotent re-submissions of already settled batches.
	if recommendation.Status != domain.RecommendationApproved && recommendation.Status != domain.RecommendationExecuted {
		return nil, ErrRecommendationNotApproved
	}

	requested, err := s.recommendationRepository.GetActionsByIDs(ctx, recommendationID, actionIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch proposed actions")
	}

	// Only APPROVED actions run. Terminal ones were already settled by an
	// earlier batch, so a stale re-submission degrades to a no-op instead
	// of an error.
	approved := make([]*domain.ProposedAction, 0, len(requested))
	terminalCount := 0
	for _, action := range requested {
		switch {
		case action.Status == domain.ProposedActionApproved:
			approved = append(approved, action)
		case action.Status.Terminal():
			terminalCount++
		}
	}

	if len(approved) == 0 {
		if terminalCount > 0 {
			return &domain.ExecutionSummary{
				Status:  domain.ExecutionRunCompleted,
				Results: []*domain.ActionResult{},
			}, nil
		}
		return nil, ErrNoApprovedActions
	}

	// Two mutations against one entity in a single batch would race on the
	// platform side. Reject upfront rather than serialize.
	seen := make(map[string]bool, len(approved))
	for _, action := range approved {
		key := string(action.Channel) + "/" + action.Entity.ID
		if seen[key] {
			return nil, errors.Wrapf(ErrDuplicateEntity, "entity %s", action.Entity.ID)
		}
		seen[key] = true
	}

	guardrails, err := s.guardrailsRepository.GetByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guardrails")
	}
	profile, err := s.profileRepository.GetByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load business profile")
	}

	run := &domain.ExecutionRun{
		ID:               utils.MustGenerateID(),
		WorkspaceID:      workspaceID,
		RecommendationID: recommendationID,
		Status:           domain.ExecutionRunRunning,
		StartedAt:        time.Now(),
	}
	if err := s.executionRepository.CreateRun(ctx, run); err != nil {
		if errors.Is(err, repository.ErrRunInProgress) {
			return nil, ErrExecutionInProgress
		}
		return nil, errors.Wrap(err, "failed to create execution run")
	}

	started := time.Now()
	results := make([]*domain.ActionResult, 0, len(approved))
	succeeded := 0

	for _, action := range approved {
		result := s.executeAction(ctx, run, action, guardrails, profile, userID)
		if result.Status == domain.ExecutionActionExecuted {
			succeeded++
		}
		results = append(results, result)
	}

	status := classifyRun(succeeded, len(approved))
	if err := s.executionRepository.FinishRun(ctx, run.ID, status, time.Now()); err != nil {
		return nil, errors.Wrap(err, "failed to finish execution run")
	}

	// The recommendation goes EXECUTED once every action under it is
	// terminal, possibly only after several batches. Re-counted globally
	// on each run.
	remaining, err := s.recommendationRepository.CountNonTerminalActions(ctx, recommendationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count remaining actions")
	}
	if remaining == 0 {
		if err := s.recommendationRepository.UpdateStatus(ctx, recommendationID, domain.RecommendationExecuted, time.Now()); err != nil {
			return nil, errors.Wrap(err, "failed to finalize recommendation")
		}
	}

	s.metrics.ExecutionRunDuration.WithLabelValues(workspaceID).Observe(time.Since(started).Seconds())

	log.ForContext(ctx).
		WithField("execution_run_id", run.ID).
		WithField("status", status).
		WithField("succeeded", succeeded).
		WithField("total", len(approved)).
		Info("Execution run finished")

	return &domain.ExecutionSummary{
		ExecutionRunID: run.ID,
		Status:         status,
		Results:        results,
	}, nil
}

func classifyRun(succeeded, total int) domain.ExecutionRunStatus {
	switch {
	case succeeded == total:
		return domain.ExecutionRunCompleted
	case succeeded > 0:
		return domain.ExecutionRunPartial
	default:
		return domain.ExecutionRunFailed
	}
}

// executeAction processes one approved action end to end. Every outcome,
// success or failure, lands as an immutable ExecutionAction record; errors
// never propagate out of here.
func (s *service) executeAction(
	ctx context.Context,
	run *domain.ExecutionRun,
	action *domain.ProposedAction,
	guardrails *domain.Guardrails,
	profile *domain.BusinessProfile,
	userID string,
) *domain.ActionResult {
	before, err := s.resolveBeforeState(ctx, run.WorkspaceID, action)
	if err == nil {
		err = s.checkGuardrails(ctx, run.WorkspaceID, action, before, guardrails, profile)
	}

	var after *domain.EntityState
	if err == nil {
		after, err = s.dispatch(ctx, run.WorkspaceID, action, before)
	}

	executionAction := &domain.ExecutionAction{
		ID:               utils.MustGenerateID(),
		RunID:            run.ID,
		ProposedActionID: action.ID,
		Channel:          action.Channel,
		Type:             action.Type,
		Entity:           action.Entity,
		BeforeState:      before,
		AfterState:       after,
		ExecutedAt:       time.Now(),
	}

	result := &domain.ActionResult{
		ProposedActionID: action.ID,
		EntityID:         action.Entity.ID,
	}

	guardrailNotes := ""
	if err != nil {
		executionAction.Status = domain.ExecutionActionFailed
		executionAction.Error = err.Error()
		result.Status = domain.ExecutionActionFailed
		result.Error = err.Error()

		var violation *guardrailViolation
		if errors.As(err, &violation) {
			guardrailNotes = violation.Error()
			s.metrics.GuardrailBlocksTotal.WithLabelValues(run.WorkspaceID, violation.guardrail).Inc()
		} else {
			s.metrics.ActionsFailedTotal.WithLabelValues(run.WorkspaceID, string(action.Channel), string(action.Type)).Inc()
		}

		log.ForContext(ctx).WithError(err).
			WithField("proposed_action_id", action.ID).
			WithField("entity_id", action.Entity.ID).
			Warn("Action execution failed")
	} else {
		executionAction.Status = domain.ExecutionActionExecuted
		result.Status = domain.ExecutionActionExecuted
		s.metrics.ActionsExecutedTotal.WithLabelValues(run.WorkspaceID, string(action.Channel), string(action.Type)).Inc()
	}

	if persistErr := s.executionRepository.CreateAction(ctx, executionAction); persistErr != nil {
		log.ForContext(ctx).WithError(persistErr).
			WithField("proposed_action_id", action.ID).
			Error("Failed to persist execution action")
	}

	newStatus := domain.ProposedActionExecuted
	if err != nil {
		newStatus = domain.ProposedActionFailed
	}
	if updateErr := s.recommendationRepository.UpdateActionStatus(ctx, action.ID, newStatus, guardrailNotes); updateErr != nil {
		log.ForContext(ctx).WithError(updateErr).
			WithField("proposed_action_id", action.ID).
			Error("Failed to update proposed action status")
	}

	if err == nil {
		s.writeAuditEntry(ctx, run.WorkspaceID, userID, action, before, after, executionAction.ID)
	}

	return result
}

// resolveBeforeState reads the stored budget/status of the targeted entity.
// When no local mirror exists yet, Meta entities fall back to a live point
// read so budget updates still have a base to compute from. A missing state
// is not fatal; the mutation proceeds with no before state.
func (s *service) resolveBeforeState(ctx context.Context, workspaceID string, action *domain.ProposedAction) (*domain.EntityState, error) {
	entity, err := s.performanceRepository.GetEntityState(ctx, workspaceID, action.Channel, action.Entity.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve entity state")
	}
	if entity != nil {
		return &domain.EntityState{
			DailyBudget: entity.DailyBudget,
			Status:      entity.Status,
		}, nil
	}

	if action.Channel == domain.ChannelMeta {
		state, err := s.metaClient.GetEntity(ctx, action.Entity.ID)
		if err != nil {
			log.ForContext(ctx).WithError(err).
				WithField("entity_id", action.Entity.ID).
				Warn("Failed to read entity state from the platform")
			return nil, nil
		}
		return state, nil
	}

	return nil, nil
}

// checkGuardrails validates the action against workspace limits before any
// external call. A violation is a distinct recoverable error, not an API
// failure.
func (s *service) checkGuardrails(
	ctx context.Context,
	workspaceID string,
	action *domain.ProposedAction,
	before *domain.EntityState,
	guardrails *domain.Guardrails,
	profile *domain.BusinessProfile,
) error {
	if guardrails == nil {
		return nil
	}

	switch action.Type {
	case domain.ActionTypeUpdateBudget:
		if action.BudgetChangePct == nil {
			return fmt.Errorf("budget change percentage is missing")
		}
		change := *action.BudgetChangePct

		if guardrails.MaxBudgetChangePercentDaily > 0 &&
			(change > guardrails.MaxBudgetChangePercentDaily || change < -guardrails.MaxBudgetChangePercentDaily) {
			return &guardrailViolation{
				guardrail: "max_budget_change_percent_daily",
				detail: fmt.Sprintf("change %+.1f%% exceeds the %.1f%% daily limit",
					change, guardrails.MaxBudgetChangePercentDaily),
			}
		}

		if before != nil {
			newBudget := before.DailyBudget * (1 + change/100)
			if guardrails.MaxSpendZar != nil && newBudget > *guardrails.MaxSpendZar {
				return &guardrailViolation{
					guardrail: "max_spend_zar",
					detail: fmt.Sprintf("new daily budget R%.2f exceeds the R%.2f cap",
						newBudget, *guardrails.MaxSpendZar),
				}
			}
		}

		if profile != nil && profile.MonthlySpendCapZar != nil {
			monthSpend, err := s.performanceRepository.SumWorkspaceSpend(ctx, workspaceID, utils.StartOfMonth(time.Now()))
			if err != nil {
				return errors.Wrap(err, "failed to sum monthly spend")
			}
			if monthSpend >= *profile.MonthlySpendCapZar {
				return &guardrailViolation{
					guardrail: "monthly_spend_cap_zar",
					detail: fmt.Sprintf("month-to-date spend R%.2f already at the R%.2f cap",
						monthSpend, *profile.MonthlySpendCapZar),
				}
			}
		}

	case domain.ActionTypePauseEntity:
		if guardrails.MaxPausesPerDay > 0 {
			pausesToday, err := s.executionRepository.CountPausesSince(ctx, workspaceID, utils.StartOfDay(time.Now()))
			if err != nil {
				return errors.Wrap(err, "failed to count today's pauses")
			}
			if pausesToday >= guardrails.MaxPausesPerDay {
				return &guardrailViolation{
					guardrail: "max_pauses_per_day",
					detail: fmt.Sprintf("%d entities already paused today, limit is %d",
						pausesToday, guardrails.MaxPausesPerDay),
				}
			}
		}
	}

	return nil
}

// dispatch performs the channel-specific mutation and returns the resulting
// entity state. SHOPIFY and OPS actions become local task records with no
// external call.
func (s *service) dispatch(ctx context.Context, workspaceID string, action *domain.ProposedAction, before *domain.EntityState) (*domain.EntityState, error) {
	switch action.Type {
	case domain.ActionTypeUpdateBudget:
		return s.dispatchBudgetUpdate(ctx, workspaceID, action, before)
	case domain.ActionTypePauseEntity:
		return s.dispatchPause(ctx, workspaceID, action, before)
	case domain.ActionTypeCreateTask, domain.ActionTypeDuplicateAdset:
		return s.dispatchTask(ctx, workspaceID, action, before)
	default:
		return nil, fmt.Errorf("unsupported action type %q", action.Type)
	}
}

// dispatchBudgetUpdate routes a budget change by channel and entity level.
// Each platform only carries budgets at specific levels; anything else fails
// the action before an external call is made.
func (s *service) dispatchBudgetUpdate(ctx context.Context, workspaceID string, action *domain.ProposedAction, before *domain.EntityState) (*domain.EntityState, error) {
	if before == nil {
		return nil, fmt.Errorf("no stored budget for entity %s, cannot compute new budget", action.Entity.ID)
	}

	newBudget := utils.RoundWithTwoDecimalPlace(before.DailyBudget * (1 + *action.BudgetChangePct/100))

	switch action.Channel {
	case domain.ChannelMeta:
		switch action.Entity.Level {
		case domain.LevelCampaign, domain.LevelAdset:
			if err := s.metaClient.UpdateEntityBudget(ctx, action.Entity.ID, newBudget); err != nil {
				return nil, err
			}
		case domain.LevelAd, domain.LevelAdgroup:
			return nil, fmt.Errorf("META %s entities do not carry a budget", action.Entity.Level)
		default:
			return nil, fmt.Errorf("unknown entity level %q", action.Entity.Level)
		}
	case domain.ChannelGoogle:
		switch action.Entity.Level {
		case domain.LevelCampaign:
			if err := s.googleClient.UpdateCampaignBudget(ctx, action.Entity.ID, newBudget); err != nil {
				return nil, err
			}
		case domain.LevelAdgroup, domain.LevelAdset, domain.LevelAd:
			return nil, fmt.Errorf("GOOGLE budgets live on campaigns, not %s entities", action.Entity.Level)
		default:
			return nil, fmt.Errorf("unknown entity level %q", action.Entity.Level)
		}
	default:
		return nil, fmt.Errorf("channel %q does not support budget updates", action.Channel)
	}

	after := &domain.EntityState{DailyBudget: newBudget, Status: before.Status}
	s.persistEntityState(ctx, workspaceID, action, after)
	return after, nil
}

// dispatchPause routes a pause by channel and entity level. Meta uses one
// status endpoint for campaigns, adsets and ads; Google splits campaigns
// and ad groups into separate mutates.
func (s *service) dispatchPause(ctx context.Context, workspaceID string, action *domain.ProposedAction, before *domain.EntityState) (*domain.EntityState, error) {
	switch action.Channel {
	case domain.ChannelMeta:
		switch action.Entity.Level {
		case domain.LevelCampaign, domain.LevelAdset, domain.LevelAd:
			if err := s.metaClient.UpdateEntityStatus(ctx, action.Entity.ID, domain.EntityStatusPaused); err != nil {
				return nil, err
			}
		case domain.LevelAdgroup:
			return nil, fmt.Errorf("META has no %s entities", action.Entity.Level)
		default:
			return nil, fmt.Errorf("unknown entity level %q", action.Entity.Level)
		}
	case domain.ChannelGoogle:
		switch action.Entity.Level {
		case domain.LevelCampaign:
			if err := s.googleClient.UpdateCampaignStatus(ctx, action.Entity.ID, domain.EntityStatusPaused); err != nil {
				return nil, err
			}
		case domain.LevelAdgroup:
			if err := s.googleClient.UpdateAdGroupStatus(ctx, action.Entity.ID, domain.EntityStatusPaused); err != nil {
				return nil, err
			}
		case domain.LevelAdset, domain.LevelAd:
			return nil, fmt.Errorf("GOOGLE has no %s entities", action.Entity.Level)
		default:
			return nil, fmt.Errorf("unknown entity level %q", action.Entity.Level)
		}
	default:
		return nil, fmt.Errorf("channel %q does not support pausing", action.Channel)
	}

	after := &domain.EntityState{Status: domain.EntityStatusPaused}
	if before != nil {
		after.DailyBudget = before.DailyBudget
	}
	s.persistEntityState(ctx, workspaceID, action, after)
	return after, nil
}

// dispatchTask queues a manual task for an operator instead of mutating a
// platform. The entity state is untouched.
func (s *service) dispatchTask(ctx context.Context, workspaceID string, action *domain.ProposedAction, before *domain.EntityState) (*domain.EntityState, error) {
	title := fmt.Sprintf("%s: %s", action.Type, action.Entity.Name)
	if action.Entity.Name == "" {
		title = fmt.Sprintf("%s: %s", action.Type, action.Entity.ID)
	}

	err := s.taskRepository.Create(ctx, &domain.OpsTask{
		ID:               utils.MustGenerateID(),
		WorkspaceID:      workspaceID,
		ProposedActionID: action.ID,
		Channel:          action.Channel,
		Title:            title,
		Description:      action.Rationale,
		Status:           domain.OpsTaskOpen,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ops task")
	}

	return before, nil
}

// persistEntityState mirrors the platform mutation into the local entity
// table so the next before-state read sees it. Failures are logged, not
// fatal: the platform is the source of truth.
func (s *service) persistEntityState(ctx context.Context, workspaceID string, action *domain.ProposedAction, state *domain.EntityState) {
	err := s.performanceRepository.UpsertEntityState(ctx, &domain.AdEntity{
		WorkspaceID: workspaceID,
		Channel:     action.Channel,
		Level:       action.Entity.Level,
		EntityID:    action.Entity.ID,
		Name:        action.Entity.Name,
		DailyBudget: state.DailyBudget,
		Status:      state.Status,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).
			WithField("entity_id", action.Entity.ID).
			Error("Failed to mirror entity state")
	}
}

func (s *service) writeAuditEntry(
	ctx context.Context,
	workspaceID, userID string,
	action *domain.ProposedAction,
	before, after *domain.EntityState,
	executionActionID string,
) {
	err := s.auditLogRepository.Create(ctx, &domain.AuditLogEntry{
		WorkspaceID:       workspaceID,
		UserID:            userID,
		Action:            string(action.Type),
		Channel:           action.Channel,
		EntityType:        action.Entity.Level,
		EntityID:          action.Entity.ID,
		BeforeState:       before,
		AfterState:        after,
		Reason:            action.Rationale,
		ExecutionActionID: &executionActionID,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).
			WithField("execution_action_id", executionActionID).
			Error("Failed to write audit log entry")
	}
}

func (s *service) ListRuns(ctx context.Context, workspaceID, recommendationID string) ([]*domain.ExecutionRun, error) {
	recommendation, err := s.recommendationRepository.GetByID(ctx, workspaceID, recommendationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch recommendation")
	}
	if recommendation == nil {
		return nil, ErrRecommendationNotFound
	}
	return s.executionRepository.ListRunsByRecommendation(ctx, recommendationID)
}
