package recommending

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-pilot-api/infrastructure/integrator/textgen"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/ruling"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
	"github.com/vfg2006/ad-pilot-api/pkg/metrics"
	"github.com/vfg2006/ad-pilot-api/pkg/utils"
)

// Recommender generates recommendations and drives their lifecycle.
type Recommender interface {
	GenerateRecommendation(ctx context.Context, workspaceID string) (string, error)
	GetRecommendation(ctx context.Context, workspaceID, recommendationID string) (*domain.Recommendation, error)
	ListRecommendations(ctx context.Context, workspaceID string, limit uint64) ([]*domain.Recommendation, error)
	ProposeRecommendation(ctx context.Context, workspaceID, recommendationID string) error
	ApproveRecommendation(ctx context.Context, workspaceID, recommendationID string) error
	RejectRecommendation(ctx context.Context, workspaceID, recommendationID string) error
	ApproveAction(ctx context.Context, workspaceID, recommendationID, actionID string) error
	RejectAction(ctx context.Context, workspaceID, recommendationID, actionID string) error
}

type service struct {
	analyzer                 analyzing.Analyzer
	ruler                    ruling.Ruler
	generator                textgen.Generator
	profileRepository        repository.BusinessProfileRepository
	guardrailsRepository     repository.GuardrailsRepository
	recommendationRepository repository.RecommendationRepository
	metrics                  *metrics.DecisionMetrics
	windowDays               int
}

func NewService(
	analyzer analyzing.Analyzer,
	ruler ruling.Ruler,
	generator textgen.Generator,
	profileRepository repository.BusinessProfileRepository,
	guardrailsRepository repository.GuardrailsRepository,
	recommendationRepository repository.RecommendationRepository,
	decisionMetrics *metrics.DecisionMetrics,
	windowDays int,
) Recommender {
	if windowDays <= 0 {
		windowDays = analyzing.DefaultWindowDays
	}
	return &service{
		analyzer:                 analyzer,
		ruler:                    ruler,
		generator:                generator,
		profileRepository:        profileRepository,
		guardrailsRepository:     guardrailsRepository,
		recommendationRepository: recommendationRepository,
		metrics:                  decisionMetrics,
		windowDays:               windowDays,
	}
}

// GenerateRecommendation runs the full pipeline: aggregate, rule, prompt,
// generate, validate, persist. The result is a DRAFT recommendation; making
// it visible to approvers is a separate explicit transition.
func (s *service) GenerateRecommendation(ctx context.Context, workspaceID string) (string, error) {
	started := time.Now()

	profile, err := s.profileRepository.GetByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load business profile")
	}
	if profile == nil {
		s.metrics.RecommendationsFailedTotal.WithLabelValues(workspaceID, "profile_missing").Inc()
		return "", ruling.ErrProfileNotConfigured
	}

	entities, err := s.analyzer.AnalyzeEntityPerformance(ctx, workspaceID, s.windowDays)
	if err != nil {
		return "", errors.Wrap(err, "failed to analyze entity performance")
	}
	if len(entities) == 0 {
		s.metrics.RecommendationsFailedTotal.WithLabelValues(workspaceID, "no_data").Inc()
		return "", ErrNoEntityData
	}

	results, err := s.ruler.ApplyRules(ctx, workspaceID, entities)
	if err != nil {
		return "", errors.Wrap(err, "failed to apply rules")
	}

	payload, err := s.generateValidated(ctx, workspaceID, profile, results)
	if err != nil {
		return "", err
	}

	guardrails, err := s.guardrailsRepository.GetByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load guardrails")
	}

	recommendation := s.assemble(workspaceID, payload, entities, results, guardrails)

	if err := s.recommendationRepository.Create(ctx, recommendation); err != nil {
		s.metrics.RecommendationsFailedTotal.WithLabelValues(workspaceID, "persist").Inc()
		return "", errors.Wrap(err, "failed to persist recommendation")
	}

	s.metrics.RecommendationsGeneratedTotal.WithLabelValues(workspaceID).Inc()
	s.metrics.GenerationDuration.WithLabelValues(workspaceID).Observe(time.Since(started).Seconds())

	log.ForContext(ctx).
		WithField("workspace_id", workspaceID).
		WithField("recommendation_id", recommendation.ID).
		WithField("actions", len(recommendation.ProposedActions)).
		Info("Recommendation generated")

	return recommendation.ID, nil
}

// generateValidated calls the collaborator and validates the payload. One
// retry on a schema violation; a second violation is fatal for this attempt
// and nothing is persisted.
func (s *service) generateValidated(ctx context.Context, workspaceID string, profile *domain.BusinessProfile, results []*domain.RuleResult) (*textgen.RecommendationPayload, error) {
	prompt := buildPrompt(profile, results)

	payload, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.metrics.RecommendationsFailedTotal.WithLabelValues(workspaceID, "generation").Inc()
		return nil, errors.Wrap(err, "text generation failed")
	}

	if validationErr := payload.Validate(); validationErr != nil {
		log.ForContext(ctx).WithError(validationErr).Warn("Generated payload failed validation, retrying once")

		payload, err = s.generator.Generate(ctx, prompt)
		if err != nil {
			s.metrics.RecommendationsFailedTotal.WithLabelValues(workspaceID, "generation").Inc()
			return nil, errors.Wrap(err, "text generation retry failed")
		}
		if validationErr = payload.Validate(); validationErr != nil {
			s.metrics.RecommendationsFailedTotal.WithLabelValues(workspaceID, "schema").Inc()
			return nil, errors.Wrap(ErrSchemaViolation, validationErr.Error())
		}
	}

	return payload, nil
}

// requiresApproval reports whether the workspace wants a human decision on
// this action type. Missing guardrails mean everything needs approval.
func requiresApproval(guardrails *domain.Guardrails, actionType domain.ActionType) bool {
	if guardrails == nil {
		return true
	}
	for _, t := range guardrails.RequireApprovalFor {
		if domain.ActionType(t) == actionType {
			return true
		}
	}
	return false
}

// assemble maps a validated payload plus the frozen analysis data into a
// DRAFT recommendation aggregate. Action types outside the workspace's
// require-approval set start out APPROVED; they still only execute once the
// recommendation itself is approved.
func (s *service) assemble(workspaceID string, payload *textgen.RecommendationPayload, entities []*domain.EntityPerformance, results []*domain.RuleResult, guardrails *domain.Guardrails) *domain.Recommendation {
	recommendationID := utils.MustGenerateID()

	snapshot := &domain.DataSnapshot{
		Entities:    make([]domain.SnapshotEntity, 0, len(entities)),
		RuleResults: make([]domain.SnapshotRuleResult, 0, len(results)),
	}
	for _, entity := range entities {
		snapshot.Entities = append(snapshot.Entities, domain.SnapshotEntity{
			EntityID:   entity.EntityID,
			EntityName: entity.EntityName,
			Spend:      entity.Spend,
			Revenue:    entity.Revenue,
			ROAS:       entity.ROAS,
			CPA:        entity.CPA,
		})
	}
	for _, result := range results {
		snapshot.RuleResults = append(snapshot.RuleResults, domain.SnapshotRuleResult{
			Action:   result.Action,
			EntityID: result.Entity.EntityID,
			Reason:   result.Reason,
		})
	}

	recommendation := &domain.Recommendation{
		ID:                 recommendationID,
		WorkspaceID:        workspaceID,
		Status:             domain.RecommendationDraft,
		Summary:            payload.Summary,
		ModeRecommendation: domain.StrategicMode(payload.ModeRecommendation),
		DataSnapshot:       snapshot,
	}

	for _, d := range payload.Diagnostics {
		recommendation.Diagnostics = append(recommendation.Diagnostics, &domain.Diagnostic{
			ID:               utils.MustGenerateID(),
			RecommendationID: recommendationID,
			Metric:           d.Metric,
			Finding:          d.Finding,
			Evidence:         d.Evidence,
		})
	}

	for _, a := range payload.ProposedActions {
		actionType := domain.ActionType(a.Type)
		status := domain.ProposedActionApproved
		if requiresApproval(guardrails, actionType) {
			status = domain.ProposedActionPending
		}

		recommendation.ProposedActions = append(recommendation.ProposedActions, &domain.ProposedAction{
			ID:               utils.MustGenerateID(),
			RecommendationID: recommendationID,
			Channel:          domain.Channel(a.Channel),
			Type:             actionType,
			Entity: domain.ActionEntity{
				Level: domain.EntityLevel(a.Entity.Level),
				ID:    a.Entity.ID,
				Name:  a.Entity.Name,
			},
			Rationale:       a.Rationale,
			ExpectedImpact:  a.ExpectedImpact,
			BudgetChangePct: a.BudgetChangePct,
			Status:          status,
		})
	}

	for _, b := range payload.CreativeBriefs {
		recommendation.CreativeBriefs = append(recommendation.CreativeBriefs, &domain.CreativeBrief{
			ID:               utils.MustGenerateID(),
			RecommendationID: recommendationID,
			EntityID:         b.EntityID,
			EntityName:       b.EntityName,
			Angle:            b.Angle,
			Hook:             b.Hook,
			CallToAction:     b.CallToAction,
		})
	}

	return recommendation
}

func (s *service) GetRecommendation(ctx context.Context, workspaceID, recommendationID string) (*domain.Recommendation, error) {
	recommendation, err := s.recommendationRepository.GetByID(ctx, workspaceID, recommendationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch recommendation")
	}
	if recommendation == nil {
		return nil, ErrRecommendationNotFound
	}
	return recommendation, nil
}

func (s *service) ListRecommendations(ctx context.Context, workspaceID string, limit uint64) ([]*domain.Recommendation, error) {
	return s.recommendationRepository.ListByWorkspace(ctx, workspaceID, limit)
}

// ProposeRecommendation makes a DRAFT recommendation visible to approvers.
func (s *service) ProposeRecommendation(ctx context.Context, workspaceID, recommendationID string) error {
	return s.transition(ctx, workspaceID, recommendationID,
		[]domain.RecommendationStatus{domain.RecommendationDraft},
		domain.RecommendationProposed, nil)
}

// ApproveRecommendation approves a PROPOSED recommendation and every action
// still pending under it.
func (s *service) ApproveRecommendation(ctx context.Context, workspaceID, recommendationID string) error {
	return s.transition(ctx, workspaceID, recommendationID,
		[]domain.RecommendationStatus{domain.RecommendationProposed},
		domain.RecommendationApproved, func(ctx context.Context, recommendation *domain.Recommendation) error {
			return s.settlePendingActions(ctx, recommendation, domain.ProposedActionApproved)
		})
}

// RejectRecommendation rejects a PROPOSED recommendation and every action
// still pending under it.
func (s *service) RejectRecommendation(ctx context.Context, workspaceID, recommendationID string) error {
	return s.transition(ctx, workspaceID, recommendationID,
		[]domain.RecommendationStatus{domain.RecommendationProposed},
		domain.RecommendationRejected, func(ctx context.Context, recommendation *domain.Recommendation) error {
			return s.settlePendingActions(ctx, recommendation, domain.ProposedActionRejected)
		})
}

func (s *service) transition(
	ctx context.Context,
	workspaceID, recommendationID string,
	from []domain.RecommendationStatus,
	to domain.RecommendationStatus,
	after func(context.Context, *domain.Recommendation) error,
) error {
	recommendation, err := s.recommendationRepository.GetByID(ctx, workspaceID, recommendationID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch recommendation")
	}
	if recommendation == nil {
		return ErrRecommendationNotFound
	}

	allowed := false
	for _, status := range from {
		if recommendation.Status == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return errors.Wrapf(ErrInvalidTransition, "cannot move %s to %s", recommendation.Status, to)
	}

	if err := s.recommendationRepository.UpdateStatus(ctx, recommendationID, to, time.Now()); err != nil {
		return errors.Wrap(err, "failed to update recommendation status")
	}

	if after != nil {
		if err := after(ctx, recommendation); err != nil {
			return err
		}
	}

	log.ForContext(ctx).
		WithField("recommendation_id", recommendationID).
		WithField("status", to).
		Info("Recommendation status updated")

	return nil
}

func (s *service) settlePendingActions(ctx context.Context, recommendation *domain.Recommendation, to domain.ProposedActionStatus) error {
	for _, action := range recommendation.ProposedActions {
		if action.Status != domain.ProposedActionPending {
			continue
		}
		if err := s.recommendationRepository.UpdateActionStatus(ctx, action.ID, to, ""); err != nil {
			return errors.Wrapf(err, "failed to update action %s", action.ID)
		}
	}
	return nil
}

// ApproveAction approves a single pending action of a recommendation.
func (s *service) ApproveAction(ctx context.Context, workspaceID, recommendationID, actionID string) error {
	return s.settleAction(ctx, workspaceID, recommendationID, actionID, domain.ProposedActionApproved)
}

// RejectAction rejects a single pending action of a recommendation.
func (s *service) RejectAction(ctx context.Context, workspaceID, recommendationID, actionID string) error {
	return s.settleAction(ctx, workspaceID, recommendationID, actionID, domain.ProposedActionRejected)
}

func (s *service) settleAction(ctx context.Context, workspaceID, recommendationID, actionID string, to domain.ProposedActionStatus) error {
	recommendation, err := s.recommendationRepository.GetByID(ctx, workspaceID, recommendationID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch recommendation")
	}
	if recommendation == nil {
		return ErrRecommendationNotFound
	}

	var action *domain.ProposedAction
	for _, a := range recommendation.ProposedActions {
		if a.ID == actionID {
			action = a
			break
		}
	}
	if action == nil {
		return ErrActionNotFound
	}
	if action.Status != domain.ProposedActionPending {
		return ErrActionNotPending
	}

	if err := s.recommendationRepository.UpdateActionStatus(ctx, actionID, to, ""); err != nil {
		return errors.Wrap(err, "failed to update action status")
	}

	return nil
}
