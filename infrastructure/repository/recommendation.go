package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

const (
	recommendationsTable = "recommendations r"
	proposedActionsTable = "proposed_actions pa"
)

type RecommendationRepository interface {
	Create(ctx context.Context, rec *domain.Recommendation) error
	GetByID(ctx context.Context, workspaceID, id string) (*domain.Recommendation, error)
	ListByWorkspace(ctx context.Context, workspaceID string, limit uint64) ([]*domain.Recommendation, error)
	UpdateStatus(ctx context.Context, id string, status domain.RecommendationStatus, at time.Time) error
	GetActionByID(ctx context.Context, actionID string) (*domain.ProposedAction, error)
	GetActionsByIDs(ctx context.Context, recommendationID string, actionIDs []string) ([]*domain.ProposedAction, error)
	UpdateActionStatus(ctx context.Context, actionID string, status domain.ProposedActionStatus, guardrailNotes string) error
	CountNonTerminalActions(ctx context.Context, recommendationID string) (int, error)
}

type recommendationRepository struct {
	conn *postgres.Connection
}

func NewRecommendationRepository(conn *postgres.Connection) RecommendationRepository {
	return &recommendationRepository{
		conn: conn,
	}
}

// Create persists the recommendation and every child collection in one
// transaction so a schema-valid generation either lands whole or not at all.
func (r *recommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) error {
	snapshotJSON, err := json.Marshal(rec.DataSnapshot)
	if err != nil {
		return fmt.Errorf("failed to encode data snapshot: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.StatementBuilder.
			Insert("recommendations").
			Columns("id", "workspace_id", "status", "summary", "mode_recommendation", "data_snapshot").
			Values(rec.ID, rec.WorkspaceID, rec.Status, rec.Summary, rec.ModeRecommendation, snapshotJSON).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert recommendation: %w", err)
		}

		for _, d := range rec.Diagnostics {
			query, args, err := squirrel.StatementBuilder.
				Insert("diagnostics").
				Columns("id", "recommendation_id", "metric", "finding", "evidence").
				Values(d.ID, rec.ID, d.Metric, d.Finding, d.Evidence).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to insert diagnostic: %w", err)
			}
		}

		for _, a := range rec.ProposedActions {
			entityJSON, err := json.Marshal(a.Entity)
			if err != nil {
				return fmt.Errorf("failed to encode action entity: %w", err)
			}

			query, args, err := squirrel.StatementBuilder.
				Insert("proposed_actions").
				Columns("id", "recommendation_id", "channel", "type", "entity",
					"rationale", "expected_impact", "guardrail_notes", "budget_change_pct", "status").
				Values(a.ID, rec.ID, a.Channel, a.Type, entityJSON,
					a.Rationale, a.ExpectedImpact, a.GuardrailNotes, a.BudgetChangePct, a.Status).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to insert proposed action: %w", err)
			}
		}

		for _, b := range rec.CreativeBriefs {
			query, args, err := squirrel.StatementBuilder.
				Insert("creative_briefs").
				Columns("id", "recommendation_id", "entity_id", "entity_name", "angle", "hook", "call_to_action").
				Values(b.ID, rec.ID, b.EntityID, b.EntityName, b.Angle, b.Hook, b.CallToAction).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to insert creative brief: %w", err)
			}
		}

		return nil
	})
}

func (r *recommendationRepository) GetByID(ctx context.Context, workspaceID, id string) (*domain.Recommendation, error) {
	query, args, err := squirrel.
		Select(`r.id, r.workspace_id, r.status, r.summary, r.mode_recommendation, r.data_snapshot,
			r.created_at, r.updated_at, r.proposed_at, r.decided_at, r.executed_at`).
		From(recommendationsTable).
		Where(squirrel.Eq{"r.id": id, "r.workspace_id": workspaceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rec, err := r.scanRecommendation(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan recommendation: %w", err)
	}

	if rec.Diagnostics, err = r.listDiagnostics(ctx, id); err != nil {
		return nil, err
	}
	if rec.ProposedActions, err = r.listActions(ctx, id); err != nil {
		return nil, err
	}
	if rec.CreativeBriefs, err = r.listBriefs(ctx, id); err != nil {
		return nil, err
	}

	return rec, nil
}

func (r *recommendationRepository) ListByWorkspace(ctx context.Context, workspaceID string, limit uint64) ([]*domain.Recommendation, error) {
	if limit == 0 {
		limit = 50
	}

	query, args, err := squirrel.
		Select(`r.id, r.workspace_id, r.status, r.summary, r.mode_recommendation, r.data_snapshot,
			r.created_at, r.updated_at, r.proposed_at, r.decided_at, r.executed_at`).
		From(recommendationsTable).
		Where(squirrel.Eq{"r.workspace_id": workspaceID}).
		OrderBy("r.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	recs := make([]*domain.Recommendation, 0)
	for rows.Next() {
		rec, err := r.scanRecommendation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		recs = append(recs, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during row iteration: %w", err)
	}

	return recs, nil
}

// UpdateStatus moves the recommendation to status and stamps the matching
// lifecycle timestamp column.
func (r *recommendationRepository) UpdateStatus(ctx context.Context, id string, status domain.RecommendationStatus, at time.Time) error {
	builder := squirrel.StatementBuilder.
		Update("recommendations").
		Set("status", status).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	switch status {
	case domain.RecommendationProposed:
		builder = builder.Set("proposed_at", at)
	case domain.RecommendationApproved, domain.RecommendationRejected:
		builder = builder.Set("decided_at", at)
	case domain.RecommendationExecuted:
		builder = builder.Set("executed_at", at)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update recommendation status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *recommendationRepository) GetActionByID(ctx context.Context, actionID string) (*domain.ProposedAction, error) {
	query, args, err := squirrel.
		Select(`pa.id, pa.recommendation_id, pa.channel, pa.type, pa.entity, pa.rationale,
			pa.expected_impact, pa.guardrail_notes, pa.budget_change_pct, pa.status,
			pa.created_at, pa.updated_at`).
		From(proposedActionsTable).
		Where(squirrel.Eq{"pa.id": actionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	action, err := scanProposedAction(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan proposed action: %w", err)
	}

	return action, nil
}

// GetActionsByIDs returns the actions of one recommendation matching the
// given IDs, in the order the IDs were supplied.
func (r *recommendationRepository) GetActionsByIDs(ctx context.Context, recommendationID string, actionIDs []string) ([]*domain.ProposedAction, error) {
	if len(actionIDs) == 0 {
		return []*domain.ProposedAction{}, nil
	}

	query, args, err := squirrel.
		Select(`pa.id, pa.recommendation_id, pa.channel, pa.type, pa.entity, pa.rationale,
			pa.expected_impact, pa.guardrail_notes, pa.budget_change_pct, pa.status,
			pa.created_at, pa.updated_at`).
		From(proposedActionsTable).
		Where(squirrel.Eq{"pa.recommendation_id": recommendationID, "pa.id": actionIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*domain.ProposedAction)
	for rows.Next() {
		action, err := scanProposedAction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposed action: %w", err)
		}
		byID[action.ID] = action
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during row iteration: %w", err)
	}

	// Preserve caller ordering; execution order follows the supplied IDs.
	actions := make([]*domain.ProposedAction, 0, len(byID))
	for _, id := range actionIDs {
		if action, ok := byID[id]; ok {
			actions = append(actions, action)
		}
	}

	return actions, nil
}

func (r *recommendationRepository) UpdateActionStatus(ctx context.Context, actionID string, status domain.ProposedActionStatus, guardrailNotes string) error {
	builder := squirrel.StatementBuilder.
		Update("proposed_actions").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": actionID}).
		PlaceholderFormat(squirrel.Dollar)

	if guardrailNotes != "" {
		builder = builder.Set("guardrail_notes", guardrailNotes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update action status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// CountNonTerminalActions counts the actions of a recommendation still in
// PENDING or APPROVED status. Zero means the recommendation is fully settled.
func (r *recommendationRepository) CountNonTerminalActions(ctx context.Context, recommendationID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(proposedActionsTable).
		Where(squirrel.Eq{"pa.recommendation_id": recommendationID}).
		Where(squirrel.Eq{"pa.status": []domain.ProposedActionStatus{
			domain.ProposedActionPending,
			domain.ProposedActionApproved,
		}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count non-terminal actions: %w", err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *recommendationRepository) scanRecommendation(row rowScanner) (*domain.Recommendation, error) {
	rec := &domain.Recommendation{}
	var snapshotJSON []byte
	var proposedAt, decidedAt, executedAt sql.NullTime

	err := row.Scan(
		&rec.ID,
		&rec.WorkspaceID,
		&rec.Status,
		&rec.Summary,
		&rec.ModeRecommendation,
		&snapshotJSON,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&proposedAt,
		&decidedAt,
		&executedAt,
	)
	if err != nil {
		return nil, err
	}

	if snapshotJSON != nil {
		snapshot := &domain.DataSnapshot{}
		if err := json.Unmarshal(snapshotJSON, snapshot); err != nil {
			return nil, fmt.Errorf("failed to decode data snapshot: %w", err)
		}
		rec.DataSnapshot = snapshot
	}

	if proposedAt.Valid {
		rec.ProposedAt = &proposedAt.Time
	}
	if decidedAt.Valid {
		rec.DecidedAt = &decidedAt.Time
	}
	if executedAt.Valid {
		rec.ExecutedAt = &executedAt.Time
	}

	return rec, nil
}

func scanProposedAction(row rowScanner) (*domain.ProposedAction, error) {
	action := &domain.ProposedAction{}
	var entityJSON []byte
	var budgetChange sql.NullFloat64

	err := row.Scan(
		&action.ID,
		&action.RecommendationID,
		&action.Channel,
		&action.Type,
		&entityJSON,
		&action.Rationale,
		&action.ExpectedImpact,
		&action.GuardrailNotes,
		&budgetChange,
		&action.Status,
		&action.CreatedAt,
		&action.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(entityJSON, &action.Entity); err != nil {
		return nil, fmt.Errorf("failed to decode action entity: %w", err)
	}

	if budgetChange.Valid {
		action.BudgetChangePct = &budgetChange.Float64
	}

	return action, nil
}

func (r *recommendationRepository) listDiagnostics(ctx context.Context, recommendationID string) ([]*domain.Diagnostic, error) {
	query, args, err := squirrel.
		Select("d.id, d.recommendation_id, d.metric, d.finding, d.evidence").
		From("diagnostics d").
		Where(squirrel.Eq{"d.recommendation_id": recommendationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	diagnostics := make([]*domain.Diagnostic, 0)
	for rows.Next() {
		d := &domain.Diagnostic{}
		if err := rows.Scan(&d.ID, &d.RecommendationID, &d.Metric, &d.Finding, &d.Evidence); err != nil {
			return nil, fmt.Errorf("failed to scan diagnostic: %w", err)
		}
		diagnostics = append(diagnostics, d)
	}

	return diagnostics, rows.Err()
}

func (r *recommendationRepository) listActions(ctx context.Context, recommendationID string) ([]*domain.ProposedAction, error) {
	query, args, err := squirrel.
		Select(`pa.id, pa.recommendation_id, pa.channel, pa.type, pa.entity, pa.rationale,
			pa.expected_impact, pa.guardrail_notes, pa.budget_change_pct, pa.status,
			pa.created_at, pa.updated_at`).
		From(proposedActionsTable).
		Where(squirrel.Eq{"pa.recommendation_id": recommendationID}).
		OrderBy("pa.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	actions := make([]*domain.ProposedAction, 0)
	for rows.Next() {
		action, err := scanProposedAction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposed action: %w", err)
		}
		actions = append(actions, action)
	}

	return actions, rows.Err()
}

func (r *recommendationRepository) listBriefs(ctx context.Context, recommendationID string) ([]*domain.CreativeBrief, error) {
	query, args, err := squirrel.
		Select("cb.id, cb.recommendation_id, cb.entity_id, cb.entity_name, cb.angle, cb.hook, cb.call_to_action").
		From("creative_briefs cb").
		Where(squirrel.Eq{"cb.recommendation_id": recommendationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	briefs := make([]*domain.CreativeBrief, 0)
	for rows.Next() {
		b := &domain.CreativeBrief{}
		if err := rows.Scan(&b.ID, &b.RecommendationID, &b.EntityID, &b.EntityName, &b.Angle, &b.Hook, &b.CallToAction); err != nil {
			return nil, fmt.Errorf("failed to scan creative brief: %w", err)
		}
		briefs = append(briefs, b)
	}

	return briefs, rows.Err()
}
