package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

const (
	executionRunsTable    = "execution_runs er"
	executionActionsTable = "execution_actions ea"

	uniqueViolationCode = "23505"
)

// ErrRunInProgress is returned when the partial unique index rejects a
// second RUNNING run for the same recommendation.
var ErrRunInProgress = errors.New("execution run already in progress")

type ExecutionRepository interface {
	CreateRun(ctx context.Context, run *domain.ExecutionRun) error
	FinishRun(ctx context.Context, runID string, status domain.ExecutionRunStatus, finishedAt time.Time) error
	CreateAction(ctx context.Context, action *domain.ExecutionAction) error
	CountPausesSince(ctx context.Context, workspaceID string, since time.Time) (int, error)
	ListRunsByRecommendation(ctx context.Context, recommendationID string) ([]*domain.ExecutionRun, error)
}

type executionRepository struct {
	conn *postgres.Connection
}

func NewExecutionRepository(conn *postgres.Connection) ExecutionRepository {
	return &executionRepository{
		conn: conn,
	}
}

// CreateRun inserts a new RUNNING run. The partial unique index on
// execution_runs guarantees a single in-flight run per recommendation;
// a violation surfaces as ErrRunInProgress.
func (r *executionRepository) CreateRun(ctx context.Context, run *domain.ExecutionRun) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("execution_runs").
		Columns("id", "workspace_id", "recommendation_id", "status", "started_at").
		Values(run.ID, run.WorkspaceID, run.RecommendationID, run.Status, run.StartedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolationCode {
			return ErrRunInProgress
		}
		return fmt.Errorf("failed to insert execution run: %w", err)
	}

	return nil
}

func (r *executionRepository) FinishRun(ctx context.Context, runID string, status domain.ExecutionRunStatus, finishedAt time.Time) error {
	query, args, err := squirrel.StatementBuilder.
		Update("execution_runs").
		Set("status", status).
		Set("finished_at", finishedAt).
		Where(squirrel.Eq{"id": runID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to finish execution run: %w", err)
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

func (r *executionRepository) CreateAction(ctx context.Context, action *domain.ExecutionAction) error {
	entityJSON, err := json.Marshal(action.Entity)
	if err != nil {
		return fmt.Errorf("failed to encode action entity: %w", err)
	}

	var beforeJSON, afterJSON []byte
	if action.BeforeState != nil {
		if beforeJSON, err = json.Marshal(action.BeforeState); err != nil {
			return fmt.Errorf("failed to encode before state: %w", err)
		}
	}
	if action.AfterState != nil {
		if afterJSON, err = json.Marshal(action.AfterState); err != nil {
			return fmt.Errorf("failed to encode after state: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("execution_actions").
		Columns("id", "run_id", "proposed_action_id", "channel", "type", "entity",
			"before_state", "after_state", "status", "error", "executed_at").
		Values(action.ID, action.RunID, action.ProposedActionID, action.Channel, action.Type,
			entityJSON, beforeJSON, afterJSON, action.Status, action.Error, action.ExecutedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert execution action: %w", err)
	}

	return nil
}

// CountPausesSince counts successful pause executions in the workspace since
// the given instant. Feeds the max-pauses-per-day guardrail.
func (r *executionRepository) CountPausesSince(ctx context.Context, workspaceID string, since time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(executionActionsTable).
		Join("execution_runs er ON er.id = ea.run_id").
		Where(squirrel.Eq{
			"er.workspace_id": workspaceID,
			"ea.type":         domain.ActionTypePauseEntity,
			"ea.status":       domain.ExecutionActionExecuted,
		}).
		Where(squirrel.GtOrEq{"ea.executed_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pauses: %w", err)
	}

	return count, nil
}

func (r *executionRepository) ListRunsByRecommendation(ctx context.Context, recommendationID string) ([]*domain.ExecutionRun, error) {
	query, args, err := squirrel.
		Select("er.id, er.workspace_id, er.recommendation_id, er.status, er.started_at, er.finished_at").
		From(executionRunsTable).
		Where(squirrel.Eq{"er.recommendation_id": recommendationID}).
		OrderBy("er.started_at DESC").
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

	runs := make([]*domain.ExecutionRun, 0)
	for rows.Next() {
		run := &domain.ExecutionRun{}
		var finishedAt sql.NullTime

		err := rows.Scan(&run.ID, &run.WorkspaceID, &run.RecommendationID, &run.Status, &run.StartedAt, &finishedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan execution run: %w", err)
		}

		if finishedAt.Valid {
			run.FinishedAt = &finishedAt.Time
		}

		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during row iteration: %w", err)
	}

	return runs, nil
}
