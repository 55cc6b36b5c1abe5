package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

const opsTasksTable = "ops_tasks ot"

type TaskRepository interface {
	Create(ctx context.Context, task *domain.OpsTask) error
	ListByWorkspace(ctx context.Context, workspaceID string, limit uint64) ([]*domain.OpsTask, error)
	UpdateStatus(ctx context.Context, taskID string, status domain.OpsTaskStatus) error
}

type taskRepository struct {
	conn *postgres.Connection
}

func NewTaskRepository(conn *postgres.Connection) TaskRepository {
	return &taskRepository{
		conn: conn,
	}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.OpsTask) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("ops_tasks").
		Columns("id", "workspace_id", "proposed_action_id", "channel", "title", "description", "status").
		Values(task.ID, task.WorkspaceID, task.ProposedActionID, task.Channel, task.Title, task.Description, task.Status).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert ops task: %w", err)
	}

	return nil
}

func (r *taskRepository) ListByWorkspace(ctx context.Context, workspaceID string, limit uint64) ([]*domain.OpsTask, error) {
	if limit == 0 {
		limit = 100
	}

	query, args, err := squirrel.
		Select("ot.id, ot.workspace_id, ot.proposed_action_id, ot.channel, ot.title, ot.description, ot.status, ot.created_at, ot.updated_at").
		From(opsTasksTable).
		Where(squirrel.Eq{"ot.workspace_id": workspaceID}).
		OrderBy("ot.created_at DESC").
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

	tasks := make([]*domain.OpsTask, 0)
	for rows.Next() {
		task := &domain.OpsTask{}
		err := rows.Scan(
			&task.ID,
			&task.WorkspaceID,
			&task.ProposedActionID,
			&task.Channel,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ops task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during row iteration: %w", err)
	}

	return tasks, nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, taskID string, status domain.OpsTaskStatus) error {
	query, args, err := squirrel.StatementBuilder.
		Update("ops_tasks").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": taskID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update ops task: %w", err)
	}

	return nil
}
