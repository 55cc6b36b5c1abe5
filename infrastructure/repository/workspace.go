package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

const (
	workspacesTable       = "workspaces w"
	workspaceMembersTable = "workspace_members wm"
)

type WorkspaceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Workspace, error)
	ListSyncEnabled(ctx context.Context) ([]*domain.Workspace, error)
	GetMemberRole(ctx context.Context, workspaceID, userID string) (domain.Role, error)
}

type workspaceRepository struct {
	conn *postgres.Connection
}

func NewWorkspaceRepository(conn *postgres.Connection) WorkspaceRepository {
	return &workspaceRepository{
		conn: conn,
	}
}

func (r *workspaceRepository) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	query, args, err := squirrel.
		Select("w.id, w.name, w.sync_enabled, w.created_at, w.updated_at").
		From(workspacesTable).
		Where(squirrel.Eq{"w.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	workspace := &domain.Workspace{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&workspace.ID,
		&workspace.Name,
		&workspace.SyncEnabled,
		&workspace.CreatedAt,
		&workspace.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan workspace: %w", err)
	}

	return workspace, nil
}

// ListSyncEnabled returns the workspaces opted in to scheduled
// recommendation generation.
func (r *workspaceRepository) ListSyncEnabled(ctx context.Context) ([]*domain.Workspace, error) {
	query, args, err := squirrel.
		Select("w.id, w.name, w.sync_enabled, w.created_at, w.updated_at").
		From(workspacesTable).
		Where(squirrel.Eq{"w.sync_enabled": true}).
		OrderBy("w.created_at ASC").
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

	workspaces := make([]*domain.Workspace, 0)
	for rows.Next() {
		workspace := &domain.Workspace{}
		err := rows.Scan(
			&workspace.ID,
			&workspace.Name,
			&workspace.SyncEnabled,
			&workspace.CreatedAt,
			&workspace.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, workspace)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during row iteration: %w", err)
	}

	return workspaces, nil
}

// GetMemberRole returns the role of userID in workspaceID, or the empty
// role when the user is not a member.
func (r *workspaceRepository) GetMemberRole(ctx context.Context, workspaceID, userID string) (domain.Role, error) {
	query, args, err := squirrel.
		Select("wm.role").
		From(workspaceMembersTable).
		Where(squirrel.Eq{"wm.workspace_id": workspaceID, "wm.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var role domain.Role
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&role); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to scan member role: %w", err)
	}

	return role, nil
}
