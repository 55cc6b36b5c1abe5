package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

const auditLogsTable = "audit_logs al"

type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLogEntry) error
	ListByWorkspace(ctx context.Context, workspaceID string, limit uint64) ([]*domain.AuditLogEntry, error)
}

type auditLogRepository struct {
	conn *postgres.Connection
}

func NewAuditLogRepository(conn *postgres.Connection) AuditLogRepository {
	return &auditLogRepository{
		conn: conn,
	}
}

// Create appends one audit entry. Entries are append-only; there is no
// update or delete path in this repository on purpose.
func (r *auditLogRepository) Create(ctx context.Context, entry *domain.AuditLogEntry) error {
	var beforeJSON, afterJSON []byte
	var err error

	if entry.BeforeState != nil {
		if beforeJSON, err = json.Marshal(entry.BeforeState); err != nil {
			return fmt.Errorf("failed to encode before state: %w", err)
		}
	}
	if entry.AfterState != nil {
		if afterJSON, err = json.Marshal(entry.AfterState); err != nil {
			return fmt.Errorf("failed to encode after state: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("audit_logs").
		Columns("workspace_id", "user_id", "action", "channel", "entity_type", "entity_id",
			"before_state", "after_state", "reason", "execution_action_id").
		Values(entry.WorkspaceID, entry.UserID, entry.Action, entry.Channel, entry.EntityType,
			entry.EntityID, beforeJSON, afterJSON, entry.Reason, entry.ExecutionActionID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert audit log entry: %w", err)
	}

	return nil
}

func (r *auditLogRepository) ListByWorkspace(ctx context.Context, workspaceID string, limit uint64) ([]*domain.AuditLogEntry, error) {
	if limit == 0 {
		limit = 100
	}

	query, args, err := squirrel.
		Select(`al.id, al.workspace_id, al.user_id, al.action, al.channel, al.entity_type,
			al.entity_id, al.before_state, al.after_state, al.reason, al.execution_action_id, al.created_at`).
		From(auditLogsTable).
		Where(squirrel.Eq{"al.workspace_id": workspaceID}).
		OrderBy("al.created_at DESC").
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

	entries := make([]*domain.AuditLogEntry, 0)
	for rows.Next() {
		entry := &domain.AuditLogEntry{}
		var beforeJSON, afterJSON []byte
		var executionActionID sql.NullString

		err := rows.Scan(
			&entry.ID,
			&entry.WorkspaceID,
			&entry.UserID,
			&entry.Action,
			&entry.Channel,
			&entry.EntityType,
			&entry.EntityID,
			&beforeJSON,
			&afterJSON,
			&entry.Reason,
			&executionActionID,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}

		if beforeJSON != nil {
			entry.BeforeState = &domain.EntityState{}
			if err := json.Unmarshal(beforeJSON, entry.BeforeState); err != nil {
				return nil, fmt.Errorf("failed to decode before state: %w", err)
			}
		}
		if afterJSON != nil {
			entry.AfterState = &domain.EntityState{}
			if err := json.Unmarshal(afterJSON, entry.AfterState); err != nil {
				return nil, fmt.Errorf("failed to decode after state: %w", err)
			}
		}
		if executionActionID.Valid {
			entry.ExecutionActionID = &executionActionID.String
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during row iteration: %w", err)
	}

	return entries, nil
}
