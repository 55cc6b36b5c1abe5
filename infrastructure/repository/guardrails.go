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

const guardrailsTable = "guardrails g"

type GuardrailsRepository interface {
	GetByWorkspaceID(ctx context.Context, workspaceID string) (*domain.Guardrails, error)
	SaveOrUpdate(ctx context.Context, guardrails *domain.Guardrails) error
}

type guardrailsRepository struct {
	conn *postgres.Connection
}

func NewGuardrailsRepository(conn *postgres.Connection) GuardrailsRepository {
	return &guardrailsRepository{
		conn: conn,
	}
}

func (r *guardrailsRepository) GetByWorkspaceID(ctx context.Context, workspaceID string) (*domain.Guardrails, error) {
	query, args, err := squirrel.
		Select(`g.workspace_id, g.max_budget_change_percent_daily, g.max_pauses_per_day,
			g.min_spend_zar, g.max_spend_zar, g.require_approval_for, g.created_at, g.updated_at`).
		From(guardrailsTable).
		Where(squirrel.Eq{"g.workspace_id": workspaceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	guardrails := &domain.Guardrails{}
	var maxSpend sql.NullFloat64
	var requireApprovalJSON []byte

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&guardrails.WorkspaceID,
		&guardrails.MaxBudgetChangePercentDaily,
		&guardrails.MaxPausesPerDay,
		&guardrails.MinSpendZar,
		&maxSpend,
		&requireApprovalJSON,
		&guardrails.CreatedAt,
		&guardrails.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan guardrails: %w", err)
	}

	if maxSpend.Valid {
		guardrails.MaxSpendZar = &maxSpend.Float64
	}

	if requireApprovalJSON != nil {
		if err := json.Unmarshal(requireApprovalJSON, &guardrails.RequireApprovalFor); err != nil {
			return nil, fmt.Errorf("failed to decode require_approval_for: %w", err)
		}
	}

	return guardrails, nil
}

func (r *guardrailsRepository) SaveOrUpdate(ctx context.Context, guardrails *domain.Guardrails) error {
	requireApprovalJSON, err := json.Marshal(guardrails.RequireApprovalFor)
	if err != nil {
		return fmt.Errorf("failed to encode require_approval_for: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("guardrails").
		Columns("workspace_id", "max_budget_change_percent_daily", "max_pauses_per_day",
			"min_spend_zar", "max_spend_zar", "require_approval_for").
		Values(
			guardrails.WorkspaceID,
			guardrails.MaxBudgetChangePercentDaily,
			guardrails.MaxPausesPerDay,
			guardrails.MinSpendZar,
			guardrails.MaxSpendZar,
			requireApprovalJSON,
		).
		Suffix(`
			ON CONFLICT (workspace_id) DO UPDATE SET
				max_budget_change_percent_daily = EXCLUDED.max_budget_change_percent_daily,
				max_pauses_per_day = EXCLUDED.max_pauses_per_day,
				min_spend_zar = EXCLUDED.min_spend_zar,
				max_spend_zar = EXCLUDED.max_spend_zar,
				require_approval_for = EXCLUDED.require_approval_for,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("failed to upsert guardrails: %w", err)
	}

	return nil
}
