package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

const businessProfilesTable = "business_profiles bp"

type BusinessProfileRepository interface {
	GetByWorkspaceID(ctx context.Context, workspaceID string) (*domain.BusinessProfile, error)
	SaveOrUpdate(ctx context.Context, profile *domain.BusinessProfile) error
}

type businessProfileRepository struct {
	conn *postgres.Connection
}

func NewBusinessProfileRepository(conn *postgres.Connection) BusinessProfileRepository {
	return &businessProfileRepository{
		conn: conn,
	}
}

func (r *businessProfileRepository) GetByWorkspaceID(ctx context.Context, workspaceID string) (*domain.BusinessProfile, error) {
	query, args, err := squirrel.
		Select(`bp.workspace_id, bp.target_cpa_zar, bp.break_even_roas, bp.gross_margin_pct,
			bp.avg_shipping_cost_zar, bp.return_rate_pct, bp.payment_fees_pct,
			bp.monthly_spend_cap_zar, bp.strategic_mode, bp.created_at, bp.updated_at`).
		From(businessProfilesTable).
		Where(squirrel.Eq{"bp.workspace_id": workspaceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	profile := &domain.BusinessProfile{}
	var monthlyCap sql.NullFloat64

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&profile.WorkspaceID,
		&profile.TargetCpaZar,
		&profile.BreakEvenRoas,
		&profile.GrossMarginPct,
		&profile.AvgShippingCostZar,
		&profile.ReturnRatePct,
		&profile.PaymentFeesPct,
		&monthlyCap,
		&profile.StrategicMode,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan business profile: %w", err)
	}

	if monthlyCap.Valid {
		profile.MonthlySpendCapZar = &monthlyCap.Float64
	}

	return profile, nil
}

func (r *businessProfileRepository) SaveOrUpdate(ctx context.Context, profile *domain.BusinessProfile) error {
	query := squirrel.StatementBuilder.
		Insert("business_profiles").
		Columns("workspace_id", "target_cpa_zar", "break_even_roas", "gross_margin_pct",
			"avg_shipping_cost_zar", "return_rate_pct", "payment_fees_pct",
			"monthly_spend_cap_zar", "strategic_mode").
		Values(
			profile.WorkspaceID,
			profile.TargetCpaZar,
			profile.BreakEvenRoas,
			profile.GrossMarginPct,
			profile.AvgShippingCostZar,
			profile.ReturnRatePct,
			profile.PaymentFeesPct,
			profile.MonthlySpendCapZar,
			profile.StrategicMode,
		).
		Suffix(`
			ON CONFLICT (workspace_id) DO UPDATE SET
				target_cpa_zar = EXCLUDED.target_cpa_zar,
				break_even_roas = EXCLUDED.break_even_roas,
				gross_margin_pct = EXCLUDED.gross_margin_pct,
				avg_shipping_cost_zar = EXCLUDED.avg_shipping_cost_zar,
				return_rate_pct = EXCLUDED.return_rate_pct,
				payment_fees_pct = EXCLUDED.payment_fees_pct,
				monthly_spend_cap_zar = EXCLUDED.monthly_spend_cap_zar,
				strategic_mode = EXCLUDED.strategic_mode,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("failed to upsert business profile: %w", err)
	}

	return nil
}
