package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

const (
	entityPerformanceTable = "entity_performance ep"
	adEntitiesTable        = "ad_entities ae"
)

type PerformanceRepository interface {
	AggregateByEntity(ctx context.Context, workspaceID string, startDate, endDate time.Time) ([]*domain.EntityAggregate, error)
	SumWorkspaceSpend(ctx context.Context, workspaceID string, since time.Time) (float64, error)
	SaveOrUpdate(ctx context.Context, row *domain.PerformanceRow) error
	GetEntityState(ctx context.Context, workspaceID string, channel domain.Channel, entityID string) (*domain.AdEntity, error)
	UpsertEntityState(ctx context.Context, entity *domain.AdEntity) error
}

type performanceRepository struct {
	conn *postgres.Connection
}

func NewPerformanceRepository(conn *postgres.Connection) PerformanceRepository {
	return &performanceRepository{
		conn: conn,
	}
}

// AggregateByEntity groups the trailing-window rows per entity. Spend is
// returned in channel-native units; micros normalization happens in the
// analyzing service.
func (r *performanceRepository) AggregateByEntity(ctx context.Context, workspaceID string, startDate, endDate time.Time) ([]*domain.EntityAggregate, error) {
	query, args, err := squirrel.
		Select(
			"ep.channel",
			"ep.level",
			"ep.entity_id",
			"MAX(ep.entity_name)",
			"COALESCE(SUM(ep.spend), 0)",
			"COALESCE(SUM(ep.revenue), 0)",
			"COALESCE(SUM(ep.purchases), 0)",
			"COALESCE(SUM(ep.impressions), 0)",
			"COALESCE(SUM(ep.clicks), 0)",
			"COALESCE(AVG(ep.ctr), 0)",
			"AVG(ep.frequency)",
		).
		From(entityPerformanceTable).
		Where(squirrel.Eq{"ep.workspace_id": workspaceID}).
		Where(squirrel.GtOrEq{"ep.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ep.date": endDate.Format("2006-01-02")}).
		GroupBy("ep.channel", "ep.level", "ep.entity_id").
		Having("SUM(ep.spend) > 0").
		OrderBy("ep.entity_id ASC").
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

	aggregates := make([]*domain.EntityAggregate, 0)
	for rows.Next() {
		agg := &domain.EntityAggregate{}
		var frequency sql.NullFloat64

		err := rows.Scan(
			&agg.Channel,
			&agg.Level,
			&agg.EntityID,
			&agg.EntityName,
			&agg.Spend,
			&agg.Revenue,
			&agg.Purchases,
			&agg.Impressions,
			&agg.Clicks,
			&agg.AvgCTR,
			&frequency,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entity aggregate: %w", err)
		}

		if frequency.Valid {
			agg.AvgFrequency = &frequency.Float64
		}

		aggregates = append(aggregates, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during row iteration: %w", err)
	}

	return aggregates, nil
}

// SumWorkspaceSpend returns total spend (currency units, micros normalized)
// for the workspace since the given date. Used for monthly cap checks.
func (r *performanceRepository) SumWorkspaceSpend(ctx context.Context, workspaceID string, since time.Time) (float64, error) {
	query, args, err := squirrel.
		Select(fmt.Sprintf(
			"COALESCE(SUM(CASE WHEN ep.channel = '%s' THEN ep.spend / %.0f ELSE ep.spend END), 0)",
			domain.ChannelGoogle, domain.MicrosPerUnit,
		)).
		From(entityPerformanceTable).
		Where(squirrel.Eq{"ep.workspace_id": workspaceID}).
		Where(squirrel.GtOrEq{"ep.date": since.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum workspace spend: %w", err)
	}

	return total, nil
}

func (r *performanceRepository) SaveOrUpdate(ctx context.Context, row *domain.PerformanceRow) error {
	query := squirrel.StatementBuilder.
		Insert("entity_performance").
		Columns("workspace_id", "channel", "level", "entity_id", "entity_name", "date",
			"spend", "revenue", "purchases", "impressions", "clicks", "ctr", "frequency").
		Values(
			row.WorkspaceID,
			row.Channel,
			row.Level,
			row.EntityID,
			row.EntityName,
			row.Date.Format("2006-01-02"),
			row.Spend,
			row.Revenue,
			row.Purchases,
			row.Impressions,
			row.Clicks,
			row.CTR,
			row.Frequency,
		).
		Suffix(`
			ON CONFLICT (workspace_id, channel, entity_id, date) DO UPDATE SET
				entity_name = EXCLUDED.entity_name,
				spend = EXCLUDED.spend,
				revenue = EXCLUDED.revenue,
				purchases = EXCLUDED.purchases,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				ctr = EXCLUDED.ctr,
				frequency = EXCLUDED.frequency,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to run query: %w", err)
	}

	return nil
}

func (r *performanceRepository) GetEntityState(ctx context.Context, workspaceID string, channel domain.Channel, entityID string) (*domain.AdEntity, error) {
	query, args, err := squirrel.
		Select("ae.workspace_id, ae.channel, ae.level, ae.entity_id, ae.name, ae.daily_budget, ae.status, ae.updated_at").
		From(adEntitiesTable).
		Where(squirrel.Eq{"ae.workspace_id": workspaceID, "ae.channel": channel, "ae.entity_id": entityID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	entity := &domain.AdEntity{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&entity.WorkspaceID,
		&entity.Channel,
		&entity.Level,
		&entity.EntityID,
		&entity.Name,
		&entity.DailyBudget,
		&entity.Status,
		&entity.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan ad entity: %w", err)
	}

	return entity, nil
}

func (r *performanceRepository) UpsertEntityState(ctx context.Context, entity *domain.AdEntity) error {
	query := squirrel.StatementBuilder.
		Insert("ad_entities").
		Columns("workspace_id", "channel", "level", "entity_id", "name", "daily_budget", "status").
		Values(
			entity.WorkspaceID,
			entity.Channel,
			entity.Level,
			entity.EntityID,
			entity.Name,
			entity.DailyBudget,
			entity.Status,
		).
		Suffix(`
			ON CONFLICT (workspace_id, channel, entity_id) DO UPDATE SET
				name = EXCLUDED.name,
				daily_budget = EXCLUDED.daily_budget,
				status = EXCLUDED.status,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("failed to upsert ad entity: %w", err)
	}

	return nil
}
