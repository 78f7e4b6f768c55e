package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interactkolhapur/clubsite/internal/domain"
)

// The site_settings table holds exactly one row, seeded by migration.
const settingsRowID = 1

// SettingsRepository handles database operations for the site settings row.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Get retrieves the settings row.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	query, args, err := psql.
		Select("active_members", "total_events", "lives_impacted", "awards_won",
			"maintenance_mode", "updated_at").
		From("site_settings").
		Where(sq.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Get query for settings: %w", err)
	}

	var settings domain.SiteSettings
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&settings.ActiveMembers,
		&settings.TotalEvents,
		&settings.LivesImpacted,
		&settings.AwardsWon,
		&settings.MaintenanceMode,
		&settings.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}

	return &settings, nil
}

// Update replaces the settings row.
func (r *SettingsRepository) Update(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	query, args, err := psql.
		Update("site_settings").
		Set("active_members", settings.ActiveMembers).
		Set("total_events", settings.TotalEvents).
		Set("lives_impacted", settings.LivesImpacted).
		Set("awards_won", settings.AwardsWon).
		Set("maintenance_mode", settings.MaintenanceMode).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": settingsRowID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Update query for settings: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&settings.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	return settings, nil
}

// MaintenanceMode reads only the kill switch flag. Polled by the public site
// on load, so it avoids fetching the full settings row.
func (r *SettingsRepository) MaintenanceMode(ctx context.Context) (bool, error) {
	query, args, err := psql.
		Select("maintenance_mode").
		From("site_settings").
		Where(sq.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build MaintenanceMode query: %w", err)
	}

	var enabled bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&enabled); err != nil {
		return false, fmt.Errorf("query maintenance mode: %w", err)
	}

	return enabled, nil
}
