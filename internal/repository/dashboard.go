package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interactkolhapur/clubsite/internal/domain"
)

// DashboardCounts holds the entity counts shown on the admin landing page.
type DashboardCounts struct {
	TasksByStatus map[domain.TaskStatus]int
	BoardMembers  int
	Events        int
	NewsPosts     int
	GalleryImages int
	Messages      int
}

// DashboardRepository aggregates counts across content tables.
type DashboardRepository struct {
	pool     *pgxpool.Pool
	taskRepo *TaskRepository
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool, taskRepo *TaskRepository) *DashboardRepository {
	return &DashboardRepository{pool: pool, taskRepo: taskRepo}
}

func (r *DashboardRepository) countTable(ctx context.Context, table string) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query for %s: %w", table, err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

// Counts gathers all dashboard counts.
func (r *DashboardRepository) Counts(ctx context.Context) (*DashboardCounts, error) {
	tasksByStatus, err := r.taskRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	counts := &DashboardCounts{TasksByStatus: tasksByStatus}

	for table, dst := range map[string]*int{
		"board_members":    &counts.BoardMembers,
		"events":           &counts.Events,
		"news_posts":       &counts.NewsPosts,
		"gallery_images":   &counts.GalleryImages,
		"contact_messages": &counts.Messages,
	} {
		count, err := r.countTable(ctx, table)
		if err != nil {
			return nil, err
		}
		*dst = count
	}

	return counts, nil
}
