package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interactkolhapur/clubsite/internal/domain"
)

var eventColumns = []string{"id", "title", "description", "date", "location", "image_url", "created_at"}

// EventRepository handles database operations for club events.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var event domain.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Location,
		&event.ImageURL,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, qb sq.SelectBuilder) ([]*domain.Event, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query for events: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return events, nil
}

// List retrieves all events, newest first.
func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return r.queryEvents(ctx, psql.
		Select(eventColumns...).
		From("events").
		OrderBy("date DESC"))
}

// ListUpcoming retrieves events dated today or later, soonest first.
func (r *EventRepository) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	return r.queryEvents(ctx, psql.
		Select(eventColumns...).
		From("events").
		Where("date >= CURRENT_DATE").
		OrderBy("date ASC"))
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	query, args, err := psql.
		Insert("events").
		Columns("title", "description", "date", "location", "image_url").
		Values(event.Title, event.Description, event.Date, event.Location, event.ImageURL).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for event: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// Update replaces the editable fields of an event.
func (r *EventRepository) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	query, args, err := psql.
		Update("events").
		Set("title", event.Title).
		Set("description", event.Description).
		Set("date", event.Date).
		Set("location", event.Location).
		Set("image_url", event.ImageURL).
		Where(sq.Eq{"id": event.ID}).
		Suffix("RETURNING " + columnList(eventColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Update query for event %s: %w", event.ID, err)
	}

	return scanEvent(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	query, args, err := psql.
		Delete("events").
		Where(sq.Eq{"id": eventID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for event %s: %w", eventID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
