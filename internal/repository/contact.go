package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interactkolhapur/clubsite/internal/domain"
)

// ContactRepository handles database operations for contact form submissions.
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// List retrieves all submissions, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	query, args, err := psql.
		Select("id", "name", "email", "subject", "message", "created_at").
		From("contact_messages").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for contact messages: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.ContactMessage
	for rows.Next() {
		var message domain.ContactMessage
		err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Subject,
			&message.Message,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, &message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return messages, nil
}

// Create inserts a new submission.
func (r *ContactRepository) Create(ctx context.Context, message *domain.ContactMessage) (*domain.ContactMessage, error) {
	query, args, err := psql.
		Insert("contact_messages").
		Columns("name", "email", "subject", "message").
		Values(message.Name, message.Email, message.Subject, message.Message).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for contact message: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	return message, nil
}

// Delete removes a submission.
func (r *ContactRepository) Delete(ctx context.Context, messageID string) error {
	query, args, err := psql.
		Delete("contact_messages").
		Where(sq.Eq{"id": messageID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for contact message %s: %w", messageID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMessageNotFound
	}

	return nil
}
