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

var newsColumns = []string{"id", "title", "content", "image_url", "published_at", "created_at"}

// NewsRepository handles database operations for news posts.
type NewsRepository struct {
	pool *pgxpool.Pool
}

// NewNewsRepository creates a new NewsRepository.
func NewNewsRepository(pool *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{pool: pool}
}

func scanNewsPost(row pgx.Row) (*domain.NewsPost, error) {
	var post domain.NewsPost
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.ImageURL,
		&post.PublishedAt,
		&post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNewsPostNotFound
		}
		return nil, fmt.Errorf("scan news post: %w", err)
	}
	return &post, nil
}

// List retrieves all news posts, newest first.
func (r *NewsRepository) List(ctx context.Context) ([]*domain.NewsPost, error) {
	query, args, err := psql.
		Select(newsColumns...).
		From("news_posts").
		OrderBy("published_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for news posts: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query news posts: %w", err)
	}
	defer rows.Close()

	var posts []*domain.NewsPost
	for rows.Next() {
		post, err := scanNewsPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return posts, nil
}

// Create inserts a new news post.
func (r *NewsRepository) Create(ctx context.Context, post *domain.NewsPost) (*domain.NewsPost, error) {
	query, args, err := psql.
		Insert("news_posts").
		Columns("title", "content", "image_url", "published_at").
		Values(post.Title, post.Content, post.ImageURL, post.PublishedAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for news post: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create news post: %w", err)
	}

	return post, nil
}

// Update replaces the editable fields of a news post.
func (r *NewsRepository) Update(ctx context.Context, post *domain.NewsPost) (*domain.NewsPost, error) {
	query, args, err := psql.
		Update("news_posts").
		Set("title", post.Title).
		Set("content", post.Content).
		Set("image_url", post.ImageURL).
		Set("published_at", post.PublishedAt).
		Where(sq.Eq{"id": post.ID}).
		Suffix("RETURNING " + columnList(newsColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Update query for news post %s: %w", post.ID, err)
	}

	return scanNewsPost(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a news post.
func (r *NewsRepository) Delete(ctx context.Context, postID string) error {
	query, args, err := psql.
		Delete("news_posts").
		Where(sq.Eq{"id": postID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for news post %s: %w", postID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete news post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNewsPostNotFound
	}

	return nil
}
