package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interactkolhapur/clubsite/internal/domain"
)

// GalleryRepository handles database operations for gallery images.
type GalleryRepository struct {
	pool *pgxpool.Pool
}

// NewGalleryRepository creates a new GalleryRepository.
func NewGalleryRepository(pool *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{pool: pool}
}

// List retrieves all gallery images, newest first.
func (r *GalleryRepository) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	query, args, err := psql.
		Select("id", "title", "image_url", "category", "created_at").
		From("gallery_images").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for gallery images: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query gallery images: %w", err)
	}
	defer rows.Close()

	var images []*domain.GalleryImage
	for rows.Next() {
		var image domain.GalleryImage
		err := rows.Scan(&image.ID, &image.Title, &image.ImageURL, &image.Category, &image.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan gallery image: %w", err)
		}
		images = append(images, &image)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return images, nil
}

// Create inserts a new gallery image.
func (r *GalleryRepository) Create(ctx context.Context, image *domain.GalleryImage) (*domain.GalleryImage, error) {
	query, args, err := psql.
		Insert("gallery_images").
		Columns("title", "image_url", "category").
		Values(image.Title, image.ImageURL, image.Category).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for gallery image: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&image.ID, &image.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create gallery image: %w", err)
	}

	return image, nil
}

// Delete removes a gallery image.
func (r *GalleryRepository) Delete(ctx context.Context, imageID string) error {
	query, args, err := psql.
		Delete("gallery_images").
		Where(sq.Eq{"id": imageID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for gallery image %s: %w", imageID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGalleryImageNotFound
	}

	return nil
}
