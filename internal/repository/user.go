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

var userColumns = []string{"id", "email", "name", "role", "token", "is_active", "created_at"}

// UserRepository handles database operations for directory members.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Role,
		&user.Token,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}

// GetByToken finds a user by authentication token.
func (r *UserRepository) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByToken query for user: %w", err)
	}

	return scanUser(r.pool.QueryRow(ctx, query, args...))
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for user: %w", err)
	}

	return scanUser(r.pool.QueryRow(ctx, query, args...))
}

// List retrieves all active users ordered by name.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for users: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return users, nil
}

// Create inserts a new user. Used by the add-user provisioning command.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query, args, err := psql.
		Insert("users").
		Columns("email", "name", "role", "token", "is_active").
		Values(user.Email, user.Name, user.Role, user.Token, user.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for user: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}
