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

var boardMemberColumns = []string{"id", "name", "position", "bio", "image_url", "display_order", "created_at"}

// BoardMemberRepository handles database operations for board member profiles.
type BoardMemberRepository struct {
	pool *pgxpool.Pool
}

// NewBoardMemberRepository creates a new BoardMemberRepository.
func NewBoardMemberRepository(pool *pgxpool.Pool) *BoardMemberRepository {
	return &BoardMemberRepository{pool: pool}
}

func scanBoardMember(row pgx.Row) (*domain.BoardMember, error) {
	var member domain.BoardMember
	err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Position,
		&member.Bio,
		&member.ImageURL,
		&member.DisplayOrder,
		&member.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBoardMemberNotFound
		}
		return nil, fmt.Errorf("scan board member: %w", err)
	}
	return &member, nil
}

// List retrieves all board members in display order.
func (r *BoardMemberRepository) List(ctx context.Context) ([]*domain.BoardMember, error) {
	query, args, err := psql.
		Select(boardMemberColumns...).
		From("board_members").
		OrderBy("display_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for board members: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query board members: %w", err)
	}
	defer rows.Close()

	var members []*domain.BoardMember
	for rows.Next() {
		member, err := scanBoardMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return members, nil
}

// Create inserts a new board member.
func (r *BoardMemberRepository) Create(ctx context.Context, member *domain.BoardMember) (*domain.BoardMember, error) {
	query, args, err := psql.
		Insert("board_members").
		Columns("name", "position", "bio", "image_url", "display_order").
		Values(member.Name, member.Position, member.Bio, member.ImageURL, member.DisplayOrder).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for board member: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create board member: %w", err)
	}

	return member, nil
}

// Update replaces the editable fields of a board member.
func (r *BoardMemberRepository) Update(ctx context.Context, member *domain.BoardMember) (*domain.BoardMember, error) {
	query, args, err := psql.
		Update("board_members").
		Set("name", member.Name).
		Set("position", member.Position).
		Set("bio", member.Bio).
		Set("image_url", member.ImageURL).
		Set("display_order", member.DisplayOrder).
		Where(sq.Eq{"id": member.ID}).
		Suffix("RETURNING " + columnList(boardMemberColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Update query for board member %s: %w", member.ID, err)
	}

	return scanBoardMember(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a board member.
func (r *BoardMemberRepository) Delete(ctx context.Context, memberID string) error {
	query, args, err := psql.
		Delete("board_members").
		Where(sq.Eq{"id": memberID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for board member %s: %w", memberID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete board member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBoardMemberNotFound
	}

	return nil
}
