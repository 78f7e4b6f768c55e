package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interactkolhapur/clubsite/internal/domain"
)

// taskColumns is the shared list of columns for task queries.
var taskColumns = []string{
	"id", "title", "description", "status", "priority",
	"creator_id", "creator_name", "assignee_id", "assignee_name",
	"due_date", "forwarded_from", "completed_at", "created_at", "updated_at",
}

// TaskUpdate holds the optional fields of a partial task update.
// Nil fields leave the corresponding column unchanged.
type TaskUpdate struct {
	Title         *string
	Description   *string
	Status        *domain.TaskStatus
	Priority      *domain.TaskPriority
	AssigneeID    **string
	AssigneeName  **string
	DueDate       **time.Time
	ForwardedFrom **string
	CompletedAt   *time.Time
}

// TaskRepository handles database operations for tasks.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// scanTask scans a single row into a Task struct.
func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.CreatorID,
		&task.CreatorName,
		&task.AssigneeID,
		&task.AssigneeName,
		&task.DueDate,
		&task.ForwardedFrom,
		&task.CompletedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &task, nil
}

// scanTasks scans multiple rows into a slice of Task structs.
func scanTasks(rows pgx.Rows) ([]*domain.Task, error) {
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return tasks, nil
}

// List retrieves all tasks in insertion order.
func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for tasks: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	return scanTasks(rows)
}

// GetByID retrieves a task by ID.
func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for task: %w", err)
	}

	return scanTask(r.pool.QueryRow(ctx, query, args...))
}

// GetByIDForUpdate retrieves a task by ID with FOR UPDATE lock (within transaction).
func (r *TaskRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, taskID string) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByIDForUpdate query for task %s: %w", taskID, err)
	}

	return scanTask(tx.QueryRow(ctx, query, args...))
}

// Create creates a new task in the database.
// Returns the created task with ID, CreatedAt, and UpdatedAt populated.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query, args, err := psql.
		Insert("tasks").
		Columns(
			"title", "description", "status", "priority",
			"creator_id", "creator_name", "assignee_id", "assignee_name",
			"due_date", "forwarded_from",
		).
		Values(
			task.Title,
			task.Description,
			task.Status,
			task.Priority,
			task.CreatorID,
			task.CreatorName,
			task.AssigneeID,
			task.AssigneeName,
			task.DueDate,
			task.ForwardedFrom,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for task: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

// Update applies a partial update and returns the updated task.
// Returns ErrTaskNotFound if no row matches.
func (r *TaskRepository) Update(ctx context.Context, taskID string, update TaskUpdate) (*domain.Task, error) {
	qb := psql.Update("tasks").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": taskID})

	if update.Title != nil {
		qb = qb.Set("title", *update.Title)
	}
	if update.Description != nil {
		qb = qb.Set("description", *update.Description)
	}
	if update.Status != nil {
		qb = qb.Set("status", *update.Status)
	}
	if update.Priority != nil {
		qb = qb.Set("priority", *update.Priority)
	}
	if update.AssigneeID != nil {
		qb = qb.Set("assignee_id", *update.AssigneeID)
	}
	if update.AssigneeName != nil {
		qb = qb.Set("assignee_name", *update.AssigneeName)
	}
	if update.DueDate != nil {
		qb = qb.Set("due_date", *update.DueDate)
	}
	if update.ForwardedFrom != nil {
		qb = qb.Set("forwarded_from", *update.ForwardedFrom)
	}
	if update.CompletedAt != nil {
		qb = qb.Set("completed_at", *update.CompletedAt)
	}

	query, args, err := qb.
		Suffix("RETURNING " + columnList(taskColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Update query for task %s: %w", taskID, err)
	}

	return scanTask(r.pool.QueryRow(ctx, query, args...))
}

// Reassign changes the assignee and provenance note within a transaction.
// Returns ErrTaskNotFound if no row matches.
func (r *TaskRepository) Reassign(
	ctx context.Context,
	tx pgx.Tx,
	taskID string,
	assigneeID string,
	assigneeName string,
	forwardedFrom string,
) error {
	query, args, err := psql.
		Update("tasks").
		Set("assignee_id", assigneeID).
		Set("assignee_name", assigneeName).
		Set("forwarded_from", forwardedFrom).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Reassign query for task %s: %w", taskID, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("reassign task: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task. Comments cascade at the store level.
// Returns ErrTaskNotFound if no row matches; deletion is not idempotent.
func (r *TaskRepository) Delete(ctx context.Context, taskID string) error {
	query, args, err := psql.
		Delete("tasks").
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for task %s: %w", taskID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// CountByStatus returns the number of tasks per status.
func (r *TaskRepository) CountByStatus(ctx context.Context) (map[domain.TaskStatus]int, error) {
	query, args, err := psql.
		Select("status", "COUNT(*)").
		From("tasks").
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build CountByStatus query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query task counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.TaskStatus]int)
	for rows.Next() {
		var status domain.TaskStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan task count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return counts, nil
}
