package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interactkolhapur/clubsite/internal/domain"
	"github.com/interactkolhapur/clubsite/internal/repository"
)

// TaskService coordinates task operations. The acting user is threaded
// explicitly into every call; there is no ambient session state.
type TaskService struct {
	pool        *pgxpool.Pool
	taskRepo    *repository.TaskRepository
	commentRepo *repository.CommentRepository
	userRepo    *repository.UserRepository
	validator   *Validator
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	pool *pgxpool.Pool,
	taskRepo *repository.TaskRepository,
	commentRepo *repository.CommentRepository,
	userRepo *repository.UserRepository,
) *TaskService {
	return &TaskService{
		pool:        pool,
		taskRepo:    taskRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		validator:   NewValidator(userRepo),
	}
}

// CreateTaskParams holds the inputs for creating a task.
type CreateTaskParams struct {
	Title       string
	Description string
	Priority    domain.TaskPriority
	AssigneeID  *string
	DueDate     *time.Time
}

// CreateTask creates a new pending task owned by the acting user.
func (s *TaskService) CreateTask(ctx context.Context, actor *domain.User, params CreateTaskParams) (*domain.Task, error) {
	title, err := s.validator.RequireText("title", params.Title)
	if err != nil {
		return nil, err
	}
	description, err := s.validator.RequireText("description", params.Description)
	if err != nil {
		return nil, err
	}
	priority, err := s.validator.NormalizePriority(params.Priority)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:       title,
		Description: description,
		Status:      domain.TaskStatusPending,
		Priority:    priority,
		CreatorID:   actor.ID,
		CreatorName: actor.Name,
		DueDate:     params.DueDate,
	}

	if params.AssigneeID != nil {
		assignee, err := s.validator.ResolveAssignee(ctx, *params.AssigneeID)
		if err != nil {
			return nil, err
		}
		task.AssigneeID = &assignee.ID
		task.AssigneeName = &assignee.Name
	}

	created, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	slog.Info("task created",
		"task_id", created.ID,
		"creator_id", actor.ID,
		"priority", created.Priority,
	)

	return created, nil
}

// GetTask retrieves a single task by ID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	return s.taskRepo.GetByID(ctx, taskID)
}

// UpdateTaskParams holds the optional fields of a partial task update.
// Nil fields are left unchanged; double pointers distinguish "unchanged"
// from "set to null".
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	AssigneeID  **string
	DueDate     **time.Time
}

// UpdateTask applies a partial update to a task.
func (s *TaskService) UpdateTask(ctx context.Context, taskID string, params UpdateTaskParams) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	var update repository.TaskUpdate

	if params.Title != nil {
		title, err := s.validator.RequireText("title", *params.Title)
		if err != nil {
			return nil, err
		}
		update.Title = &title
	}
	if params.Description != nil {
		description, err := s.validator.RequireText("description", *params.Description)
		if err != nil {
			return nil, err
		}
		update.Description = &description
	}
	if params.Priority != nil {
		if !params.Priority.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, *params.Priority)
		}
		update.Priority = params.Priority
	}
	if params.Status != nil {
		if err := s.validator.RequireStatus(*params.Status); err != nil {
			return nil, err
		}
		update.Status = params.Status
		// completed_at is stamped exactly once, on the first completion.
		if *params.Status == domain.TaskStatusCompleted && task.CompletedAt == nil {
			now := time.Now()
			update.CompletedAt = &now
		}
	}
	if params.AssigneeID != nil {
		if *params.AssigneeID != nil {
			assignee, err := s.validator.ResolveAssignee(ctx, **params.AssigneeID)
			if err != nil {
				return nil, err
			}
			assigneeID, assigneeName := assignee.ID, assignee.Name
			idPtr, namePtr := &assigneeID, &assigneeName
			update.AssigneeID = &idPtr
			update.AssigneeName = &namePtr
		} else {
			var cleared *string
			update.AssigneeID = &cleared
			update.AssigneeName = &cleared
		}
	}
	if params.DueDate != nil {
		update.DueDate = params.DueDate
	}

	updated, err := s.taskRepo.Update(ctx, taskID, update)
	if err != nil {
		return nil, err
	}

	slog.Info("task updated", "task_id", taskID)

	return updated, nil
}

// SetStatus sets the task status to any in-set value. The enumeration is
// flat: forward moves, skips, and reopening are all legal.
func (s *TaskService) SetStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	if err := s.validator.RequireStatus(status); err != nil {
		return nil, err
	}

	task, err := s.UpdateTask(ctx, taskID, UpdateTaskParams{Status: &status})
	if err != nil {
		return nil, err
	}

	slog.Info("task status set", "task_id", taskID, "status", status)

	return task, nil
}

// DeleteTask removes a task and, via the store's cascade, its comments.
// Deleting an unknown id fails with ErrTaskNotFound; delete is not idempotent.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return err
	}

	slog.Info("task deleted", "task_id", taskID)

	return nil
}

// ForwardTask reassigns a task to another directory member, recording
// provenance and optionally appending a comment by the forwarding user.
// Reassignment and comment are one transaction: both apply or neither does.
func (s *TaskService) ForwardTask(
	ctx context.Context,
	actor *domain.User,
	taskID string,
	newAssigneeID string,
	comment string,
) (*domain.Task, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}

	assignee, err := s.validator.ResolveAssignee(ctx, newAssigneeID)
	if err != nil {
		return nil, err
	}

	if err := s.validator.CanForwardTo(task, newAssigneeID); err != nil {
		return nil, err
	}

	// Provenance note names the previous holder: the assignee when there was
	// one, otherwise the forwarding user.
	forwardedFrom := actor.Name
	if task.AssigneeName != nil {
		forwardedFrom = *task.AssigneeName
	}

	if err := s.taskRepo.Reassign(ctx, tx, taskID, assignee.ID, assignee.Name, forwardedFrom); err != nil {
		return nil, err
	}

	if trimmed := strings.TrimSpace(comment); trimmed != "" {
		err := s.commentRepo.Create(ctx, tx, &domain.Comment{
			TaskID:     taskID,
			AuthorID:   actor.ID,
			AuthorName: actor.Name,
			Content:    trimmed,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("task forwarded",
		"task_id", taskID,
		"actor_id", actor.ID,
		"new_assignee_id", assignee.ID,
		"forwarded_from", forwardedFrom,
	)

	task.AssigneeID = &assignee.ID
	task.AssigneeName = &assignee.Name
	task.ForwardedFrom = &forwardedFrom

	return task, nil
}

// AddComment appends a comment to a task. It does not mutate the task's
// status or assignee.
func (s *TaskService) AddComment(ctx context.Context, actor *domain.User, taskID, content string) (*domain.Comment, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, domain.ErrEmptyComment
	}

	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	comment := &domain.Comment{
		TaskID:     taskID,
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		Content:    trimmed,
	}
	if err := s.commentRepo.Create(ctx, tx, comment); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("comment added", "task_id", taskID, "comment_id", comment.ID)

	return comment, nil
}

// GetComments retrieves a task's comments, oldest first.
func (s *TaskService) GetComments(ctx context.Context, taskID string) ([]*domain.Comment, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByTaskID(ctx, taskID)
}

// ListTasks fetches the full task collection and applies the named filter
// for the acting user, preserving store order.
func (s *TaskService) ListTasks(ctx context.Context, actor *domain.User, filter domain.TaskFilter) ([]*domain.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterTasks(tasks, filter, actor.ID)
}
