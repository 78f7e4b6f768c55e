package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/interactkolhapur/clubsite/internal/domain"
	"github.com/interactkolhapur/clubsite/internal/repository"
)

// Validator handles input and referential validation for task operations.
type Validator struct {
	userRepo *repository.UserRepository
}

// NewValidator creates a new Validator.
func NewValidator(userRepo *repository.UserRepository) *Validator {
	return &Validator{
		userRepo: userRepo,
	}
}

// RequireText validates that a text field is non-empty after trimming and
// returns the trimmed value.
func (v *Validator) RequireText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	return trimmed, nil
}

// NormalizePriority validates a priority value, defaulting empty to medium.
func (v *Validator) NormalizePriority(priority domain.TaskPriority) (domain.TaskPriority, error) {
	if priority == "" {
		return domain.TaskPriorityMedium, nil
	}
	if !priority.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPriority, priority)
	}
	return priority, nil
}

// RequireStatus validates a status value against the enumerated set.
// Any in-set value is a legal target regardless of the task's current status.
func (v *Validator) RequireStatus(status domain.TaskStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	return nil
}

// ResolveAssignee checks that the assignee resolves to a directory member at
// the time of assignment and returns the member.
func (v *Validator) ResolveAssignee(ctx context.Context, userID string) (*domain.User, error) {
	user, err := v.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAssignee, userID)
		}
		return nil, err
	}
	return user, nil
}

// CanForwardTo rejects forwarding a task back to its creator.
func (v *Validator) CanForwardTo(task *domain.Task, newAssigneeID string) error {
	if task.CreatorID == newAssigneeID {
		return fmt.Errorf("%w: task %s was created by %s", domain.ErrInvalidForwardTarget, task.ID, newAssigneeID)
	}
	return nil
}
