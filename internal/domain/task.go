package domain

import "time"

// TaskStatus represents the status of a task.
//
// The status set is a flat enumeration, not a workflow: any in-set value is
// a legal target from any prior state (reopening a completed task is a
// normal operation). Only out-of-set values are rejected.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValid checks if the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// TaskPriority represents the priority level of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// IsValid checks if the priority is one of the allowed values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// Task represents a unit of work assigned between board members.
//
// AssigneeName and CreatorName are denormalized display names captured at
// assignment time; they may go stale if the member is later renamed.
type Task struct {
	ID            string
	Title         string
	Description   string
	Status        TaskStatus
	Priority      TaskPriority
	CreatorID     string
	CreatorName   string
	AssigneeID    *string
	AssigneeName  *string
	DueDate       *time.Time
	ForwardedFrom *string
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAssignedTo checks if the task is assigned to the given user.
func (t *Task) IsAssignedTo(userID string) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// IsCreatedBy checks if the task was created by the given user.
func (t *Task) IsCreatedBy(userID string) bool {
	return t.CreatorID == userID
}
