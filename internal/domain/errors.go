package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Task errors
	ErrTaskNotFound         = errors.New("task not found")
	ErrUnknownAssignee      = errors.New("assignee is not a directory member")
	ErrInvalidForwardTarget = errors.New("cannot forward task to its creator")

	// Validation errors
	ErrValidation      = errors.New("validation failed")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidFilter   = errors.New("invalid task filter")
	ErrEmptyComment    = errors.New("comment content is required")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user is inactive")
	ErrInvalidToken = errors.New("invalid authentication token")

	// Content errors
	ErrBoardMemberNotFound  = errors.New("board member not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrNewsPostNotFound     = errors.New("news post not found")
	ErrGalleryImageNotFound = errors.New("gallery image not found")
	ErrMessageNotFound      = errors.New("contact message not found")

	// Store errors
	ErrStoreUnavailable = errors.New("store unavailable")
)
