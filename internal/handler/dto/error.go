package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/interactkolhapur/clubsite/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	// Not found
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "TASK_NOT_FOUND", message
	case errors.Is(err, domain.ErrBoardMemberNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrNewsPostNotFound),
		errors.Is(err, domain.ErrGalleryImageNotFound),
		errors.Is(err, domain.ErrMessageNotFound):
		return http.StatusNotFound, "NOT_FOUND", message

	// Referential integrity against the user directory
	case errors.Is(err, domain.ErrUnknownAssignee):
		return http.StatusUnprocessableEntity, "UNKNOWN_ASSIGNEE", message
	case errors.Is(err, domain.ErrInvalidForwardTarget):
		return http.StatusUnprocessableEntity, "INVALID_FORWARD_TARGET", message

	// Validation
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, "INVALID_STATUS", message
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrEmptyComment):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message

	// Auth
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, "INVALID_TOKEN", message
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusUnauthorized, "USER_INACTIVE", message
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "INVALID_TOKEN", message

	// Store
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "STORE_UNAVAILABLE", message

	// Default: internal server error
	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
