package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/interactkolhapur/clubsite/internal/domain"
)

// DateFormat is the wire format for calendar dates (no time component).
const DateFormat = "2006-01-02"

// ParseDate parses an optional YYYY-MM-DD date string.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(DateFormat, value)
	if err != nil {
		return nil, fmt.Errorf("%w: due_date must be YYYY-MM-DD", domain.ErrValidation)
	}
	return &date, nil
}

// CreateTaskRequest represents the request body for POST /tasks.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority,omitempty"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
	DueDate     string  `json:"due_date,omitempty"`
}

// UpdateTaskRequest represents the request body for PATCH /tasks/{id}.
// Fields absent from the body are left unchanged; assignee_id and due_date
// may be sent as explicit null to clear them.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssigneeID  *string `json:"assignee_id"`
	DueDate     *string `json:"due_date"`

	// present records which keys appeared in the body, so that an explicit
	// null can be told apart from an omitted field.
	present map[string]bool
}

// UnmarshalJSON records key presence alongside the decoded fields.
func (r *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateTaskRequest
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*r = UpdateTaskRequest(decoded)
	r.present = make(map[string]bool, len(keys))
	for key := range keys {
		r.present[key] = true
	}
	return nil
}

// Has reports whether the key appeared in the request body.
func (r *UpdateTaskRequest) Has(key string) bool {
	return r.present[key]
}

// SetStatusRequest represents the request body for PATCH /tasks/{id}/status.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// ForwardTaskRequest represents the request body for POST /tasks/{id}/forward.
type ForwardTaskRequest struct {
	AssigneeID string `json:"assignee_id"`
	Comment    string `json:"comment,omitempty"`
}

// AddCommentRequest represents the request body for POST /tasks/{id}/comments.
type AddCommentRequest struct {
	Content string `json:"content"`
}

// ContactRequest represents the public contact form body.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// BoardMemberRequest represents the body for board member create/update.
type BoardMemberRequest struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	Bio          string `json:"bio,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	DisplayOrder int    `json:"display_order,omitempty"`
}

// EventRequest represents the body for event create/update.
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Location    string `json:"location,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// NewsPostRequest represents the body for news post create/update.
type NewsPostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// GalleryImageRequest represents the body for gallery image create.
type GalleryImageRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Category string `json:"category,omitempty"`
}

// SettingsRequest represents the body for PUT /settings.
type SettingsRequest struct {
	ActiveMembers   int  `json:"active_members"`
	TotalEvents     int  `json:"total_events"`
	LivesImpacted   int  `json:"lives_impacted"`
	AwardsWon       int  `json:"awards_won"`
	MaintenanceMode bool `json:"maintenance_mode"`
}
