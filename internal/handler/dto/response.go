package dto

import (
	"time"

	"github.com/interactkolhapur/clubsite/internal/domain"
	"github.com/interactkolhapur/clubsite/internal/repository"
)

// TaskResponse represents a task on the wire.
type TaskResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	CreatorID     string     `json:"creator_id"`
	CreatorName   string     `json:"creator_name"`
	AssigneeID    *string    `json:"assignee_id"`
	AssigneeName  *string    `json:"assignee_name"`
	DueDate       *string    `json:"due_date"`
	ForwardedFrom *string    `json:"forwarded_from"`
	CompletedAt   *time.Time `json:"completed_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ToTaskResponse converts domain.Task to TaskResponse.
func ToTaskResponse(task *domain.Task) TaskResponse {
	var dueDate *string
	if task.DueDate != nil {
		formatted := task.DueDate.Format(DateFormat)
		dueDate = &formatted
	}

	return TaskResponse{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		Status:        string(task.Status),
		Priority:      string(task.Priority),
		CreatorID:     task.CreatorID,
		CreatorName:   task.CreatorName,
		AssigneeID:    task.AssigneeID,
		AssigneeName:  task.AssigneeName,
		DueDate:       dueDate,
		ForwardedFrom: task.ForwardedFrom,
		CompletedAt:   task.CompletedAt,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
}

// ToTaskResponses converts a slice of tasks.
func ToTaskResponses(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}

// CommentResponse represents a task comment on the wire.
type CommentResponse struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"task_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToCommentResponse converts domain.Comment to CommentResponse.
func ToCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:         comment.ID,
		TaskID:     comment.TaskID,
		AuthorID:   comment.AuthorID,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt,
	}
}

// ToCommentResponses converts a slice of comments.
func ToCommentResponses(comments []*domain.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = ToCommentResponse(comment)
	}
	return responses
}

// UserResponse represents a directory member on the wire. The token is
// never exposed.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// ToUserResponses converts a slice of users.
func ToUserResponses(users []*domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		}
	}
	return responses
}

// BoardMemberResponse represents a board member profile on the wire.
type BoardMemberResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	Bio          string    `json:"bio"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToBoardMemberResponse converts domain.BoardMember to BoardMemberResponse.
func ToBoardMemberResponse(member *domain.BoardMember) BoardMemberResponse {
	return BoardMemberResponse{
		ID:           member.ID,
		Name:         member.Name,
		Position:     member.Position,
		Bio:          member.Bio,
		ImageURL:     member.ImageURL,
		DisplayOrder: member.DisplayOrder,
		CreatedAt:    member.CreatedAt,
	}
}

// EventResponse represents an event on the wire.
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToEventResponse converts domain.Event to EventResponse.
func ToEventResponse(event *domain.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date.Format(DateFormat),
		Location:    event.Location,
		ImageURL:    event.ImageURL,
		CreatedAt:   event.CreatedAt,
	}
}

// NewsPostResponse represents a news post on the wire.
type NewsPostResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToNewsPostResponse converts domain.NewsPost to NewsPostResponse.
func ToNewsPostResponse(post *domain.NewsPost) NewsPostResponse {
	return NewsPostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		ImageURL:    post.ImageURL,
		PublishedAt: post.PublishedAt,
		CreatedAt:   post.CreatedAt,
	}
}

// GalleryImageResponse represents a gallery image on the wire.
type GalleryImageResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// ToGalleryImageResponse converts domain.GalleryImage to GalleryImageResponse.
func ToGalleryImageResponse(image *domain.GalleryImage) GalleryImageResponse {
	return GalleryImageResponse{
		ID:        image.ID,
		Title:     image.Title,
		ImageURL:  image.ImageURL,
		Category:  image.Category,
		CreatedAt: image.CreatedAt,
	}
}

// ContactMessageResponse represents a contact submission on the wire.
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ToContactMessageResponse converts domain.ContactMessage to ContactMessageResponse.
func ToContactMessageResponse(message *domain.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}

// SettingsResponse represents the site settings row on the wire.
type SettingsResponse struct {
	ActiveMembers   int       `json:"active_members"`
	TotalEvents     int       `json:"total_events"`
	LivesImpacted   int       `json:"lives_impacted"`
	AwardsWon       int       `json:"awards_won"`
	MaintenanceMode bool      `json:"maintenance_mode"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToSettingsResponse converts domain.SiteSettings to SettingsResponse.
func ToSettingsResponse(settings *domain.SiteSettings) SettingsResponse {
	return SettingsResponse{
		ActiveMembers:   settings.ActiveMembers,
		TotalEvents:     settings.TotalEvents,
		LivesImpacted:   settings.LivesImpacted,
		AwardsWon:       settings.AwardsWon,
		MaintenanceMode: settings.MaintenanceMode,
		UpdatedAt:       settings.UpdatedAt,
	}
}

// MaintenanceResponse represents the public kill switch flag.
type MaintenanceResponse struct {
	MaintenanceMode bool `json:"maintenance_mode"`
}

// DashboardResponse represents admin dashboard counts.
type DashboardResponse struct {
	TasksByStatus map[string]int `json:"tasks_by_status"`
	BoardMembers  int            `json:"board_members"`
	Events        int            `json:"events"`
	NewsPosts     int            `json:"news_posts"`
	GalleryImages int            `json:"gallery_images"`
	Messages      int            `json:"messages"`
}

// ToDashboardResponse converts repository.DashboardCounts to DashboardResponse.
func ToDashboardResponse(counts *repository.DashboardCounts) DashboardResponse {
	tasksByStatus := make(map[string]int, len(counts.TasksByStatus))
	for status, count := range counts.TasksByStatus {
		tasksByStatus[string(status)] = count
	}

	return DashboardResponse{
		TasksByStatus: tasksByStatus,
		BoardMembers:  counts.BoardMembers,
		Events:        counts.Events,
		NewsPosts:     counts.NewsPosts,
		GalleryImages: counts.GalleryImages,
		Messages:      counts.Messages,
	}
}
