package domain

import "time"

// BoardMember is a public profile shown on the board page.
type BoardMember struct {
	ID           string
	Name         string
	Position     string
	Bio          string
	ImageURL     string
	DisplayOrder int
	CreatedAt    time.Time
}

// Event is a club event, past or upcoming.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Location    string
	ImageURL    string
	CreatedAt   time.Time
}

// IsUpcoming reports whether the event date is today or later.
func (e *Event) IsUpcoming(now time.Time) bool {
	return !e.Date.Before(now.Truncate(24 * time.Hour))
}

// NewsPost is a published news article.
type NewsPost struct {
	ID          string
	Title       string
	Content     string
	ImageURL    string
	PublishedAt time.Time
	CreatedAt   time.Time
}

// GalleryImage is a photo shown on the gallery page.
type GalleryImage struct {
	ID        string
	Title     string
	ImageURL  string
	Category  string
	CreatedAt time.Time
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
