package domain

import "time"

// Comment is an append-only message on a task. Comments are owned by their
// task and removed with it; individual edit or delete is not exposed.
type Comment struct {
	ID         string
	TaskID     string
	AuthorID   string
	AuthorName string
	Content    string
	CreatedAt  time.Time
}
