package domain

import "time"

// User represents a directory member eligible to create and be assigned
// tasks. Tokens are opaque bearer credentials provisioned out of band.
type User struct {
	ID        string
	Email     string
	Name      string
	Role      string
	Token     string
	IsActive  bool
	CreatedAt time.Time
}
