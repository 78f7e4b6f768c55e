package domain

import "time"

// SiteSettings is the single-row resource holding the public statistics
// shown on the homepage and the maintenance kill switch.
type SiteSettings struct {
	ActiveMembers   int
	TotalEvents     int
	LivesImpacted   int
	AwardsWon       int
	MaintenanceMode bool
	UpdatedAt       time.Time
}
