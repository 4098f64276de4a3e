package domain

import "time"

// AnnouncementType classifies an announcement for presentation purposes.
type AnnouncementType string

const (
	AnnouncementTypeUrgent   AnnouncementType = "urgent"
	AnnouncementTypeWarning  AnnouncementType = "warning"
	AnnouncementTypeInfo     AnnouncementType = "info"
	AnnouncementTypeSuccess  AnnouncementType = "success"
	AnnouncementTypeDelivery AnnouncementType = "delivery"
)

// Priority ranks announcements and issue reports.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid reports whether the priority is one of the known levels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Announcement is an entry in the resident's notification feed.
type Announcement struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	FullMessage string           `json:"full_message"`
	Type        AnnouncementType `json:"type"`
	Priority    Priority         `json:"priority"`
	Location    string           `json:"location,omitempty"`
	StartTime   string           `json:"start_time,omitempty"`
	EndTime     string           `json:"end_time,omitempty"`
	Read        bool             `json:"read"`
	PublishedAt time.Time        `json:"published_at"`
}
