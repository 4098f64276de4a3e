package dto

import (
	"time"

	"github.com/moradahub/backend-resident/internal/domain"
)

// AnnouncementResponse represents an announcement in API responses
type AnnouncementResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	FullMessage string    `json:"full_message"`
	Type        string    `json:"type"`
	Priority    string    `json:"priority"`
	Location    string    `json:"location,omitempty"`
	StartTime   string    `json:"start_time,omitempty"`
	EndTime     string    `json:"end_time,omitempty"`
	Read        bool      `json:"read"`
	PublishedAt time.Time `json:"published_at"`
}

// AnnouncementFeedResponse is the notification feed with its unread counter
type AnnouncementFeedResponse struct {
	Announcements []*AnnouncementResponse `json:"announcements"`
	UnreadCount   int                     `json:"unread_count"`
}

// FromAnnouncement converts a domain Announcement to an AnnouncementResponse
func FromAnnouncement(a *domain.Announcement) *AnnouncementResponse {
	return &AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Message:     a.Message,
		FullMessage: a.FullMessage,
		Type:        string(a.Type),
		Priority:    string(a.Priority),
		Location:    a.Location,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Read:        a.Read,
		PublishedAt: a.PublishedAt,
	}
}
