package dto

import (
	"time"

	"github.com/moradahub/backend-resident/internal/domain"
)

// CreateIssueRequest represents a resident issue report
type CreateIssueRequest struct {
	Description  string `json:"description" binding:"required"`
	Priority     string `json:"priority" binding:"required"`
	LocationType string `json:"location_type" binding:"required,oneof=common_area unit"`
	CommonArea   string `json:"common_area,omitempty"`
	Block        string `json:"block,omitempty"`
	Floor        string `json:"floor,omitempty"`
	Anonymous    bool   `json:"anonymous"`
}

// AdvanceIssueRequest represents a manager request to move an issue
// through its lifecycle
type AdvanceIssueRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// IssueResponse represents an issue report in API responses
type IssueResponse struct {
	ID          string               `json:"id"`
	Description string               `json:"description"`
	Priority    string               `json:"priority"`
	Location    domain.IssueLocation `json:"location"`
	Anonymous   bool                 `json:"anonymous"`
	Status      string               `json:"status"`
	Comments    []CommentResponse    `json:"comments"`
	CreatedAt   time.Time            `json:"created_at"`
}

// FromIssue converts a domain Issue to an IssueResponse
func FromIssue(i *domain.Issue) *IssueResponse {
	comments := make([]CommentResponse, 0, len(i.Comments))
	for _, c := range i.Comments {
		comments = append(comments, CommentResponse{
			Author:    c.Author,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}
	return &IssueResponse{
		ID:          i.ID,
		Description: i.Description,
		Priority:    string(i.Priority),
		Location:    i.Location,
		Anonymous:   i.Anonymous,
		Status:      string(i.Status),
		Comments:    comments,
		CreatedAt:   i.CreatedAt,
	}
}

// FromIssues converts a slice of domain Issues
func FromIssues(issues []*domain.Issue) []*IssueResponse {
	out := make([]*IssueResponse, 0, len(issues))
	for _, i := range issues {
		out = append(out, FromIssue(i))
	}
	return out
}
