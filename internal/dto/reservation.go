package dto

import (
	"time"

	"github.com/moradahub/backend-resident/internal/domain"
)

// CreateReservationRequest represents a request to reserve an environment slot
type CreateReservationRequest struct {
	// EnvironmentRef accepts the environment ID or its exact name.
	EnvironmentRef string `json:"environment_ref" binding:"required"`
	Date           string `json:"date" binding:"required"`      // YYYY-MM-DD
	TimeSlot       string `json:"time_slot" binding:"required"` // HH:00
}

// AddCommentRequest represents a request to append a comment
type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// AdvanceStatusRequest represents a manager request to move a reservation
// through its lifecycle
type AdvanceStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ReservationResponse represents a reservation in API responses
type ReservationResponse struct {
	ID               string            `json:"id"`
	EnvironmentID    string            `json:"environment_id"`
	EnvironmentName  string            `json:"environment_name"`
	Date             string            `json:"date"`
	TimeSlot         string            `json:"time_slot"`
	Status           string            `json:"status"`
	ConfirmationCode string            `json:"confirmation_code"`
	Comments         []CommentResponse `json:"comments"`
	CreatedAt        time.Time         `json:"created_at"`
}

// AvailabilityResponse lists the free slots of an environment on a date
type AvailabilityResponse struct {
	EnvironmentID  string   `json:"environment_id"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"available_slots"`
}

// FromReservation converts a domain Reservation to a ReservationResponse
func FromReservation(r *domain.Reservation) *ReservationResponse {
	comments := make([]CommentResponse, 0, len(r.Comments))
	for _, c := range r.Comments {
		comments = append(comments, CommentResponse{
			Author:    c.Author,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}
	return &ReservationResponse{
		ID:               r.ID,
		EnvironmentID:    r.EnvironmentID,
		EnvironmentName:  r.EnvironmentName,
		Date:             r.Date,
		TimeSlot:         r.TimeSlot,
		Status:           string(r.Status),
		ConfirmationCode: r.ConfirmationCode,
		Comments:         comments,
		CreatedAt:        r.CreatedAt,
	}
}

// FromReservations converts a slice of domain Reservations
func FromReservations(reservations []*domain.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, FromReservation(r))
	}
	return out
}
