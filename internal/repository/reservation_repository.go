package repository

import (
	"context"

	"github.com/moradahub/backend-resident/internal/domain"
)

// ReservationFilter narrows List results. Zero-valued fields are ignored.
type ReservationFilter struct {
	ResidentID    string
	EnvironmentID string
	DateFrom      string // YYYY-MM-DD, inclusive
	DateTo        string // YYYY-MM-DD, inclusive
	Status        domain.ReservationStatus
}

// ReservationRepository defines the interface for reservation data access.
// Create must reject a slot conflict atomically with respect to the
// conflict check; status transitions are validated under the same guard.
type ReservationRepository interface {
	// Create inserts a new reservation, failing with ErrSlotTaken when a
	// non-cancelled reservation already occupies the same
	// (environment, date, time slot).
	Create(ctx context.Context, reservation *domain.Reservation) error

	// GetByID retrieves a reservation by ID
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)

	// List returns reservations matching the filter, in creation order
	List(ctx context.Context, filter ReservationFilter) ([]*domain.Reservation, error)

	// UpdateStatus transitions a reservation to a new status, enforcing
	// the lifecycle rules
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error

	// AppendComment appends a comment to a reservation's trail
	AppendComment(ctx context.Context, id string, comment domain.Comment) error
}
