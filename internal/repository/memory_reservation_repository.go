package repository

import (
	"context"
	"sync"

	"github.com/moradahub/backend-resident/internal/clock"
	"github.com/moradahub/backend-resident/internal/domain"
)

// memoryReservationRepository implements ReservationRepository with an
// in-process collection. All mutations run under a single mutex, so the
// conflict check and the insert cannot interleave.
type memoryReservationRepository struct {
	mu           sync.RWMutex
	reservations []*domain.Reservation
	byID         map[string]*domain.Reservation
	clock        clock.Clock
}

// NewMemoryReservationRepository creates an empty in-memory reservation store.
func NewMemoryReservationRepository(clk clock.Clock) ReservationRepository {
	return &memoryReservationRepository{
		byID:  make(map[string]*domain.Reservation),
		clock: clk,
	}
}

func (r *memoryReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reservations {
		if existing.EnvironmentID == reservation.EnvironmentID &&
			existing.Date == reservation.Date &&
			existing.TimeSlot == reservation.TimeSlot &&
			!existing.IsCancelled() {
			return domain.ErrSlotTaken
		}
	}

	stored := cloneReservation(reservation)
	r.reservations = append(r.reservations, stored)
	r.byID[stored.ID] = stored
	return nil
}

func (r *memoryReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return cloneReservation(stored), nil
}

func (r *memoryReservationRepository) List(ctx context.Context, filter ReservationFilter) ([]*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Reservation, 0, len(r.reservations))
	for _, stored := range r.reservations {
		if !matchesFilter(stored, filter) {
			continue
		}
		out = append(out, cloneReservation(stored))
	}
	return out, nil
}

func (r *memoryReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	if stored.IsCancelled() && status == domain.ReservationStatusCancelled {
		return domain.ErrAlreadyCancelled
	}
	if !stored.Status.CanTransition(status) {
		return domain.ErrInvalidTransition
	}

	stored.Status = status
	stored.UpdatedAt = r.clock.Now()
	return nil
}

func (r *memoryReservationRepository) AppendComment(ctx context.Context, id string, comment domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	stored.Comments = append(stored.Comments, comment)
	stored.UpdatedAt = r.clock.Now()
	return nil
}

func matchesFilter(reservation *domain.Reservation, filter ReservationFilter) bool {
	if filter.ResidentID != "" && reservation.ResidentID != filter.ResidentID {
		return false
	}
	if filter.EnvironmentID != "" && reservation.EnvironmentID != filter.EnvironmentID {
		return false
	}
	// Dates are YYYY-MM-DD, so lexical order is chronological order.
	if filter.DateFrom != "" && reservation.Date < filter.DateFrom {
		return false
	}
	if filter.DateTo != "" && reservation.Date > filter.DateTo {
		return false
	}
	if filter.Status != "" && reservation.Status != filter.Status {
		return false
	}
	return true
}

func cloneReservation(reservation *domain.Reservation) *domain.Reservation {
	clone := *reservation
	clone.Comments = make([]domain.Comment, len(reservation.Comments))
	copy(clone.Comments, reservation.Comments)
	return &clone
}
