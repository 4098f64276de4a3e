package repository

import (
	"context"
	"sync"

	"github.com/moradahub/backend-resident/internal/clock"
	"github.com/moradahub/backend-resident/internal/domain"
)

// ParcelRepository provides access to front-desk packages.
type ParcelRepository interface {
	// ListByResident returns a resident's parcels, newest arrival first
	ListByResident(ctx context.Context, residentID string, status domain.ParcelStatus) ([]*domain.Parcel, error)

	// GetByID retrieves a parcel by ID
	GetByID(ctx context.Context, id string) (*domain.Parcel, error)

	// MarkPickedUp transitions a parcel from awaiting_pickup to picked_up
	MarkPickedUp(ctx context.Context, id string) (*domain.Parcel, error)
}

type memoryParcelRepository struct {
	mu      sync.RWMutex
	parcels []*domain.Parcel
	clock   clock.Clock
}

// NewMemoryParcelRepository creates a parcel store seeded with the given packages.
func NewMemoryParcelRepository(parcels []*domain.Parcel, clk clock.Clock) ParcelRepository {
	return &memoryParcelRepository{parcels: parcels, clock: clk}
}

func (r *memoryParcelRepository) ListByResident(ctx context.Context, residentID string, status domain.ParcelStatus) ([]*domain.Parcel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Parcel, 0, len(r.parcels))
	for _, p := range r.parcels {
		if p.ResidentID != residentID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	// Seed data is already in arrival order; present newest first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *memoryParcelRepository) GetByID(ctx context.Context, id string) (*domain.Parcel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.parcels {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrParcelNotFound
}

func (r *memoryParcelRepository) MarkPickedUp(ctx context.Context, id string) (*domain.Parcel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.parcels {
		if p.ID != id {
			continue
		}
		if p.Status == domain.ParcelStatusPickedUp {
			return nil, domain.ErrParcelPickedUp
		}
		now := r.clock.Now()
		p.Status = domain.ParcelStatusPickedUp
		p.PickedUpAt = &now
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrParcelNotFound
}
