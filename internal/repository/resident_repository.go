package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/moradahub/backend-resident/internal/clock"
	"github.com/moradahub/backend-resident/internal/domain"
)

// ResidentRepository provides access to resident accounts.
type ResidentRepository interface {
	// GetByID retrieves a resident by ID
	GetByID(ctx context.Context, id string) (*domain.Resident, error)

	// GetByEmail retrieves a resident by email (case-insensitive)
	GetByEmail(ctx context.Context, email string) (*domain.Resident, error)

	// UpdateContact updates the mutable contact fields of a resident
	UpdateContact(ctx context.Context, id, name, phone string) (*domain.Resident, error)
}

type memoryResidentRepository struct {
	mu        sync.RWMutex
	residents []*domain.Resident
	clock     clock.Clock
}

// NewMemoryResidentRepository creates a resident store seeded with the given accounts.
func NewMemoryResidentRepository(residents []*domain.Resident, clk clock.Clock) ResidentRepository {
	return &memoryResidentRepository{residents: residents, clock: clk}
}

func (r *memoryResidentRepository) GetByID(ctx context.Context, id string) (*domain.Resident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, resident := range r.residents {
		if resident.ID == id {
			return cloneResident(resident), nil
		}
	}
	return nil, domain.ErrResidentNotFound
}

func (r *memoryResidentRepository) GetByEmail(ctx context.Context, email string) (*domain.Resident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, resident := range r.residents {
		if strings.EqualFold(resident.Email, email) {
			return cloneResident(resident), nil
		}
	}
	return nil, domain.ErrResidentNotFound
}

func (r *memoryResidentRepository) UpdateContact(ctx context.Context, id, name, phone string) (*domain.Resident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, resident := range r.residents {
		if resident.ID == id {
			if name != "" {
				resident.Name = name
			}
			if phone != "" {
				resident.Phone = phone
			}
			resident.UpdatedAt = r.clock.Now()
			return cloneResident(resident), nil
		}
	}
	return nil, domain.ErrResidentNotFound
}

func cloneResident(resident *domain.Resident) *domain.Resident {
	clone := *resident
	clone.Vehicles = make([]domain.Vehicle, len(resident.Vehicles))
	copy(clone.Vehicles, resident.Vehicles)
	clone.Documents = make([]domain.Document, len(resident.Documents))
	copy(clone.Documents, resident.Documents)
	return &clone
}
