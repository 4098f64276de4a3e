package repository

import (
	"context"
	"sync"

	"github.com/moradahub/backend-resident/internal/domain"
)

// EnvironmentRepository provides read access to the amenity catalog.
// Environments are seeded at startup and immutable for the session.
type EnvironmentRepository interface {
	// List returns the full catalog in insertion order
	List(ctx context.Context) ([]*domain.Environment, error)

	// GetByRef resolves an environment by ID or exact name
	GetByRef(ctx context.Context, ref string) (*domain.Environment, error)
}

type memoryEnvironmentRepository struct {
	mu           sync.RWMutex
	environments []*domain.Environment
}

// NewMemoryEnvironmentRepository creates a catalog seeded with the given environments.
func NewMemoryEnvironmentRepository(environments []*domain.Environment) EnvironmentRepository {
	return &memoryEnvironmentRepository{environments: environments}
}

func (r *memoryEnvironmentRepository) List(ctx context.Context) ([]*domain.Environment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Environment, 0, len(r.environments))
	for _, env := range r.environments {
		clone := *env
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memoryEnvironmentRepository) GetByRef(ctx context.Context, ref string) (*domain.Environment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, env := range r.environments {
		if env.ID == ref || env.Name == ref {
			clone := *env
			return &clone, nil
		}
	}
	return nil, domain.ErrEnvironmentNotFound
}
