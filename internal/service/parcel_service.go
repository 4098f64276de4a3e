package service

import (
	"context"

	"github.com/moradahub/backend-resident/internal/domain"
	"github.com/moradahub/backend-resident/internal/dto"
	"github.com/moradahub/backend-resident/internal/repository"
)

// ParcelService defines the interface for front-desk package tracking
type ParcelService interface {
	// ListParcels returns the resident's packages, optionally filtered by status
	ListParcels(ctx context.Context, residentID, status string) ([]*dto.ParcelResponse, error)

	// MarkPickedUp records that the resident collected a package
	MarkPickedUp(ctx context.Context, id, residentID string) (*dto.ParcelResponse, error)
}

type parcelService struct {
	repo repository.ParcelRepository
}

// NewParcelService creates a new parcel service
func NewParcelService(repo repository.ParcelRepository) ParcelService {
	return &parcelService{repo: repo}
}

func (s *parcelService) ListParcels(ctx context.Context, residentID, status string) ([]*dto.ParcelResponse, error) {
	parcels, err := s.repo.ListByResident(ctx, residentID, domain.ParcelStatus(status))
	if err != nil {
		return nil, err
	}
	return dto.FromParcels(parcels), nil
}

func (s *parcelService) MarkPickedUp(ctx context.Context, id, residentID string) (*dto.ParcelResponse, error) {
	parcel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if parcel.ResidentID != residentID {
		return nil, domain.ErrNotOwner
	}

	updated, err := s.repo.MarkPickedUp(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromParcel(updated), nil
}
