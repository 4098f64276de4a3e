package service

import (
	"context"

	"github.com/moradahub/backend-resident/internal/dto"
	"github.com/moradahub/backend-resident/internal/repository"
)

// ProfileService defines the interface for the resident profile screen
type ProfileService interface {
	// GetProfile returns the resident's profile
	GetProfile(ctx context.Context, residentID string) (*dto.ProfileResponse, error)

	// UpdateProfile updates the mutable contact fields
	UpdateProfile(ctx context.Context, residentID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileService struct {
	repo repository.ResidentRepository
}

// NewProfileService creates a new profile service
func NewProfileService(repo repository.ResidentRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) GetProfile(ctx context.Context, residentID string) (*dto.ProfileResponse, error) {
	resident, err := s.repo.GetByID(ctx, residentID)
	if err != nil {
		return nil, err
	}
	return dto.FromResident(resident), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, residentID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	resident, err := s.repo.UpdateContact(ctx, residentID, req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	return dto.FromResident(resident), nil
}
