package dto

import "github.com/moradahub/backend-resident/internal/domain"

// UpdateProfileRequest updates the mutable contact fields of a resident
type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ProfileResponse represents the resident profile screen data
type ProfileResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Apartment string            `json:"apartment"`
	Block     string            `json:"block"`
	Vehicles  []domain.Vehicle  `json:"vehicles"`
	Documents []domain.Document `json:"documents"`
}

// FromResident converts a domain Resident to a ProfileResponse
func FromResident(r *domain.Resident) *ProfileResponse {
	return &ProfileResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Apartment: r.Apartment,
		Block:     r.Block,
		Vehicles:  r.Vehicles,
		Documents: r.Documents,
	}
}
