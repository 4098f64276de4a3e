package dto

import (
	"time"

	"github.com/moradahub/backend-resident/internal/domain"
)

// ParcelResponse represents a front-desk package in API responses
type ParcelResponse struct {
	ID           string     `json:"id"`
	Store        string     `json:"store"`
	TrackingCode string     `json:"tracking_code"`
	Status       string     `json:"status"`
	ArrivedAt    time.Time  `json:"arrived_at"`
	PickedUpAt   *time.Time `json:"picked_up_at,omitempty"`
}

// FromParcel converts a domain Parcel to a ParcelResponse
func FromParcel(p *domain.Parcel) *ParcelResponse {
	return &ParcelResponse{
		ID:           p.ID,
		Store:        p.Store,
		TrackingCode: p.TrackingCode,
		Status:       string(p.Status),
		ArrivedAt:    p.ArrivedAt,
		PickedUpAt:   p.PickedUpAt,
	}
}

// FromParcels converts a slice of domain Parcels
func FromParcels(parcels []*domain.Parcel) []*ParcelResponse {
	out := make([]*ParcelResponse, 0, len(parcels))
	for _, p := range parcels {
		out = append(out, FromParcel(p))
	}
	return out
}
