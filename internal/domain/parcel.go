package domain

import "time"

// ParcelStatus represents the front-desk state of a package.
type ParcelStatus string

const (
	ParcelStatusAwaitingPickup ParcelStatus = "awaiting_pickup"
	ParcelStatusPickedUp       ParcelStatus = "picked_up"
)

// Parcel represents a package received at the front desk for a resident.
type Parcel struct {
	ID           string       `json:"id"`
	ResidentID   string       `json:"resident_id"`
	Store        string       `json:"store"`
	TrackingCode string       `json:"tracking_code"`
	Status       ParcelStatus `json:"status"`
	ArrivedAt    time.Time    `json:"arrived_at"`
	PickedUpAt   *time.Time   `json:"picked_up_at,omitempty"`
}
