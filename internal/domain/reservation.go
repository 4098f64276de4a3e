package domain

import (
	"fmt"
	"time"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

var validReservationNext = map[ReservationStatus]map[ReservationStatus]bool{
	ReservationStatusPending:   {ReservationStatusConfirmed: true, ReservationStatusCancelled: true},
	ReservationStatusConfirmed: {ReservationStatusCancelled: true},
	ReservationStatusCancelled: {},
}

// CanTransition reports whether a reservation may move from one status to another.
func (s ReservationStatus) CanTransition(to ReservationStatus) bool {
	return validReservationNext[s][to]
}

// IsValid reports whether the status is one of the known states.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	}
	return false
}

// Comment is a single entry in a reservation's append-only comment trail.
type Comment struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Reservation represents a booking request against one environment.
type Reservation struct {
	ID               string            `json:"id"`
	ResidentID       string            `json:"resident_id"`
	EnvironmentID    string            `json:"environment_id"`
	EnvironmentName  string            `json:"environment_name"`
	Date             string            `json:"date"`      // YYYY-MM-DD, local wall-clock date
	TimeSlot         string            `json:"time_slot"` // HH:00, within the daily window
	Status           ReservationStatus `json:"status"`
	ConfirmationCode string            `json:"confirmation_code"`
	Comments         []Comment         `json:"comments"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// IsCancelled reports whether the reservation has been cancelled.
func (r *Reservation) IsCancelled() bool {
	return r.Status == ReservationStatusCancelled
}

// BelongsToResident reports whether the reservation was made by the given resident.
func (r *Reservation) BelongsToResident(residentID string) bool {
	return r.ResidentID == residentID
}

// Daily reservation window: hourly slots from 08:00 to 22:00 inclusive.
const (
	FirstSlotHour = 8
	LastSlotHour  = 22
	DateLayout    = "2006-01-02"
)

// AllSlots returns every slot of the daily window in chronological order.
func AllSlots() []string {
	slots := make([]string, 0, LastSlotHour-FirstSlotHour+1)
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// IsValidSlot reports whether the value is an hour-aligned slot inside the window.
func IsValidSlot(slot string) bool {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return false
	}
	if t.Minute() != 0 {
		return false
	}
	return t.Hour() >= FirstSlotHour && t.Hour() <= LastSlotHour
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}
