package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{"pending to confirmed", ReservationStatusPending, ReservationStatusConfirmed, true},
		{"pending to cancelled", ReservationStatusPending, ReservationStatusCancelled, true},
		{"confirmed to cancelled", ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{"confirmed to pending", ReservationStatusConfirmed, ReservationStatusPending, false},
		{"cancelled to pending", ReservationStatusCancelled, ReservationStatusPending, false},
		{"cancelled to confirmed", ReservationStatusCancelled, ReservationStatusConfirmed, false},
		{"cancelled to cancelled", ReservationStatusCancelled, ReservationStatusCancelled, false},
		{"pending to pending", ReservationStatusPending, ReservationStatusPending, false},
		{"unknown status", ReservationStatus("archived"), ReservationStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestReservationStatus_IsValid(t *testing.T) {
	assert.True(t, ReservationStatusPending.IsValid())
	assert.True(t, ReservationStatusConfirmed.IsValid())
	assert.True(t, ReservationStatusCancelled.IsValid())
	assert.False(t, ReservationStatus("archived").IsValid())
	assert.False(t, ReservationStatus("").IsValid())
}

func TestAllSlots(t *testing.T) {
	slots := AllSlots()

	assert.Len(t, slots, 15)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "22:00", slots[len(slots)-1])

	for _, slot := range slots {
		assert.True(t, IsValidSlot(slot), "slot %s should be valid", slot)
	}
}

func TestIsValidSlot(t *testing.T) {
	tests := []struct {
		slot string
		want bool
	}{
		{"08:00", true},
		{"22:00", true},
		{"14:00", true},
		{"07:00", false},
		{"23:00", false},
		{"14:30", false},
		{"14h", false},
		{"", false},
		{"2pm", false},
		{"25:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSlot(tt.slot))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-08-22")
	assert.NoError(t, err)
	assert.Equal(t, 2025, d.Year())

	_, err = ParseDate("22/08/2025")
	assert.Error(t, err)

	_, err = ParseDate("2025-13-40")
	assert.Error(t, err)
}

func TestReservation_BelongsToResident(t *testing.T) {
	r := &Reservation{ResidentID: "res-001"}
	assert.True(t, r.BelongsToResident("res-001"))
	assert.False(t, r.BelongsToResident("res-002"))
}
