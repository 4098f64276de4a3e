package domain

import "errors"

// Domain errors
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotTaken           = errors.New("time slot already reserved")
	ErrInvalidSlot         = errors.New("invalid date or time slot")
	ErrAlreadyCancelled    = errors.New("reservation already cancelled")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNotOwner            = errors.New("resource does not belong to resident")

	// Environment errors
	ErrEnvironmentNotFound    = errors.New("environment not found")
	ErrEnvironmentUnavailable = errors.New("environment is not available for reservation")

	// Resident errors
	ErrResidentNotFound   = errors.New("resident not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// Announcement errors
	ErrAnnouncementNotFound = errors.New("announcement not found")

	// Parcel errors
	ErrParcelNotFound = errors.New("parcel not found")
	ErrParcelPickedUp = errors.New("parcel already picked up")

	// Issue errors
	ErrIssueNotFound = errors.New("issue not found")

	// Validation errors
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrEmptyAuthor      = errors.New("comment author is required")
	ErrEmptyComment     = errors.New("comment text is required")
)

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrReservationNotFound) ||
		errors.Is(err, ErrEnvironmentNotFound) ||
		errors.Is(err, ErrResidentNotFound) ||
		errors.Is(err, ErrAnnouncementNotFound) ||
		errors.Is(err, ErrParcelNotFound) ||
		errors.Is(err, ErrIssueNotFound)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrSlotTaken) ||
		errors.Is(err, ErrAlreadyCancelled) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrEnvironmentUnavailable) ||
		errors.Is(err, ErrParcelPickedUp)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidSlot) ||
		errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrInvalidPriority) ||
		errors.Is(err, ErrEmptyAuthor) ||
		errors.Is(err, ErrEmptyComment)
}

// IsAuthError checks if the error is an authentication error
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired)
}
