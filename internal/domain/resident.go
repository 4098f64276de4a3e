package domain

import "time"

// Role represents a user role
type Role string

const (
	RoleResident Role = "resident"
	RoleManager  Role = "manager"
)

// Vehicle is a resident-registered vehicle.
type Vehicle struct {
	ID    string `json:"id"`
	Model string `json:"model"`
	Plate string `json:"plate"`
	Type  string `json:"type"`
}

// Document is a condominium document visible to the resident.
type Document struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Resident represents a registered resident account.
type Resident struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never serialize password
	Phone        string     `json:"phone"`
	Apartment    string     `json:"apartment"`
	Block        string     `json:"block"`
	Role         Role       `json:"role"`
	Vehicles     []Vehicle  `json:"vehicles"`
	Documents    []Document `json:"documents"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Claims represents JWT claims
type Claims struct {
	ResidentID string `json:"resident_id"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
}
