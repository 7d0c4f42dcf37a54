// File: vetcare/models/staff.go
package models

import "time"

// Staff roles.
const (
	RoleVet       = "vet"
	RoleSecretary = "secretary"
)

// Staff represents a clinic staff member (veterinarian or secretary).
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string    `bson:"role" json:"role"` // "vet" or "secretary"
	Specialty    string    `bson:"specialty,omitempty" json:"specialty,omitempty"`
	// Availability holds one weekly window per working day,
	// e.g. "Monday 09:00-17:00". Edited by clinic administration,
	// read-only to the scheduling engine.
	Availability []string  `bson:"availability,omitempty" json:"availability,omitempty"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// StaffRegistration defines the payload for registering a staff member.
type StaffRegistration struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Password     string   `json:"password" binding:"required,min=8"`
	Phone        string   `json:"phone"`
	Role         string   `json:"role" binding:"required,oneof=vet secretary"`
	Specialty    string   `json:"specialty"`
	Availability []string `json:"availability"`
}

// SetAvailabilityRequest defines the payload for replacing a staff
// member's weekly availability windows.
type SetAvailabilityRequest struct {
	Availability []string `json:"availability" binding:"required"`
}
