// File: vetcare/models/pet.go
package models

import "time"

// Pet represents a registered animal patient.
type Pet struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"`
	Name      string    `bson:"name" json:"name"`
	Species   string    `bson:"species" json:"species"` // e.g., "dog", "cat"
	Breed     string    `bson:"breed,omitempty" json:"breed,omitempty"`
	Sex       string    `bson:"sex,omitempty" json:"sex,omitempty"`
	BirthDate string    `bson:"birthDate,omitempty" json:"birthDate,omitempty"` // "2006-01-02"
	WeightKg  float64   `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
