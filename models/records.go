// File: vetcare/models/records.go
package models

import "time"

// Prescription represents medication prescribed to a pet.
type Prescription struct {
	ID            string    `bson:"id" json:"id"`
	PetID         string    `bson:"petId" json:"petId"`
	StaffID       string    `bson:"staffId" json:"staffId"`
	AppointmentID string    `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Medication    string    `bson:"medication" json:"medication"`
	Dosage        string    `bson:"dosage,omitempty" json:"dosage,omitempty"`
	Instructions  string    `bson:"instructions,omitempty" json:"instructions,omitempty"`
	StartDate     string    `bson:"startDate,omitempty" json:"startDate,omitempty"` // "2006-01-02"
	EndDate       string    `bson:"endDate,omitempty" json:"endDate,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Treatment represents a procedure performed on a pet.
type Treatment struct {
	ID            string    `bson:"id" json:"id"`
	PetID         string    `bson:"petId" json:"petId"`
	StaffID       string    `bson:"staffId" json:"staffId"`
	AppointmentID string    `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Description   string    `bson:"description" json:"description"`
	PerformedAt   string    `bson:"performedAt,omitempty" json:"performedAt,omitempty"` // "2006-01-02"
	FollowUpDate  string    `bson:"followUpDate,omitempty" json:"followUpDate,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
