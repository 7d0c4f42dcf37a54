// File: vetcare/models/appointment.go
package models

import "time"

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment represents a booked visit for a pet with a staff member.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	PetID           string    `bson:"petId" json:"petId"`
	ClientID        string    `bson:"clientId" json:"clientId"`
	StaffID         string    `bson:"staffId" json:"staffId"`
	Date            string    `bson:"date" json:"date"` // "2006-01-02"
	Time            string    `bson:"time" json:"time"` // "9:00 AM" or "14:30"
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Reason          string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Status          string    `bson:"status" json:"status"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookAppointmentRequest defines the payload for creating an appointment.
type BookAppointmentRequest struct {
	PetID           string `json:"petId" binding:"required"`
	StaffID         string `json:"staffId" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes int    `json:"durationMinutes"`
	Reason          string `json:"reason"`
}

// RescheduleRequest defines the payload for moving an appointment.
type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// AvailableSlotsResponse carries the bookable start times for a staff
// member on a given date.
type AvailableSlotsResponse struct {
	StaffID string   `json:"staffId"`
	Date    string   `json:"date"`
	Slots   []string `json:"slots"` // "H:MM AM/PM", ascending
}
