// File: vetcare/models/reminder.go
package models

// ReminderPayload is the asynq task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ClientID      string `json:"clientId"`
	PetID         string `json:"petId"`
	StaffID       string `json:"staffId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
