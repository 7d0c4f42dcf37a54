// File: vetcare/models/dashboard.go
package models

// ClientDashboard aggregates everything a pet owner sees on login.
type ClientDashboard struct {
	Client        Client         `json:"client"`
	Pets          []Pet          `json:"pets"`
	Upcoming      []Appointment  `json:"upcoming"`
	Prescriptions []Prescription `json:"prescriptions"`
}

// StaffDaySchedule is one staff member's schedule for a single date.
type StaffDaySchedule struct {
	Staff          Staff         `json:"staff"`
	Appointments   []Appointment `json:"appointments"`
	RemainingSlots []string      `json:"remainingSlots"` // "H:MM AM/PM", ascending
}

// SecretaryDashboard aggregates the clinic-wide view for front-desk staff.
type SecretaryDashboard struct {
	Date      string             `json:"date"` // "2006-01-02"
	Schedules []StaffDaySchedule `json:"schedules"`
}
