// File: vetcare/services/appointment/interface.go
package appointment

import (
	appointmentRepo "vetcare/database/repository/appointment"
	petRepo "vetcare/database/repository/pet"
	staffRepo "vetcare/database/repository/staff"
	"vetcare/models"
)

// AppointmentService handles booking, rescheduling and querying visits.
type AppointmentService interface {
	AvailableSlots(staffID, dateText string, durationMinutes int) (*models.AvailableSlotsResponse, error)
	Book(req models.BookAppointmentRequest) (*models.Appointment, error)
	Reschedule(id string, req models.RescheduleRequest) (*models.Appointment, error)
	Cancel(id string) error
	Complete(id, notes string) (*models.Appointment, error)

	GetByID(id string) (*models.Appointment, error)
	GetByClient(clientID string) ([]models.Appointment, error)
	GetByPet(petID string) ([]models.Appointment, error)
	GetByDate(dateText string) ([]models.Appointment, error)
}

// DefaultAppointmentService is the production AppointmentService implementation.
type DefaultAppointmentService struct {
	Repo      appointmentRepo.AppointmentRepository
	StaffRepo staffRepo.StaffRepository
	PetRepo   petRepo.PetRepository
}
