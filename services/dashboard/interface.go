// File: vetcare/services/dashboard/interface.go
package dashboard

import (
	appointmentRepo "vetcare/database/repository/appointment"
	clientRepo "vetcare/database/repository/client"
	petRepo "vetcare/database/repository/pet"
	recordsRepo "vetcare/database/repository/records"
	staffRepo "vetcare/database/repository/staff"
	"vetcare/models"
)

// DashboardService assembles the role-specific landing views.
type DashboardService interface {
	ClientDashboard(clientID string) (*models.ClientDashboard, error)
	SecretaryDashboard(dateText string) (*models.SecretaryDashboard, error)
}

// DefaultDashboardService is the production DashboardService implementation.
type DefaultDashboardService struct {
	ClientRepo      clientRepo.ClientRepository
	StaffRepo       staffRepo.StaffRepository
	PetRepo         petRepo.PetRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	RecordsRepo     recordsRepo.RecordRepository
}
