// File: vetcare/services/staff/interface.go
package staff

import (
	staffRepo "vetcare/database/repository/staff"
	"vetcare/models"
)

// StaffService manages clinic staff accounts and their weekly availability.
type StaffService interface {
	Register(reg models.StaffRegistration) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	RevokeToken(staffID string) error

	GetByID(id string) (*models.Staff, error)
	GetAll() ([]models.Staff, error)
	GetVets() ([]models.Staff, error)
	Update(staff models.Staff) (*models.Staff, error)
	Delete(id string) error

	SetAvailability(staffID string, windows []string) (*models.Staff, error)
}

// DefaultStaffService is the production StaffService implementation.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}
