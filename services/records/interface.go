// File: vetcare/services/records/interface.go
package records

import (
	petRepo "vetcare/database/repository/pet"
	recordsRepo "vetcare/database/repository/records"
	"vetcare/models"
)

// RecordService manages prescriptions and treatments attached to pets.
type RecordService interface {
	AddPrescription(p models.Prescription) (*models.Prescription, error)
	GetPrescriptionsByPet(petID string) ([]models.Prescription, error)
	UpdatePrescription(p models.Prescription) (*models.Prescription, error)
	DeletePrescription(id string) error

	AddTreatment(tr models.Treatment) (*models.Treatment, error)
	GetTreatmentsByPet(petID string) ([]models.Treatment, error)
	UpdateTreatment(tr models.Treatment) (*models.Treatment, error)
	DeleteTreatment(id string) error
}

// DefaultRecordService is the production RecordService implementation.
type DefaultRecordService struct {
	Repo    recordsRepo.RecordRepository
	PetRepo petRepo.PetRepository
}
