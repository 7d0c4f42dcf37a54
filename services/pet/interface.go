// File: vetcare/services/pet/interface.go
package pet

import (
	petRepo "vetcare/database/repository/pet"
	"vetcare/models"
)

// PetService manages the animal-patient registry.
type PetService interface {
	Register(p models.Pet) (*models.Pet, error)
	GetByID(id string) (*models.Pet, error)
	GetByOwner(ownerID string) ([]models.Pet, error)
	GetAll() ([]models.Pet, error)
	Update(p models.Pet) (*models.Pet, error)
	Delete(id string) error
}

// DefaultPetService is the production PetService implementation.
type DefaultPetService struct {
	Repo petRepo.PetRepository
}
