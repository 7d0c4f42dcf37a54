// File: vetcare/services/pet/service.go
package pet

import (
	"fmt"
	"time"

	"vetcare/models"
	"vetcare/services/scheduling"
	"vetcare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Register adds a pet to the registry. A birth date entered as free
// text is normalized to "2006-01-02" before storage.
func (s *DefaultPetService) Register(p models.Pet) (*models.Pet, error) {
	logger := utils.GetLogger()

	if p.OwnerID == "" {
		return nil, fmt.Errorf("pet must have an owner")
	}
	if p.Name == "" || p.Species == "" {
		return nil, fmt.Errorf("pet name and species are required")
	}

	if p.BirthDate != "" {
		normalized, err := normalizeDate(p.BirthDate)
		if err != nil {
			return nil, err
		}
		p.BirthDate = normalized
	}

	p.ID = uuid.New().String()
	if err := s.Repo.Create(&p); err != nil {
		return nil, err
	}

	logger.Info("pet registered", zap.String("petID", p.ID), zap.String("ownerID", p.OwnerID))
	return &p, nil
}

// GetByID fetches a pet by ID.
func (s *DefaultPetService) GetByID(id string) (*models.Pet, error) {
	return s.Repo.GetByID(id)
}

// GetByOwner returns a client's pets.
func (s *DefaultPetService) GetByOwner(ownerID string) ([]models.Pet, error) {
	return s.Repo.GetByOwner(ownerID)
}

// GetAll returns every registered pet.
func (s *DefaultPetService) GetAll() ([]models.Pet, error) {
	return s.Repo.GetAll()
}

// Update modifies a pet record. The stored owner is preserved.
func (s *DefaultPetService) Update(p models.Pet) (*models.Pet, error) {
	existing, err := s.Repo.GetByID(p.ID)
	if err != nil {
		return nil, err
	}

	if p.Name != "" {
		existing.Name = p.Name
	}
	if p.Species != "" {
		existing.Species = p.Species
	}
	if p.Breed != "" {
		existing.Breed = p.Breed
	}
	if p.Sex != "" {
		existing.Sex = p.Sex
	}
	if p.BirthDate != "" {
		normalized, err := normalizeDate(p.BirthDate)
		if err != nil {
			return nil, err
		}
		existing.BirthDate = normalized
	}
	if p.WeightKg != 0 {
		existing.WeightKg = p.WeightKg
	}
	if p.Notes != "" {
		existing.Notes = p.Notes
	}

	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a pet from the registry.
func (s *DefaultPetService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func normalizeDate(text string) (string, error) {
	d, ok := scheduling.ParseUserDate(text, time.Now())
	if !ok {
		return "", fmt.Errorf("unrecognized date %q", text)
	}
	return d.Format("2006-01-02"), nil
}
