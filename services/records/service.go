// File: vetcare/services/records/service.go
package records

import (
	"fmt"
	"time"

	"vetcare/models"
	"vetcare/services/scheduling"

	"github.com/google/uuid"
)

// AddPrescription records a new prescription for a pet. Date fields
// accept free-form text and are normalized before storage.
func (s *DefaultRecordService) AddPrescription(p models.Prescription) (*models.Prescription, error) {
	if _, err := s.PetRepo.GetByID(p.PetID); err != nil {
		return nil, fmt.Errorf("pet not found: %w", err)
	}
	if p.Medication == "" {
		return nil, fmt.Errorf("medication is required")
	}

	var err error
	if p.StartDate, err = normalizeOptionalDate(p.StartDate); err != nil {
		return nil, err
	}
	if p.EndDate, err = normalizeOptionalDate(p.EndDate); err != nil {
		return nil, err
	}

	p.ID = uuid.New().String()
	if err := s.Repo.CreatePrescription(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPrescriptionsByPet returns a pet's prescriptions, newest first.
func (s *DefaultRecordService) GetPrescriptionsByPet(petID string) ([]models.Prescription, error) {
	return s.Repo.GetPrescriptionsByPet(petID)
}

// UpdatePrescription modifies an existing prescription.
func (s *DefaultRecordService) UpdatePrescription(p models.Prescription) (*models.Prescription, error) {
	existing, err := s.Repo.GetPrescriptionByID(p.ID)
	if err != nil {
		return nil, err
	}

	if p.Medication != "" {
		existing.Medication = p.Medication
	}
	if p.Dosage != "" {
		existing.Dosage = p.Dosage
	}
	if p.Instructions != "" {
		existing.Instructions = p.Instructions
	}
	if p.StartDate != "" {
		if existing.StartDate, err = normalizeOptionalDate(p.StartDate); err != nil {
			return nil, err
		}
	}
	if p.EndDate != "" {
		if existing.EndDate, err = normalizeOptionalDate(p.EndDate); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.UpdatePrescription(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeletePrescription removes a prescription.
func (s *DefaultRecordService) DeletePrescription(id string) error {
	return s.Repo.DeletePrescription(id)
}

// AddTreatment records a procedure performed on a pet.
func (s *DefaultRecordService) AddTreatment(tr models.Treatment) (*models.Treatment, error) {
	if _, err := s.PetRepo.GetByID(tr.PetID); err != nil {
		return nil, fmt.Errorf("pet not found: %w", err)
	}
	if tr.Description == "" {
		return nil, fmt.Errorf("description is required")
	}

	var err error
	if tr.PerformedAt, err = normalizeOptionalDate(tr.PerformedAt); err != nil {
		return nil, err
	}
	if tr.FollowUpDate, err = normalizeOptionalDate(tr.FollowUpDate); err != nil {
		return nil, err
	}

	tr.ID = uuid.New().String()
	if err := s.Repo.CreateTreatment(&tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

// GetTreatmentsByPet returns a pet's treatments, newest first.
func (s *DefaultRecordService) GetTreatmentsByPet(petID string) ([]models.Treatment, error) {
	return s.Repo.GetTreatmentsByPet(petID)
}

// UpdateTreatment modifies an existing treatment.
func (s *DefaultRecordService) UpdateTreatment(tr models.Treatment) (*models.Treatment, error) {
	existing, err := s.Repo.GetTreatmentByID(tr.ID)
	if err != nil {
		return nil, err
	}

	if tr.Description != "" {
		existing.Description = tr.Description
	}
	if tr.PerformedAt != "" {
		if existing.PerformedAt, err = normalizeOptionalDate(tr.PerformedAt); err != nil {
			return nil, err
		}
	}
	if tr.FollowUpDate != "" {
		if existing.FollowUpDate, err = normalizeOptionalDate(tr.FollowUpDate); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.UpdateTreatment(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteTreatment removes a treatment.
func (s *DefaultRecordService) DeleteTreatment(id string) error {
	return s.Repo.DeleteTreatment(id)
}

func normalizeOptionalDate(text string) (string, error) {
	if text == "" {
		return "", nil
	}
	d, ok := scheduling.ParseUserDate(text, time.Now())
	if !ok {
		return "", fmt.Errorf("unrecognized date %q", text)
	}
	return d.Format("2006-01-02"), nil
}
