// File: vetcare/services/staff/service.go
package staff

import (
	"fmt"
	"time"

	"vetcare/models"
)

// GetByID fetches a staff member by ID.
func (s *DefaultStaffService) GetByID(id string) (*models.Staff, error) {
	return s.Repo.GetByID(id)
}

// GetAll returns every staff member.
func (s *DefaultStaffService) GetAll() ([]models.Staff, error) {
	return s.Repo.GetAll()
}

// GetVets returns the bookable staff members.
func (s *DefaultStaffService) GetVets() ([]models.Staff, error) {
	return s.Repo.GetByRole(models.RoleVet)
}

// Update applies non-empty fields as a partial update.
func (s *DefaultStaffService) Update(staff models.Staff) (*models.Staff, error) {
	updateFields := map[string]any{
		"updatedAt": time.Now(),
	}

	if staff.Name != "" {
		updateFields["name"] = staff.Name
	}
	if staff.Email != "" {
		updateFields["email"] = staff.Email
	}
	if staff.Phone != "" {
		updateFields["phone"] = staff.Phone
	}
	if staff.Specialty != "" {
		updateFields["specialty"] = staff.Specialty
	}

	if len(updateFields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(staff.ID, updateFields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(staff.ID)
}

// Delete removes a staff member.
func (s *DefaultStaffService) Delete(id string) error {
	return s.Repo.Delete(id)
}
