// File: vetcare/services/staff/availability.go
package staff

import (
	"fmt"
	"strings"
	"time"

	"vetcare/models"
	"vetcare/services/scheduling"
)

// validateWindows checks each weekly availability entry at the
// data-ownership boundary, so the slot engine never sees a window the
// clinic admin could not have meant. At most one window per weekday.
func validateWindows(windows []string) error {
	seen := make(map[string]bool, len(windows))
	for _, w := range windows {
		day, _, _, ok := scheduling.ParseWindow(w)
		if !ok {
			return fmt.Errorf("invalid availability window %q: expected \"<Weekday> <start>-<end>\"", w)
		}
		if !isWeekday(day) {
			return fmt.Errorf("invalid availability window %q: unknown weekday %q", w, day)
		}
		key := strings.ToLower(day)
		if seen[key] {
			return fmt.Errorf("duplicate availability window for %s", day)
		}
		seen[key] = true
	}
	return nil
}

func isWeekday(name string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(name, d.String()) {
			return true
		}
	}
	return false
}

// SetAvailability replaces a staff member's weekly availability windows.
func (s *DefaultStaffService) SetAvailability(staffID string, windows []string) (*models.Staff, error) {
	if err := validateWindows(windows); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateSetDocument(staffID, map[string]any{
		"availability": windows,
		"updatedAt":    time.Now(),
	}); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(staffID)
}
