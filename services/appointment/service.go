// File: vetcare/services/appointment/service.go
package appointment

import (
	"fmt"
	"time"

	"vetcare/models"
	"vetcare/services/scheduling"
	"vetcare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Book creates an appointment after re-checking the requested slot
// against current bookings. The check is advisory: two clients racing
// for the same slot are resolved by front-desk review, not by the
// database.
func (s *DefaultAppointmentService) Book(req models.BookAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	pet, err := s.PetRepo.GetByID(req.PetID)
	if err != nil {
		return nil, fmt.Errorf("pet not found: %w", err)
	}

	member, err := s.StaffRepo.GetByID(req.StaffID)
	if err != nil {
		return nil, fmt.Errorf("staff member not found: %w", err)
	}

	targetDate, err := resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	start, ok := scheduling.ParseClockTime(req.Time)
	if !ok {
		return nil, fmt.Errorf("unrecognized time %q", req.Time)
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = defaultDuration()
	}

	dateStr := targetDate.Format("2006-01-02")
	existing, err := s.Repo.GetByStaffAndDate(req.StaffID, dateStr)
	if err != nil {
		return nil, err
	}

	if err := checkSlotOpen(member.Availability, targetDate, start, duration, bookedIntervals(existing)); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		PetID:           pet.ID,
		ClientID:        pet.OwnerID,
		StaffID:         member.ID,
		Date:            dateStr,
		Time:            scheduling.FormatClockTime(start),
		DurationMinutes: duration,
		Reason:          req.Reason,
		Status:          models.AppointmentScheduled,
	}

	if err := s.Repo.Create(appt); err != nil {
		return nil, err
	}

	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("staffID", appt.StaffID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time))
	return appt, nil
}

// checkSlotOpen verifies the requested start is one of the currently
// bookable slots for the day, using the same engine the slot picker
// shows the caller.
func checkSlotOpen(availability []string, targetDate time.Time, start, duration int, booked []scheduling.BookedInterval) error {
	want := scheduling.FormatClockTime(start)
	for _, slot := range scheduling.ComputeAvailableSlots(availability, targetDate, duration, booked) {
		if slot == want {
			return nil
		}
	}
	return fmt.Errorf("slot %s on %s is not available", want, targetDate.Format("2006-01-02"))
}

// Reschedule moves an appointment to a new date and time, re-checking
// availability against the staff member's other bookings.
func (s *DefaultAppointmentService) Reschedule(id string, req models.RescheduleRequest) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.AppointmentScheduled {
		return nil, fmt.Errorf("only scheduled appointments can be rescheduled")
	}

	member, err := s.StaffRepo.GetByID(appt.StaffID)
	if err != nil {
		return nil, fmt.Errorf("staff member not found: %w", err)
	}

	targetDate, err := resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	start, ok := scheduling.ParseClockTime(req.Time)
	if !ok {
		return nil, fmt.Errorf("unrecognized time %q", req.Time)
	}

	dateStr := targetDate.Format("2006-01-02")
	existing, err := s.Repo.GetByStaffAndDate(appt.StaffID, dateStr)
	if err != nil {
		return nil, err
	}

	// The appointment being moved must not block its own new slot.
	others := make([]models.Appointment, 0, len(existing))
	for _, e := range existing {
		if e.ID != appt.ID {
			others = append(others, e)
		}
	}

	duration := appt.DurationMinutes
	if duration <= 0 {
		duration = defaultDuration()
	}
	if err := checkSlotOpen(member.Availability, targetDate, start, duration, bookedIntervals(others)); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateSetDocument(id, map[string]any{
		"date": dateStr,
		"time": scheduling.FormatClockTime(start),
	}); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// Cancel marks an appointment cancelled, freeing its slot.
func (s *DefaultAppointmentService) Cancel(id string) error {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if appt.Status == models.AppointmentCancelled {
		return nil
	}
	return s.Repo.UpdateSetDocument(id, map[string]any{
		"status": models.AppointmentCancelled,
	})
}

// Complete marks an appointment completed and attaches visit notes.
func (s *DefaultAppointmentService) Complete(id, notes string) (*models.Appointment, error) {
	update := map[string]any{
		"status": models.AppointmentCompleted,
	}
	if notes != "" {
		update["notes"] = notes
	}
	if err := s.Repo.UpdateSetDocument(id, update); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// GetByID fetches an appointment by ID.
func (s *DefaultAppointmentService) GetByID(id string) (*models.Appointment, error) {
	return s.Repo.GetByID(id)
}

// GetByClient returns a client's appointments.
func (s *DefaultAppointmentService) GetByClient(clientID string) ([]models.Appointment, error) {
	return s.Repo.GetByClient(clientID)
}

// GetByPet returns a pet's appointments.
func (s *DefaultAppointmentService) GetByPet(petID string) ([]models.Appointment, error) {
	return s.Repo.GetByPet(petID)
}

// GetByDate returns all appointments on a date; the date may be free text.
func (s *DefaultAppointmentService) GetByDate(dateText string) ([]models.Appointment, error) {
	targetDate, err := resolveDate(dateText)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByDate(targetDate.Format("2006-01-02"))
}
