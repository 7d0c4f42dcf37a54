// File: vetcare/services/appointment/slots.go
package appointment

import (
	"fmt"
	"time"

	"vetcare/config"
	"vetcare/models"
	"vetcare/services/scheduling"
	"vetcare/utils"

	"go.uber.org/zap"
)

// resolveDate normalizes free-form date text from a form field.
// Today's date supplies the default year for short inputs like "3/15".
func resolveDate(text string) (time.Time, error) {
	d, ok := scheduling.ParseUserDate(text, time.Now())
	if !ok {
		return time.Time{}, fmt.Errorf("unrecognized date %q", text)
	}
	return d, nil
}

func defaultDuration() int {
	if d := config.AppConfig.DefaultAppointmentMinutes; d > 0 {
		return d
	}
	return scheduling.DefaultDurationMinutes
}

// bookedIntervals converts stored appointments into the engine's
// snapshot form. Appointments whose stored time no longer parses are
// skipped with a warning rather than blocking the whole day.
func bookedIntervals(appts []models.Appointment) []scheduling.BookedInterval {
	logger := utils.GetLogger()

	var intervals []scheduling.BookedInterval
	for _, a := range appts {
		start, ok := scheduling.ParseClockTime(a.Time)
		if !ok {
			logger.Warn("skipping appointment with unparseable time",
				zap.String("appointmentID", a.ID), zap.String("time", a.Time))
			continue
		}
		duration := a.DurationMinutes
		if duration <= 0 {
			duration = defaultDuration()
		}
		intervals = append(intervals, scheduling.BookedInterval{Start: start, Duration: duration})
	}
	return intervals
}

// AvailableSlots computes the bookable start times for a staff member.
// dateText accepts the same free-form input as any other date field.
func (s *DefaultAppointmentService) AvailableSlots(staffID, dateText string, durationMinutes int) (*models.AvailableSlotsResponse, error) {
	targetDate, err := resolveDate(dateText)
	if err != nil {
		return nil, err
	}

	member, err := s.StaffRepo.GetByID(staffID)
	if err != nil {
		return nil, fmt.Errorf("staff member not found: %w", err)
	}

	if durationMinutes <= 0 {
		durationMinutes = defaultDuration()
	}

	dateStr := targetDate.Format("2006-01-02")
	existing, err := s.Repo.GetByStaffAndDate(staffID, dateStr)
	if err != nil {
		return nil, err
	}

	slots := scheduling.ComputeAvailableSlots(member.Availability, targetDate, durationMinutes, bookedIntervals(existing))
	if slots == nil {
		slots = []string{}
	}

	return &models.AvailableSlotsResponse{
		StaffID: staffID,
		Date:    dateStr,
		Slots:   slots,
	}, nil
}
