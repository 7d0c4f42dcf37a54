// File: vetcare/services/dashboard/service.go
package dashboard

import (
	"fmt"
	"time"

	"vetcare/config"
	"vetcare/models"
	"vetcare/services/scheduling"
	"vetcare/utils"

	"go.uber.org/zap"
)

// ClientDashboard gathers a pet owner's view: their pets, upcoming
// appointments and any prescriptions still running.
func (s *DefaultDashboardService) ClientDashboard(clientID string) (*models.ClientDashboard, error) {
	c, err := s.ClientRepo.GetByID(clientID)
	if err != nil {
		return nil, fmt.Errorf("client not found: %w", err)
	}

	pets, err := s.PetRepo.GetByOwner(clientID)
	if err != nil {
		return nil, err
	}

	appts, err := s.AppointmentRepo.GetByClient(clientID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	upcoming := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Status == models.AppointmentScheduled && a.Date >= today {
			upcoming = append(upcoming, a)
		}
	}

	var prescriptions []models.Prescription
	if len(pets) > 0 {
		petIDs := make([]string, len(pets))
		for i, p := range pets {
			petIDs[i] = p.ID
		}
		prescriptions, err = s.RecordsRepo.GetActivePrescriptionsByPets(petIDs, today)
		if err != nil {
			return nil, err
		}
	}

	return &models.ClientDashboard{
		Client:        *c,
		Pets:          pets,
		Upcoming:      upcoming,
		Prescriptions: prescriptions,
	}, nil
}

// SecretaryDashboard gathers the clinic-wide schedule for a date:
// every vet's appointments plus the slots still open, so the front
// desk can place walk-ins without flipping between screens.
func (s *DefaultDashboardService) SecretaryDashboard(dateText string) (*models.SecretaryDashboard, error) {
	logger := utils.GetLogger()

	targetDate, ok := scheduling.ParseUserDate(dateText, time.Now())
	if !ok {
		return nil, fmt.Errorf("unrecognized date %q", dateText)
	}
	dateStr := targetDate.Format("2006-01-02")

	vets, err := s.StaffRepo.GetByRole(models.RoleVet)
	if err != nil {
		return nil, err
	}

	duration := config.AppConfig.DefaultAppointmentMinutes
	if duration <= 0 {
		duration = scheduling.DefaultDurationMinutes
	}

	schedules := make([]models.StaffDaySchedule, 0, len(vets))
	for _, vet := range vets {
		appts, err := s.AppointmentRepo.GetByStaffAndDate(vet.ID, dateStr)
		if err != nil {
			logger.Error("failed to fetch appointments for staff",
				zap.String("staffID", vet.ID), zap.Error(err))
			continue
		}

		booked := make([]scheduling.BookedInterval, 0, len(appts))
		for _, a := range appts {
			start, ok := scheduling.ParseClockTime(a.Time)
			if !ok {
				continue
			}
			d := a.DurationMinutes
			if d <= 0 {
				d = duration
			}
			booked = append(booked, scheduling.BookedInterval{Start: start, Duration: d})
		}

		remaining := scheduling.ComputeAvailableSlots(vet.Availability, targetDate, duration, booked)
		if remaining == nil {
			remaining = []string{}
		}

		schedules = append(schedules, models.StaffDaySchedule{
			Staff:          vet,
			Appointments:   appts,
			RemainingSlots: remaining,
		})
	}

	return &models.SecretaryDashboard{
		Date:      dateStr,
		Schedules: schedules,
	}, nil
}
