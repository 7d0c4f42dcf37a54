package appointment

import (
	"fmt"
	"testing"

	"vetcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// In-memory fakes so booking flows run without a Mongo instance.

type fakeAppointmentRepo struct {
	appts map[string]*models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepo) Create(a *models.Appointment) error {
	cp := *a
	f.appts[a.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	a, ok := f.appts[id]
	if !ok {
		return nil, fmt.Errorf("appointment with id %s not found", id)
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) GetByStaffAndDate(staffID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.StaffID == staffID && a.Date == date && a.Status != models.AppointmentCancelled {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByClient(clientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ClientID == clientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByPet(petID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.PetID == petID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByDate(date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.Date == date && a.Status != models.AppointmentCancelled {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Update(a *models.Appointment) error {
	if _, ok := f.appts[a.ID]; !ok {
		return fmt.Errorf("appointment with id %s not found", a.ID)
	}
	cp := *a
	f.appts[a.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	a, ok := f.appts[id]
	if !ok {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	for k, v := range updateDoc {
		switch k {
		case "date":
			a.Date = v.(string)
		case "time":
			a.Time = v.(string)
		case "status":
			a.Status = v.(string)
		case "notes":
			a.Notes = v.(string)
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) Delete(id string) error {
	delete(f.appts, id)
	return nil
}

type fakeStaffRepo struct {
	members map[string]*models.Staff
}

func (f *fakeStaffRepo) Create(s *models.Staff) error { f.members[s.ID] = s; return nil }

func (f *fakeStaffRepo) GetByID(id string) (*models.Staff, error) {
	s, ok := f.members[id]
	if !ok {
		return nil, fmt.Errorf("staff member with id %s not found", id)
	}
	return s, nil
}

func (f *fakeStaffRepo) GetByEmail(string) (*models.Staff, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeStaffRepo) GetByTokenHash(string) (*models.Staff, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeStaffRepo) GetAll() ([]models.Staff, error) { return nil, nil }

func (f *fakeStaffRepo) GetByRole(string) ([]models.Staff, error) { return nil, nil }

func (f *fakeStaffRepo) Update(*models.Staff) error { return nil }

func (f *fakeStaffRepo) UpdateSetDocument(string, bson.M) error { return nil }

func (f *fakeStaffRepo) Delete(string) error { return nil }

type fakePetRepo struct {
	pets map[string]*models.Pet
}

func (f *fakePetRepo) Create(p *models.Pet) error { f.pets[p.ID] = p; return nil }

func (f *fakePetRepo) GetByID(id string) (*models.Pet, error) {
	p, ok := f.pets[id]
	if !ok {
		return nil, fmt.Errorf("pet with id %s not found", id)
	}
	return p, nil
}

func (f *fakePetRepo) GetByOwner(string) ([]models.Pet, error) { return nil, nil }

func (f *fakePetRepo) GetAll() ([]models.Pet, error) { return nil, nil }

func (f *fakePetRepo) Update(*models.Pet) error { return nil }

func (f *fakePetRepo) Delete(string) error { return nil }

func newTestService() (*DefaultAppointmentService, *fakeAppointmentRepo) {
	apptRepo := newFakeAppointmentRepo()
	svc := &DefaultAppointmentService{
		Repo: apptRepo,
		StaffRepo: &fakeStaffRepo{members: map[string]*models.Staff{
			"vet-1": {
				ID:   "vet-1",
				Name: "Dr. Adams",
				Role: models.RoleVet,
				// 2024-03-18 is a Monday.
				Availability: []string{"Monday 09:00-17:00"},
			},
		}},
		PetRepo: &fakePetRepo{pets: map[string]*models.Pet{
			"pet-1": {ID: "pet-1", OwnerID: "client-1", Name: "Rex", Species: "dog"},
		}},
	}
	return svc, apptRepo
}

func TestBook_HappyPath(t *testing.T) {
	svc, _ := newTestService()

	appt, err := svc.Book(models.BookAppointmentRequest{
		PetID:   "pet-1",
		StaffID: "vet-1",
		Date:    "2024-03-18",
		Time:    "9:00 AM",
	})
	require.NoError(t, err)

	assert.Equal(t, "client-1", appt.ClientID, "owner resolved from the pet")
	assert.Equal(t, "2024-03-18", appt.Date)
	assert.Equal(t, "9:00 AM", appt.Time)
	assert.Equal(t, 30, appt.DurationMinutes)
	assert.Equal(t, models.AppointmentScheduled, appt.Status)
}

func TestBook_NormalizesTimeAndDate(t *testing.T) {
	svc, _ := newTestService()

	appt, err := svc.Book(models.BookAppointmentRequest{
		PetID:   "pet-1",
		StaffID: "vet-1",
		Date:    "3/18/2024",
		Time:    "14:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-18", appt.Date)
	assert.Equal(t, "2:30 PM", appt.Time)
}

func TestBook_RejectsTakenSlot(t *testing.T) {
	svc, _ := newTestService()

	req := models.BookAppointmentRequest{
		PetID:   "pet-1",
		StaffID: "vet-1",
		Date:    "2024-03-18",
		Time:    "9:00 AM",
	}
	_, err := svc.Book(req)
	require.NoError(t, err)

	_, err = svc.Book(req)
	assert.Error(t, err)
}

func TestBook_RejectsOffSchedule(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name string
		date string
		time string
	}{
		{"day off", "2024-03-19", "9:00 AM"},  // Tuesday, no window
		{"before opening", "2024-03-18", "8:30 AM"},
		{"off-grid start", "2024-03-18", "9:10 AM"},
		{"runs past closing", "2024-03-18", "4:45 PM"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Book(models.BookAppointmentRequest{
				PetID:   "pet-1",
				StaffID: "vet-1",
				Date:    tc.date,
				Time:    tc.time,
			})
			assert.Error(t, err)
		})
	}
}

func TestReschedule_FreesOwnSlot(t *testing.T) {
	svc, _ := newTestService()

	appt, err := svc.Book(models.BookAppointmentRequest{
		PetID:   "pet-1",
		StaffID: "vet-1",
		Date:    "2024-03-18",
		Time:    "9:00 AM",
	})
	require.NoError(t, err)

	// Moving within the same day must not collide with itself.
	moved, err := svc.Reschedule(appt.ID, models.RescheduleRequest{
		Date: "2024-03-18",
		Time: "10:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00 AM", moved.Time)

	// And the old slot is open again.
	_, err = svc.Book(models.BookAppointmentRequest{
		PetID:   "pet-1",
		StaffID: "vet-1",
		Date:    "2024-03-18",
		Time:    "9:00 AM",
	})
	assert.NoError(t, err)
}

func TestCancel_FreesSlotAndIsIdempotent(t *testing.T) {
	svc, _ := newTestService()

	req := models.BookAppointmentRequest{
		PetID:   "pet-1",
		StaffID: "vet-1",
		Date:    "2024-03-18",
		Time:    "9:00 AM",
	}
	appt, err := svc.Book(req)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(appt.ID))
	require.NoError(t, svc.Cancel(appt.ID), "second cancel is a no-op")

	_, err = svc.Book(req)
	assert.NoError(t, err, "cancelled appointment no longer blocks the slot")
}

func TestAvailableSlots_ShrinkAsBookingsLand(t *testing.T) {
	svc, _ := newTestService()

	before, err := svc.AvailableSlots("vet-1", "2024-03-18", 30)
	require.NoError(t, err)
	require.Contains(t, before.Slots, "9:00 AM")

	_, err = svc.Book(models.BookAppointmentRequest{
		PetID:   "pet-1",
		StaffID: "vet-1",
		Date:    "2024-03-18",
		Time:    "9:00 AM",
	})
	require.NoError(t, err)

	after, err := svc.AvailableSlots("vet-1", "2024-03-18", 30)
	require.NoError(t, err)
	assert.NotContains(t, after.Slots, "9:00 AM")
	assert.Len(t, after.Slots, len(before.Slots)-1)
}

func TestAvailableSlots_EmptyNotNilOnDayOff(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.AvailableSlots("vet-1", "2024-03-19", 30)
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}
