// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"fmt"
	"time"

	"vetcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByStaffAndDate returns the non-cancelled appointments for a staff
// member on the given date ("2006-01-02"). This feeds the slot engine's
// booked-interval snapshot.
func (r *MongoAppointmentRepo) GetByStaffAndDate(staffID, date string) ([]models.Appointment, error) {
	return r.find(bson.M{
		"staffId": staffID,
		"date":    date,
		"status":  bson.M{"$ne": models.AppointmentCancelled},
	})
}

// GetByClient returns a client's appointments, newest date first.
func (r *MongoAppointmentRepo) GetByClient(clientID string) ([]models.Appointment, error) {
	return r.find(bson.M{"clientId": clientID})
}

// GetByPet returns all appointments for a pet.
func (r *MongoAppointmentRepo) GetByPet(petID string) ([]models.Appointment, error) {
	return r.find(bson.M{"petId": petID})
}

// GetByDate returns all non-cancelled appointments on the given date,
// across all staff. Used by the secretary dashboard and the reminder worker.
func (r *MongoAppointmentRepo) GetByDate(date string) ([]models.Appointment, error) {
	return r.find(bson.M{
		"date":   date,
		"status": bson.M{"$ne": models.AppointmentCancelled},
	})
}

func (r *MongoAppointmentRepo) find(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}
