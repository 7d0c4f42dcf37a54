// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"vetcare/config"
	"vetcare/database"
	"vetcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	GetByStaffAndDate(staffID, date string) ([]models.Appointment, error)
	GetByClient(clientID string) ([]models.Appointment, error)
	GetByPet(petID string) ([]models.Appointment, error)
	GetByDate(date string) ([]models.Appointment, error)
	Update(appt *models.Appointment) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
}

type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
