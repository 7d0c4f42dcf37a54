// File: database/repository/records/interface.go
package recordsRepo

import (
	"context"
	"time"

	"vetcare/config"
	"vetcare/database"
	"vetcare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RecordRepository stores the medical history attached to pets:
// prescriptions and treatments live in separate collections but share
// one repository since they are always read together.
type RecordRepository interface {
	CreatePrescription(p *models.Prescription) error
	GetPrescriptionByID(id string) (*models.Prescription, error)
	GetPrescriptionsByPet(petID string) ([]models.Prescription, error)
	GetActivePrescriptionsByPets(petIDs []string, today string) ([]models.Prescription, error)
	UpdatePrescription(p *models.Prescription) error
	DeletePrescription(id string) error

	CreateTreatment(tr *models.Treatment) error
	GetTreatmentByID(id string) (*models.Treatment, error)
	GetTreatmentsByPet(petID string) ([]models.Treatment, error)
	UpdateTreatment(tr *models.Treatment) error
	DeleteTreatment(id string) error
}

type MongoRecordRepo struct {
	prescriptions *mongo.Collection
	treatments    *mongo.Collection
}

// NewMongoRecordRepo constructs a new MongoDB RecordRepository.
func NewMongoRecordRepo() *MongoRecordRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoRecordRepo{
		prescriptions: db.Collection("prescriptions"),
		treatments:    db.Collection("treatments"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
