// File: database/repository/staff/interface.go
package staffRepo

import (
	"context"
	"time"

	"vetcare/config"
	"vetcare/database"
	"vetcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StaffRepository interface {
	Create(staff *models.Staff) error
	GetByID(id string) (*models.Staff, error)
	GetByEmail(email string) (*models.Staff, error)
	GetByTokenHash(hash string) (*models.Staff, error)
	GetAll() ([]models.Staff, error)
	GetByRole(role string) ([]models.Staff, error)
	Update(staff *models.Staff) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
}

type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() *MongoStaffRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoStaffRepo{
		coll: db.Collection("staff"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
