// File: database/repository/pet/interface.go
package petRepo

import (
	"context"
	"time"

	"vetcare/config"
	"vetcare/database"
	"vetcare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PetRepository interface {
	Create(pet *models.Pet) error
	GetByID(id string) (*models.Pet, error)
	GetByOwner(ownerID string) ([]models.Pet, error)
	GetAll() ([]models.Pet, error)
	Update(pet *models.Pet) error
	Delete(id string) error
}

type MongoPetRepo struct {
	coll *mongo.Collection
}

// NewMongoPetRepo constructs a new MongoDB PetRepository.
func NewMongoPetRepo() *MongoPetRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoPetRepo{
		coll: db.Collection("pets"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
