// File: database/repository/client/interface.go
package clientRepo

import (
	"context"
	"time"

	"vetcare/config"
	"vetcare/database"
	"vetcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ClientRepository interface {
	Create(client *models.Client) error
	GetByID(id string) (*models.Client, error)
	GetByEmail(email string) (*models.Client, error)
	GetByTokenHash(hash string) (*models.Client, error)
	GetAll() ([]models.Client, error)
	Update(client *models.Client) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
}

type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() *MongoClientRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoClientRepo{
		coll: db.Collection("clients"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
