// File: database/repository/pet/petMongoCrud.go
package petRepo

import (
	"fmt"
	"time"

	"vetcare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new pet document.
func (r *MongoPetRepo) Create(pet *models.Pet) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	pet.CreatedAt = now
	pet.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, pet); err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

// GetByID fetches a pet by its ID.
func (r *MongoPetRepo) GetByID(id string) (*models.Pet, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pet models.Pet
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pet); err != nil {
		return nil, fmt.Errorf("failed to fetch pet with id %s: %w", id, err)
	}
	return &pet, nil
}

// GetByOwner returns every pet registered to the given client.
func (r *MongoPetRepo) GetByOwner(ownerID string) ([]models.Pet, error) {
	return r.find(bson.M{"ownerId": ownerID})
}

// GetAll returns every registered pet.
func (r *MongoPetRepo) GetAll() ([]models.Pet, error) {
	return r.find(bson.M{})
}

func (r *MongoPetRepo) find(filter bson.M) ([]models.Pet, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query pets: %w", err)
	}
	defer cursor.Close(ctx)

	var pets []models.Pet
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("failed to decode pets: %w", err)
	}
	return pets, nil
}

// Update modifies an existing pet document.
func (r *MongoPetRepo) Update(pet *models.Pet) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pet.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": pet.ID}, bson.M{"$set": pet})
	if err != nil {
		return fmt.Errorf("failed to update pet with id %s: %w", pet.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("pet with id %s not found", pet.ID)
	}
	return nil
}

// Delete removes a pet document by its ID.
func (r *MongoPetRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete pet with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("pet with id %s not found", id)
	}
	return nil
}
