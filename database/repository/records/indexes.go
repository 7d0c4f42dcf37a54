// File: database/repository/records/indexes.go
package recordsRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the record collections depend on.
func (r *MongoRecordRepo) EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	petIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "petId", Value: 1}},
	}

	if _, err := r.prescriptions.Indexes().CreateMany(ctx, []mongo.IndexModel{idIndex, petIndex}); err != nil {
		return fmt.Errorf("failed to create prescription indexes: %w", err)
	}
	if _, err := r.treatments.Indexes().CreateMany(ctx, []mongo.IndexModel{idIndex, petIndex}); err != nil {
		return fmt.Errorf("failed to create treatment indexes: %w", err)
	}
	return nil
}
