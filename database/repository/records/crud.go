// File: database/repository/records/crud.go
package recordsRepo

import (
	"fmt"
	"time"

	"vetcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreatePrescription inserts a new prescription document.
func (r *MongoRecordRepo) CreatePrescription(p *models.Prescription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.prescriptions.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

// GetPrescriptionByID fetches a prescription by its ID.
func (r *MongoRecordRepo) GetPrescriptionByID(id string) (*models.Prescription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Prescription
	if err := r.prescriptions.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to fetch prescription with id %s: %w", id, err)
	}
	return &p, nil
}

// GetPrescriptionsByPet returns all prescriptions for a pet, newest first.
func (r *MongoRecordRepo) GetPrescriptionsByPet(petID string) ([]models.Prescription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.prescriptions.Find(ctx, bson.M{"petId": petID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query prescriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Prescription
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode prescriptions: %w", err)
	}
	return out, nil
}

// GetActivePrescriptionsByPets returns prescriptions for any of the
// given pets that have not ended before today ("2006-01-02").
func (r *MongoRecordRepo) GetActivePrescriptionsByPets(petIDs []string, today string) ([]models.Prescription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"petId": bson.M{"$in": petIDs},
		"$or": []bson.M{
			{"endDate": ""},
			{"endDate": bson.M{"$exists": false}},
			{"endDate": bson.M{"$gte": today}},
		},
	}
	cursor, err := r.prescriptions.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query active prescriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Prescription
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode active prescriptions: %w", err)
	}
	return out, nil
}

// UpdatePrescription modifies an existing prescription document.
func (r *MongoRecordRepo) UpdatePrescription(p *models.Prescription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	result, err := r.prescriptions.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update prescription with id %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("prescription with id %s not found", p.ID)
	}
	return nil
}

// DeletePrescription removes a prescription document by its ID.
func (r *MongoRecordRepo) DeletePrescription(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.prescriptions.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete prescription with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("prescription with id %s not found", id)
	}
	return nil
}

// CreateTreatment inserts a new treatment document.
func (r *MongoRecordRepo) CreateTreatment(tr *models.Treatment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	tr.CreatedAt = now
	tr.UpdatedAt = now

	if _, err := r.treatments.InsertOne(ctx, tr); err != nil {
		return fmt.Errorf("failed to create treatment: %w", err)
	}
	return nil
}

// GetTreatmentByID fetches a treatment by its ID.
func (r *MongoRecordRepo) GetTreatmentByID(id string) (*models.Treatment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tr models.Treatment
	if err := r.treatments.FindOne(ctx, bson.M{"id": id}).Decode(&tr); err != nil {
		return nil, fmt.Errorf("failed to fetch treatment with id %s: %w", id, err)
	}
	return &tr, nil
}

// GetTreatmentsByPet returns all treatments for a pet, newest first.
func (r *MongoRecordRepo) GetTreatmentsByPet(petID string) ([]models.Treatment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.treatments.Find(ctx, bson.M{"petId": petID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query treatments: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Treatment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode treatments: %w", err)
	}
	return out, nil
}

// UpdateTreatment modifies an existing treatment document.
func (r *MongoRecordRepo) UpdateTreatment(tr *models.Treatment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	tr.UpdatedAt = time.Now()
	result, err := r.treatments.UpdateOne(ctx, bson.M{"id": tr.ID}, bson.M{"$set": tr})
	if err != nil {
		return fmt.Errorf("failed to update treatment with id %s: %w", tr.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("treatment with id %s not found", tr.ID)
	}
	return nil
}

// DeleteTreatment removes a treatment document by its ID.
func (r *MongoRecordRepo) DeleteTreatment(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.treatments.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete treatment with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("treatment with id %s not found", id)
	}
	return nil
}
