package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo creates a new instance of DoctorRepository using MongoDB.
func NewMongoDoctorRepo() DoctorRepository {
	return &MongoDoctorRepo{coll: database.Collection("doctors")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new doctor document.
func (r *MongoDoctorRepo) Create(doctor *models.Doctor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

// GetAll retrieves all doctors.
func (r *MongoDoctorRepo) GetAll() ([]models.Doctor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	for cursor.Next(ctx) {
		var d models.Doctor
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}

// DeleteByEmail removes a doctor document by email.
func (r *MongoDoctorRepo) DeleteByEmail(email string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("failed to delete doctor with email %s: %w", email, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("doctor with email %s not found", email)
	}
	return nil
}
