package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateBooking signals that the unique (treatment, date, patient) index
// rejected an insert. Two concurrent identical requests can both pass the
// duplicate pre-check; the index closes that race at the storage level.
var ErrDuplicateBooking = errors.New("duplicate booking for treatment, date and patient")

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("booking")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "treatment", Value: 1},
				{Key: "date", Value: 1},
				{Key: "patient", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "patient", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// FindDuplicate retrieves a booking by (treatment, date, patient).
// Returns (nil, nil) when no matching booking exists.
func (r *MongoBookingRepo) FindDuplicate(treatment, date, patient string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"treatment": treatment, "date": date, "patient": patient}

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking for %s on %s: %w", treatment, date, err)
	}
	return &booking, nil
}

// GetByDate retrieves all bookings with the given date in insertion order.
func (r *MongoBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	return r.getAll(bson.M{"date": date})
}

// GetByPatient retrieves all bookings made by the given patient email.
func (r *MongoBookingRepo) GetByPatient(patient string) ([]models.Booking, error) {
	return r.getAll(bson.M{"patient": patient})
}

func (r *MongoBookingRepo) getAll(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
