package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	return &MongoServiceRepo{coll: database.Collection("service")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll retrieves the full catalog in insertion order.
func (r *MongoServiceRepo) GetAll() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}
