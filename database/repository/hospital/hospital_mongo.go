package hospitalRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/database"
	"github.com/itssanjain-collab/surgery-hub-connect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHospitalRepo implements HospitalRepository using MongoDB.
type MongoHospitalRepo struct {
	coll *mongo.Collection
}

// NewMongoHospitalRepo creates a new instance of HospitalRepository using MongoDB.
func NewMongoHospitalRepo() HospitalRepository {
	repo := &MongoHospitalRepo{coll: database.Collection("hospitals")}

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
func (r *MongoHospitalRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "region", Value: 1}}},
		{Keys: bson.D{{Key: "surgery_types", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a hospital by its unique ID.
func (r *MongoHospitalRepo) GetByID(id string) (*models.Hospital, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var hospital models.Hospital
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&hospital); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hospital with id %s: %w", id, err)
	}
	return &hospital, nil
}

// Create inserts a new hospital record.
func (r *MongoHospitalRepo) Create(hospital *models.Hospital) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	hospital.CreatedAt = now
	hospital.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, hospital); err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}
	return nil
}

// Count returns the number of hospitals in the catalog.
func (r *MongoHospitalRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count hospitals: %w", err)
	}
	return n, nil
}
