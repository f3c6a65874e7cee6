package reviewRepo

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

// ReviewRepository defines methods for hospital review access.
type ReviewRepository interface {
	// ListByHospital retrieves a hospital's reviews, newest first.
	ListByHospital(hospitalID string) ([]models.Review, error)
	// Create inserts a new review record.
	Create(review *models.Review) error
	// IncrementHelpful bumps the helpful counter of a review.
	IncrementHelpful(id string) error
}

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	repo := &MongoReviewRepo{coll: database.Collection("reviews")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "hospital_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListByHospital retrieves a hospital's reviews, newest first.
func (r *MongoReviewRepo) ListByHospital(hospitalID string) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"hospital_id": hospitalID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews for hospital %s: %w", hospitalID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// Create inserts a new review record.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	review.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// IncrementHelpful bumps the helpful counter of a review.
func (r *MongoReviewRepo) IncrementHelpful(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"helpful": 1}})
	if err != nil {
		return fmt.Errorf("failed to bump helpful count for review %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review with id %s not found", id)
	}
	return nil
}
