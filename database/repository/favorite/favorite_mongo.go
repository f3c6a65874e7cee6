package favoriteRepo

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

// FavoriteRepository defines methods for saved-hospital access.
type FavoriteRepository interface {
	// ListByUser retrieves a user's favorites, newest first.
	ListByUser(userID string) ([]models.Favorite, error)
	// Get retrieves a user's favorite for a hospital, or (nil, nil).
	Get(userID, hospitalID string) (*models.Favorite, error)
	// Create inserts a new favorite record.
	Create(fav *models.Favorite) error
	// UpdateLabel sets the label and notes on an existing favorite.
	UpdateLabel(userID, hospitalID, label, notes string) error
	// Delete removes a user's favorite for a hospital.
	Delete(userID, hospitalID string) error
}

// MongoFavoriteRepo implements FavoriteRepository using MongoDB.
type MongoFavoriteRepo struct {
	coll *mongo.Collection
}

// NewMongoFavoriteRepo creates a new instance of FavoriteRepository using MongoDB.
func NewMongoFavoriteRepo() FavoriteRepository {
	repo := &MongoFavoriteRepo{coll: database.Collection("favorites")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFavoriteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "hospital_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's favorites, newest first.
func (r *MongoFavoriteRepo) ListByUser(userID string) ([]models.Favorite, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve favorites for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var favorites []models.Favorite
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return favorites, nil
}

// Get retrieves a user's favorite for a hospital.
func (r *MongoFavoriteRepo) Get(userID, hospitalID string) (*models.Favorite, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var fav models.Favorite
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "hospital_id": hospitalID}).Decode(&fav)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch favorite: %w", err)
	}
	return &fav, nil
}

// Create inserts a new favorite record.
func (r *MongoFavoriteRepo) Create(fav *models.Favorite) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fav.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, fav); err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// UpdateLabel sets the label and notes on an existing favorite.
func (r *MongoFavoriteRepo) UpdateLabel(userID, hospitalID, label, notes string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"label": label, "notes": notes}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"user_id": userID, "hospital_id": hospitalID}, update)
	if err != nil {
		return fmt.Errorf("failed to update favorite label: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("favorite not found")
	}
	return nil
}

// Delete removes a user's favorite for a hospital.
func (r *MongoFavoriteRepo) Delete(userID, hospitalID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "hospital_id": hospitalID})
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("favorite not found")
	}
	return nil
}
