package hospitalRepo

import (
	"fmt"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAll retrieves the full hospital catalog in stored order.
func (r *MongoHospitalRepo) GetAll() ([]models.Hospital, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve hospitals: %w", err)
	}
	defer cursor.Close(ctx)

	var hospitals []models.Hospital
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, fmt.Errorf("failed to decode hospitals: %w", err)
	}
	return hospitals, nil
}

// GetByIDs retrieves the hospitals matching the given IDs, preserving the
// order of ids in the result.
func (r *MongoHospitalRepo) GetByIDs(ids []string) ([]models.Hospital, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve hospitals by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var found []models.Hospital
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode hospitals: %w", err)
	}

	byID := make(map[string]models.Hospital, len(found))
	for _, h := range found {
		byID[h.ID] = h
	}

	ordered := make([]models.Hospital, 0, len(found))
	for _, id := range ids {
		if h, ok := byID[id]; ok {
			ordered = append(ordered, h)
		}
	}
	return ordered, nil
}

// IncrementReviewStats folds a new review rating into the hospital's
// aggregate rating and review count.
func (r *MongoHospitalRepo) IncrementReviewStats(id string, rating float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var hospital models.Hospital
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&hospital); err != nil {
		return fmt.Errorf("failed to fetch hospital with id %s: %w", id, err)
	}

	newCount := hospital.ReviewCount + 1
	newRating := (hospital.Rating*float64(hospital.ReviewCount) + rating) / float64(newCount)

	update := bson.M{"$set": bson.M{
		"rating":       newRating,
		"review_count": newCount,
		"updated_at":   time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update review stats for hospital %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("hospital with id %s not found", id)
	}
	return nil
}
