package hospitalRepo

import "github.com/itssanjain-collab/surgery-hub-connect/models"

// HospitalRepository defines methods for hospital catalog access.
type HospitalRepository interface {
	// GetByID retrieves a hospital by its unique ID.
	GetByID(id string) (*models.Hospital, error)
	// GetAll retrieves the full hospital catalog in stored order.
	GetAll() ([]models.Hospital, error)
	// GetByIDs retrieves the hospitals matching the given IDs, preserving
	// the order of ids.
	GetByIDs(ids []string) ([]models.Hospital, error)
	// Create inserts a new hospital record.
	Create(hospital *models.Hospital) error
	// Count returns the number of hospitals in the catalog.
	Count() (int64, error)
	// IncrementReviewStats folds a new review rating into the hospital's
	// aggregate rating and review count.
	IncrementReviewStats(id string, rating float64) error
}
