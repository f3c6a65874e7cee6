package search

import (
	hospitalRepo "github.com/itssanjain-collab/surgery-hub-connect/database/repository/hospital"
	"github.com/itssanjain-collab/surgery-hub-connect/models"

	"github.com/go-redis/redis/v8"
)

// SearchService answers catalog browse, search, and compare queries.
type SearchService interface {
	// Search returns the hospitals matching the filter specification, ordered
	// by its sort key.
	Search(filters models.SearchFilters) ([]models.Hospital, error)
	// GetHospital returns a single hospital by id, or nil when unknown.
	GetHospital(id string) (*models.Hospital, error)
	// Compare returns the selected hospitals side by side. Between 2 and 4
	// ids are accepted; the bound is enforced here, not by callers.
	Compare(ids []string) ([]models.Hospital, error)
	// SurgeryTypes returns display metadata for the fixed surgery type enum.
	SurgeryTypes() []models.SurgeryTypeMeta
	// Regions returns the region list hospitals are grouped under.
	Regions() []string
}

// DefaultSearchService implements SearchService over the hospital repository
// with a Redis snapshot of the catalog in front of it.
type DefaultSearchService struct {
	Repo        hospitalRepo.HospitalRepository
	CacheClient *redis.Client
	CacheTTL    int // seconds; <= 0 disables the snapshot
}
