package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const catalogCacheKey = "catalog:hospitals"

// CompareLimits bound how many hospitals a compare selection may hold.
const (
	CompareMin = 2
	CompareMax = 4
)

// Search returns the hospitals matching the filter specification.
func (s *DefaultSearchService) Search(filters models.SearchFilters) ([]models.Hospital, error) {
	if filters.SortBy == "" {
		filters.SortBy = models.SortBestMatch
	}
	if !filters.SortBy.Valid() {
		return nil, fmt.Errorf("unknown sort key %q", filters.SortBy)
	}
	if filters.SurgeryType != "" && !filters.SurgeryType.Valid() {
		return nil, fmt.Errorf("unknown surgery type %q", filters.SurgeryType)
	}

	hospitals, err := s.catalog()
	if err != nil {
		return nil, err
	}
	return Apply(hospitals, filters), nil
}

// GetHospital returns a single hospital by id.
func (s *DefaultSearchService) GetHospital(id string) (*models.Hospital, error) {
	return s.Repo.GetByID(id)
}

// Compare returns the selected hospitals side by side, preserving selection
// order. The 2..4 bound is enforced here so no caller can grow the selection
// past the limit.
func (s *DefaultSearchService) Compare(ids []string) ([]models.Hospital, error) {
	if len(ids) < CompareMin {
		return nil, fmt.Errorf("select at least %d hospitals to compare", CompareMin)
	}
	if len(ids) > CompareMax {
		return nil, fmt.Errorf("at most %d hospitals can be compared", CompareMax)
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, fmt.Errorf("duplicate hospital id %s in compare selection", id)
		}
		seen[id] = true
	}

	hospitals, err := s.Repo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(hospitals) != len(ids) {
		return nil, fmt.Errorf("one or more selected hospitals no longer exist")
	}
	return hospitals, nil
}

// SurgeryTypes returns display metadata for the fixed surgery type enum.
func (s *DefaultSearchService) SurgeryTypes() []models.SurgeryTypeMeta {
	metas := make([]models.SurgeryTypeMeta, 0, len(models.AllSurgeryTypes))
	for _, t := range models.AllSurgeryTypes {
		metas = append(metas, models.SurgeryTypeCatalog[t])
	}
	return metas
}

// Regions returns the region list hospitals are grouped under.
func (s *DefaultSearchService) Regions() []string {
	return models.KarnatakaRegions
}

// catalog loads the full hospital list, serving from the Redis snapshot when
// one is present and falling back to Mongo otherwise. Cache failures are
// logged and degrade to a direct read.
func (s *DefaultSearchService) catalog() ([]models.Hospital, error) {
	ctx := context.Background()

	if s.CacheClient != nil && s.CacheTTL > 0 {
		data, err := s.CacheClient.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var hospitals []models.Hospital
			if jsonErr := json.Unmarshal([]byte(data), &hospitals); jsonErr == nil {
				return hospitals, nil
			}
			utils.GetLogger().Warn("discarding undecodable catalog snapshot")
		} else if err != redis.Nil {
			utils.GetLogger().Warn("catalog cache read failed", zap.Error(err))
		}
	}

	hospitals, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load hospital catalog: %w", err)
	}

	if s.CacheClient != nil && s.CacheTTL > 0 {
		if data, err := json.Marshal(hospitals); err == nil {
			ttl := time.Duration(s.CacheTTL) * time.Second
			if err := s.CacheClient.Set(ctx, catalogCacheKey, data, ttl).Err(); err != nil {
				utils.GetLogger().Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return hospitals, nil
}
