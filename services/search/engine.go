package search

import (
	"sort"
	"strings"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
)

// farAway is the distance sentinel used when ordering hospitals that have no
// computed distance; it pushes them behind every real result.
const farAway = 999

// Apply filters and orders the hospital list according to the given filter
// specification. It is a pure function: the input slice is never mutated, the
// output is always a subset of the input, and ties keep their input order.
func Apply(hospitals []models.Hospital, filters models.SearchFilters) []models.Hospital {
	results := make([]models.Hospital, 0, len(hospitals))

	if filters.Empty() {
		results = append(results, hospitals...)
	} else {
		for _, h := range hospitals {
			if matches(&h, filters) {
				results = append(results, h)
			}
		}
	}

	sortResults(results, filters.SortBy)
	return results
}

func matches(h *models.Hospital, f models.SearchFilters) bool {
	if f.Query != "" && !matchesQuery(h, f.Query) {
		return false
	}
	if f.SurgeryType != "" && !h.HasSurgeryType(f.SurgeryType) {
		return false
	}
	if f.MinRating != nil && h.Rating < *f.MinRating {
		return false
	}
	if f.Region != "" && h.Region != f.Region {
		return false
	}
	if f.District != "" && h.District != f.District {
		return false
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		if !matchesPriceRange(h, f.MinPrice, f.MaxPrice) {
			return false
		}
	}
	if f.MinExperience != nil && !hasExperiencedDoctor(h, *f.MinExperience) {
		return false
	}
	if f.InsuranceAccepted != "" && !acceptsInsurance(h, f.InsuranceAccepted) {
		return false
	}
	if f.MaxDistanceKm != nil {
		// A hospital with no computed distance fails an active distance filter.
		if h.DistanceKm == nil || *h.DistanceKm > *f.MaxDistanceKm {
			return false
		}
	}
	return true
}

// matchesQuery is a case-insensitive substring match against the hospital
// name, any surgery name, or any doctor name.
func matchesQuery(h *models.Hospital, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(h.Name), q) {
		return true
	}
	for _, s := range h.Surgeries {
		if strings.Contains(strings.ToLower(s.Name), q) {
			return true
		}
	}
	for _, d := range h.Doctors {
		if strings.Contains(strings.ToLower(d.Name), q) {
			return true
		}
	}
	return false
}

// matchesPriceRange retains the hospital when any surgery's cost range
// overlaps the requested bounds.
func matchesPriceRange(h *models.Hospital, minPrice, maxPrice *float64) bool {
	for _, s := range h.Surgeries {
		if minPrice != nil && s.MaxCost < *minPrice {
			continue
		}
		if maxPrice != nil && s.MinCost > *maxPrice {
			continue
		}
		return true
	}
	return false
}

func hasExperiencedDoctor(h *models.Hospital, minYears int) bool {
	for _, d := range h.Doctors {
		if d.Experience >= minYears {
			return true
		}
	}
	return false
}

func acceptsInsurance(h *models.Hospital, insurer string) bool {
	for _, ins := range h.InsuranceAccepted {
		if ins == insurer {
			return true
		}
	}
	return false
}

func sortResults(results []models.Hospital, key models.SortKey) {
	switch key {
	case models.SortLowestCost:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].MinSurgeryCost() < results[j].MinSurgeryCost()
		})
	case models.SortHighestRate:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	case models.SortNearest:
		sort.SliceStable(results, func(i, j int) bool {
			return distanceOrDefault(&results[i]) < distanceOrDefault(&results[j])
		})
	default:
		// best_match keeps the input order.
	}
}

func distanceOrDefault(h *models.Hospital) float64 {
	if h.DistanceKm == nil {
		return farAway
	}
	return *h.DistanceKm
}
