package models

// SortKey selects the single ordering applied after filtering.
type SortKey string

const (
	SortBestMatch   SortKey = "best_match"
	SortLowestCost  SortKey = "lowest_cost"
	SortHighestRate SortKey = "highest_rated"
	SortNearest     SortKey = "nearest"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortBestMatch, SortLowestCost, SortHighestRate, SortNearest:
		return true
	}
	return false
}

// SearchFilters is the transient set of active search predicates plus one sort
// key. Zero values mean "predicate inactive"; pointers distinguish "unset"
// from a legitimate zero bound.
type SearchFilters struct {
	Query             string      `json:"query" form:"q"`
	SurgeryType       SurgeryType `json:"surgeryType,omitempty" form:"surgeryType"`
	MinPrice          *float64    `json:"minPrice,omitempty" form:"minPrice"`
	MaxPrice          *float64    `json:"maxPrice,omitempty" form:"maxPrice"`
	Region            string      `json:"region,omitempty" form:"region"`
	District          string      `json:"district,omitempty" form:"district"`
	MinRating         *float64    `json:"minRating,omitempty" form:"minRating"`
	MinExperience     *int        `json:"minExperience,omitempty" form:"minExperience"`
	InsuranceAccepted string      `json:"insuranceAccepted,omitempty" form:"insuranceAccepted"`
	MaxDistanceKm     *float64    `json:"maxDistance,omitempty" form:"maxDistance"`
	SortBy            SortKey     `json:"sortBy" form:"sortBy"`
}

// Empty reports whether no predicate is active (sort key aside).
func (f SearchFilters) Empty() bool {
	return f.Query == "" && f.SurgeryType == "" && f.MinPrice == nil &&
		f.MaxPrice == nil && f.Region == "" && f.District == "" &&
		f.MinRating == nil && f.MinExperience == nil &&
		f.InsuranceAccepted == "" && f.MaxDistanceKm == nil
}
