package search

import (
	"testing"

	"github.com/itssanjain-collab/surgery-hub-connect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func sampleHospitals() []models.Hospital {
	return []models.Hospital{
		{
			ID: "h1", Name: "Aster CMI", Region: "Bengaluru", District: "Bengaluru Urban",
			Rating: 4.6, DistanceKm: fptr(8.2),
			SurgeryTypes: []models.SurgeryType{models.SurgeryReconstructive},
			Surgeries: []models.Surgery{
				{ID: "s1", Name: "Knee Replacement", Type: models.SurgeryReconstructive, MinCost: 180000, MaxCost: 350000},
			},
			Doctors:           []models.Doctor{{ID: "d1", Name: "Dr. Rao", Experience: 18}},
			InsuranceAccepted: []string{"Star Health", "HDFC Ergo"},
		},
		{
			ID: "h2", Name: "Manipal Mysuru", Region: "Mysuru", District: "Mysuru",
			Rating: 4.2, DistanceKm: fptr(140),
			SurgeryTypes: []models.SurgeryType{models.SurgeryCurative},
			Surgeries: []models.Surgery{
				{ID: "s2", Name: "Cataract Surgery", Type: models.SurgeryCurative, MinCost: 25000, MaxCost: 60000},
			},
			Doctors:           []models.Doctor{{ID: "d2", Name: "Dr. Shetty", Experience: 9}},
			InsuranceAccepted: []string{"Star Health"},
		},
		{
			ID: "h3", Name: "KMC Mangaluru", Region: "Mangaluru", District: "Dakshina Kannada",
			Rating: 4.6, // no DistanceKm
			SurgeryTypes: []models.SurgeryType{models.SurgeryCurative},
			Surgeries: []models.Surgery{
				{ID: "s3", Name: "Bypass Surgery", Type: models.SurgeryCurative, MinCost: 250000, MaxCost: 500000},
			},
			Doctors: []models.Doctor{{ID: "d3", Name: "Dr. Kamath", Experience: 25}},
		},
	}
}

func TestApplyEmptyFiltersReturnsAllInOrder(t *testing.T) {
	hospitals := sampleHospitals()
	results := Apply(hospitals, models.SearchFilters{})

	require.Len(t, results, len(hospitals))
	for i := range hospitals {
		assert.Equal(t, hospitals[i].ID, results[i].ID)
	}
}

func TestApplyResultIsSubsetOfInput(t *testing.T) {
	hospitals := sampleHospitals()
	results := Apply(hospitals, models.SearchFilters{MinRating: fptr(4.5)})

	ids := map[string]bool{}
	for _, h := range hospitals {
		ids[h.ID] = true
	}
	for _, r := range results {
		assert.True(t, ids[r.ID], "result %s not present in input", r.ID)
	}
	assert.Len(t, results, 2)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	hospitals := sampleHospitals()
	Apply(hospitals, models.SearchFilters{SortBy: models.SortLowestCost})

	assert.Equal(t, "h1", hospitals[0].ID)
	assert.Equal(t, "h2", hospitals[1].ID)
	assert.Equal(t, "h3", hospitals[2].ID)
}

func TestApplyQueryMatchesHospitalSurgeryAndDoctorNames(t *testing.T) {
	hospitals := sampleHospitals()

	byHospital := Apply(hospitals, models.SearchFilters{Query: "aster"})
	require.Len(t, byHospital, 1)
	assert.Equal(t, "h1", byHospital[0].ID)

	bySurgery := Apply(hospitals, models.SearchFilters{Query: "cataract"})
	require.Len(t, bySurgery, 1)
	assert.Equal(t, "h2", bySurgery[0].ID)

	byDoctor := Apply(hospitals, models.SearchFilters{Query: "kamath"})
	require.Len(t, byDoctor, 1)
	assert.Equal(t, "h3", byDoctor[0].ID)

	assert.Empty(t, Apply(hospitals, models.SearchFilters{Query: "zzz"}))
}

func TestApplyPriceRangeOverlaps(t *testing.T) {
	hospitals := sampleHospitals()

	// A band fully inside h2's cataract range.
	results := Apply(hospitals, models.SearchFilters{MinPrice: fptr(30000), MaxPrice: fptr(50000)})
	require.Len(t, results, 1)
	assert.Equal(t, "h2", results[0].ID)

	// A floor above every surgery's max cost.
	assert.Empty(t, Apply(hospitals, models.SearchFilters{MinPrice: fptr(900000)}))
}

func TestApplyMinExperienceAndInsurance(t *testing.T) {
	hospitals := sampleHospitals()

	experienced := Apply(hospitals, models.SearchFilters{MinExperience: iptr(20)})
	require.Len(t, experienced, 1)
	assert.Equal(t, "h3", experienced[0].ID)

	insured := Apply(hospitals, models.SearchFilters{InsuranceAccepted: "HDFC Ergo"})
	require.Len(t, insured, 1)
	assert.Equal(t, "h1", insured[0].ID)
}

func TestApplyDistanceFilterExcludesUnknownDistance(t *testing.T) {
	hospitals := sampleHospitals()
	results := Apply(hospitals, models.SearchFilters{MaxDistanceKm: fptr(200)})

	// h3 has no computed distance and must not pass an active distance filter.
	require.Len(t, results, 2)
	assert.Equal(t, "h1", results[0].ID)
	assert.Equal(t, "h2", results[1].ID)
}

func TestApplySortLowestCost(t *testing.T) {
	hospitals := sampleHospitals()
	results := Apply(hospitals, models.SearchFilters{SortBy: models.SortLowestCost})

	require.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].MinSurgeryCost(), results[i].MinSurgeryCost())
	}
	assert.Equal(t, "h2", results[0].ID)
}

func TestApplySortHighestRatedIsStable(t *testing.T) {
	hospitals := sampleHospitals()
	results := Apply(hospitals, models.SearchFilters{SortBy: models.SortHighestRate})

	// h1 and h3 tie on rating; h1 entered first and must stay first.
	require.Len(t, results, 3)
	assert.Equal(t, "h1", results[0].ID)
	assert.Equal(t, "h3", results[1].ID)
	assert.Equal(t, "h2", results[2].ID)
}

func TestApplySortNearestPushesUnknownDistanceLast(t *testing.T) {
	hospitals := sampleHospitals()
	results := Apply(hospitals, models.SearchFilters{SortBy: models.SortNearest})

	require.Len(t, results, 3)
	assert.Equal(t, "h1", results[0].ID)
	assert.Equal(t, "h2", results[1].ID)
	assert.Equal(t, "h3", results[2].ID)
}

func TestApplyCombinedFilters(t *testing.T) {
	hospitals := sampleHospitals()
	results := Apply(hospitals, models.SearchFilters{
		SurgeryType: models.SurgeryCurative,
		MinRating:   fptr(4.5),
	})

	require.Len(t, results, 1)
	assert.Equal(t, "h3", results[0].ID)
}
