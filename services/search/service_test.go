package search

import (
	"testing"

	"github.com/itssanjain-collab/surgery-hub-connect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHospitalRepo serves a fixed catalog from memory.
type fakeHospitalRepo struct {
	hospitals []models.Hospital
}

func (f *fakeHospitalRepo) GetByID(id string) (*models.Hospital, error) {
	for i := range f.hospitals {
		if f.hospitals[i].ID == id {
			return &f.hospitals[i], nil
		}
	}
	return nil, nil
}

func (f *fakeHospitalRepo) GetAll() ([]models.Hospital, error) {
	return f.hospitals, nil
}

func (f *fakeHospitalRepo) GetByIDs(ids []string) ([]models.Hospital, error) {
	var out []models.Hospital
	for _, id := range ids {
		if h, _ := f.GetByID(id); h != nil {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeHospitalRepo) Create(h *models.Hospital) error {
	f.hospitals = append(f.hospitals, *h)
	return nil
}

func (f *fakeHospitalRepo) Count() (int64, error) {
	return int64(len(f.hospitals)), nil
}

func (f *fakeHospitalRepo) IncrementReviewStats(id string, rating float64) error {
	return nil
}

func newTestSearchService() *DefaultSearchService {
	return &DefaultSearchService{Repo: &fakeHospitalRepo{hospitals: sampleHospitals()}}
}

func TestSearchDefaultsToBestMatch(t *testing.T) {
	svc := newTestSearchService()

	results, err := svc.Search(models.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "h1", results[0].ID)
}

func TestSearchRejectsUnknownSortKey(t *testing.T) {
	svc := newTestSearchService()

	_, err := svc.Search(models.SearchFilters{SortBy: "cheapest"})
	assert.Error(t, err)
}

func TestSearchRejectsUnknownSurgeryType(t *testing.T) {
	svc := newTestSearchService()

	_, err := svc.Search(models.SearchFilters{SurgeryType: "experimental"})
	assert.Error(t, err)
}

func TestCompareBounds(t *testing.T) {
	svc := newTestSearchService()

	_, err := svc.Compare([]string{"h1"})
	assert.Error(t, err, "a single hospital is not a comparison")

	_, err = svc.Compare([]string{"h1", "h2", "h3", "h1", "h2"})
	assert.Error(t, err, "more than four hospitals must be rejected")

	_, err = svc.Compare([]string{"h1", "h1"})
	assert.Error(t, err, "duplicate ids must be rejected")

	_, err = svc.Compare([]string{"h1", "missing"})
	assert.Error(t, err, "unknown ids must be rejected")
}

func TestComparePreservesSelectionOrder(t *testing.T) {
	svc := newTestSearchService()

	hospitals, err := svc.Compare([]string{"h3", "h1"})
	require.NoError(t, err)
	require.Len(t, hospitals, 2)
	assert.Equal(t, "h3", hospitals[0].ID)
	assert.Equal(t, "h1", hospitals[1].ID)
}

func TestSurgeryTypesCoverEnum(t *testing.T) {
	svc := newTestSearchService()

	metas := svc.SurgeryTypes()
	require.Len(t, metas, len(models.AllSurgeryTypes))
	for i, meta := range metas {
		assert.Equal(t, models.AllSurgeryTypes[i], meta.Type)
		assert.NotEmpty(t, meta.Label)
	}
}
