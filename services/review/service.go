package review

import (
	"fmt"
	"strings"

	hospitalRepo "github.com/itssanjain-collab/surgery-hub-connect/database/repository/hospital"
	reviewRepo "github.com/itssanjain-collab/surgery-hub-connect/database/repository/review"
	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewInput is what a patient submits when reviewing a hospital.
type ReviewInput struct {
	HospitalID  string             `json:"hospitalId"`
	Rating      float64            `json:"rating"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	SurgeryType models.SurgeryType `json:"surgeryType,omitempty"`
	VisitDate   string             `json:"visitDate,omitempty"`
}

// ReviewService manages hospital reviews.
type ReviewService interface {
	// ListByHospital returns a hospital's reviews, newest first.
	ListByHospital(hospitalID string) ([]models.Review, error)
	// Submit records a review and folds it into the hospital's rating.
	Submit(userID, userName string, input ReviewInput) (*models.Review, error)
	// MarkHelpful bumps the helpful counter of a review.
	MarkHelpful(reviewID string) error
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo         reviewRepo.ReviewRepository
	HospitalRepo hospitalRepo.HospitalRepository
}

// ListByHospital returns a hospital's reviews, newest first.
func (s *DefaultReviewService) ListByHospital(hospitalID string) ([]models.Review, error) {
	reviews, err := s.Repo.ListByHospital(hospitalID)
	if err != nil {
		utils.GetLogger().Error("ListByHospital: failed to fetch reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to load reviews")
	}
	return reviews, nil
}

// Submit records a review and folds it into the hospital's aggregate rating.
func (s *DefaultReviewService) Submit(userID, userName string, input ReviewInput) (*models.Review, error) {
	if input.Rating < 0 || input.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 0 and 5")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("review content is required")
	}
	if input.SurgeryType != "" && !input.SurgeryType.Valid() {
		return nil, fmt.Errorf("unknown surgery type %q", input.SurgeryType)
	}

	hospital, err := s.HospitalRepo.GetByID(input.HospitalID)
	if err != nil {
		utils.GetLogger().Error("Submit: failed to fetch hospital", zap.Error(err))
		return nil, fmt.Errorf("failed to submit review")
	}
	if hospital == nil {
		return nil, fmt.Errorf("hospital not found")
	}

	record := &models.Review{
		ID:          uuid.NewString(),
		UserID:      userID,
		UserName:    userName,
		HospitalID:  input.HospitalID,
		Rating:      input.Rating,
		Title:       strings.TrimSpace(input.Title),
		Content:     strings.TrimSpace(input.Content),
		SurgeryType: input.SurgeryType,
		VisitDate:   input.VisitDate,
	}
	if err := s.Repo.Create(record); err != nil {
		utils.GetLogger().Error("Submit: failed to create review", zap.Error(err))
		return nil, fmt.Errorf("failed to submit review")
	}

	if err := s.HospitalRepo.IncrementReviewStats(input.HospitalID, input.Rating); err != nil {
		utils.GetLogger().Error("Submit: failed to fold rating into hospital", zap.Error(err))
	}
	return record, nil
}

// MarkHelpful bumps the helpful counter of a review.
func (s *DefaultReviewService) MarkHelpful(reviewID string) error {
	if err := s.Repo.IncrementHelpful(reviewID); err != nil {
		utils.GetLogger().Error("MarkHelpful: failed to bump counter", zap.Error(err))
		return fmt.Errorf("failed to mark review helpful")
	}
	return nil
}
