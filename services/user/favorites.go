package user

import (
	"fmt"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListFavorites returns the user's saved hospitals with their labels, newest
// first. Favorites pointing at hospitals that no longer exist are skipped.
func (s *DefaultUserService) ListFavorites(userID string) ([]FavoriteEntry, error) {
	favorites, err := s.FavoriteRepo.ListByUser(userID)
	if err != nil {
		utils.GetLogger().Error("ListFavorites: failed to fetch favorites", zap.Error(err))
		return nil, fmt.Errorf("failed to load saved hospitals")
	}

	entries := make([]FavoriteEntry, 0, len(favorites))
	for _, fav := range favorites {
		hospital, err := s.HospitalRepo.GetByID(fav.HospitalID)
		if err != nil {
			utils.GetLogger().Error("ListFavorites: failed to fetch hospital", zap.String("hospitalID", fav.HospitalID), zap.Error(err))
			continue
		}
		if hospital == nil {
			continue
		}
		entries = append(entries, FavoriteEntry{
			Hospital: *hospital,
			Label:    fav.Label,
			Notes:    fav.Notes,
		})
	}
	return entries, nil
}

// ToggleFavorite saves the hospital if it is not saved yet, removes it
// otherwise, and reports the resulting state.
func (s *DefaultUserService) ToggleFavorite(userID, hospitalID string) (bool, error) {
	existing, err := s.FavoriteRepo.Get(userID, hospitalID)
	if err != nil {
		utils.GetLogger().Error("ToggleFavorite: failed to fetch favorite", zap.Error(err))
		return false, fmt.Errorf("failed to update saved hospitals")
	}

	if existing != nil {
		if err := s.FavoriteRepo.Delete(userID, hospitalID); err != nil {
			utils.GetLogger().Error("ToggleFavorite: failed to delete favorite", zap.Error(err))
			return false, fmt.Errorf("failed to update saved hospitals")
		}
		return false, nil
	}

	hospital, err := s.HospitalRepo.GetByID(hospitalID)
	if err != nil {
		utils.GetLogger().Error("ToggleFavorite: failed to fetch hospital", zap.Error(err))
		return false, fmt.Errorf("failed to update saved hospitals")
	}
	if hospital == nil {
		return false, fmt.Errorf("hospital not found")
	}

	fav := &models.Favorite{
		ID:         uuid.NewString(),
		UserID:     userID,
		HospitalID: hospitalID,
	}
	if err := s.FavoriteRepo.Create(fav); err != nil {
		utils.GetLogger().Error("ToggleFavorite: failed to create favorite", zap.Error(err))
		return false, fmt.Errorf("failed to update saved hospitals")
	}
	return true, nil
}

// LabelFavorite sets the label and notes on a saved hospital.
func (s *DefaultUserService) LabelFavorite(userID, hospitalID, label, notes string) error {
	if err := s.FavoriteRepo.UpdateLabel(userID, hospitalID, label, notes); err != nil {
		utils.GetLogger().Error("LabelFavorite: failed to update label", zap.Error(err))
		return fmt.Errorf("failed to update saved hospital")
	}
	return nil
}
