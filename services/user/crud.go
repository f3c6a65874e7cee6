package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID returns the user's profile.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("GetUserByID: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("failed to load profile")
	}
	if userRec == nil {
		return nil, fmt.Errorf("user not found")
	}
	return userRec, nil
}

// UpdateProfile applies the editable profile fields and returns the result.
func (s *DefaultUserService) UpdateProfile(userID string, update models.ProfileUpdate) (*models.User, error) {
	set := bson.M{}
	if name := strings.TrimSpace(update.Name); name != "" {
		if len(name) < 2 {
			return nil, fmt.Errorf("name must be at least 2 characters")
		}
		set["name"] = name
	}
	if phone := strings.TrimSpace(update.Phone); phone != "" {
		set["phone"] = phone
	}
	if len(set) == 0 {
		return s.GetUserByID(userID)
	}

	if err := s.Repo.UpdateSetDocument(userID, set); err != nil {
		utils.GetLogger().Error("UpdateProfile: failed to update user", zap.Error(err))
		return nil, fmt.Errorf("failed to update profile")
	}
	return s.GetUserByID(userID)
}

// DeleteUser removes the account and revokes its session.
func (s *DefaultUserService) DeleteUser(userID string) error {
	ctx := context.Background()
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Error("DeleteUser: failed to clear token cache", zap.Error(err))
	}
	if err := s.Repo.Delete(userID); err != nil {
		utils.GetLogger().Error("DeleteUser: failed to delete user", zap.Error(err))
		return fmt.Errorf("failed to delete account")
	}
	return nil
}
