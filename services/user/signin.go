package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const tokenTTL = 72 * time.Hour

// AuthenticateUser verifies an email/password pair and issues a session token.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if userRec.PasswordHash == "" {
		// OAuth-only account.
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueSession(userRec)
}

// SignOut revokes the user's active token everywhere it is recorded.
func (s *DefaultUserService) SignOut(userID string) error {
	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(ctx, cacheKey).Err(); err != nil {
		utils.GetLogger().Error("SignOut: failed to clear token cache", zap.Error(err))
	}
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("sign out failed, please try again")
	}
	return nil
}

// issueSession generates a fresh JWT, caches its hash, and persists it on the
// user record as the Redis fallback.
func (s *DefaultUserService) issueSession(userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueSession: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, tokenHash, tokenTTL).Err(); err != nil {
		utils.GetLogger().Error("issueSession: failed to cache token hash", zap.Error(err))
	}

	if err := s.Repo.UpdateSetDocument(userRec.ID, bson.M{"token_hash": tokenHash}); err != nil {
		utils.GetLogger().Error("issueSession: failed to persist token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:    userRec.ID,
		Token: token,
		Name:  userRec.Name,
		Email: userRec.Email,
	}, nil
}
