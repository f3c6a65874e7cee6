package user

import (
	"context"
	"fmt"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/config"
	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	resetTokenPrefix = "resetToken:"
	resetTokenTTL    = 30 * time.Minute
)

// RequestPasswordReset issues a single-use reset token and emails a link to
// the account holder. Unknown emails succeed silently so the endpoint cannot
// be used to probe which addresses are registered.
func (s *DefaultUserService) RequestPasswordReset(email string) error {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("RequestPasswordReset: failed to fetch user", zap.Error(err))
		return fmt.Errorf("failed to start password reset, please try again")
	}
	if userRec == nil {
		return nil
	}

	token := uuid.NewString()
	ctx := context.Background()
	key := resetTokenPrefix + utils.HashToken(token)
	if err := utils.GetResetTokenClient().Set(ctx, key, userRec.ID, resetTokenTTL).Err(); err != nil {
		utils.GetLogger().Error("RequestPasswordReset: failed to store reset token", zap.Error(err))
		return fmt.Errorf("failed to start password reset, please try again")
	}

	payload := models.PasswordResetPayload{
		Name:     userRec.Name,
		Email:    userRec.Email,
		ResetURL: fmt.Sprintf("%s/reset-password?token=%s", config.AppConfig.PublicBaseURL, token),
	}
	if err := s.Mailer.SendPasswordReset(ctx, payload); err != nil {
		utils.GetLogger().Error("RequestPasswordReset: failed to send email", zap.Error(err))
		return fmt.Errorf("failed to send the reset email, please try again")
	}
	return nil
}

// CompletePasswordReset consumes a reset token and sets the new password. The
// token is deleted before the password is written so it can never be replayed.
func (s *DefaultUserService) CompletePasswordReset(token, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	ctx := context.Background()
	key := resetTokenPrefix + utils.HashToken(token)
	client := utils.GetResetTokenClient()

	userID, err := client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("invalid or expired reset link")
	}
	if err := client.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Error("CompletePasswordReset: failed to consume token", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("CompletePasswordReset: failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}

	// Revoke any live session along with the password change.
	update := bson.M{"password_hash": string(hash), "token_hash": ""}
	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		utils.GetLogger().Error("CompletePasswordReset: failed to update password", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Error("CompletePasswordReset: failed to clear token cache", zap.Error(err))
	}
	return nil
}
