package user

import (
	"fmt"
	"strings"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a new patient account and signs it in.
func (s *DefaultUserService) RegisterUser(data models.UserRegistrationData) (*AuthResponse, error) {
	name := strings.TrimSpace(data.Name)
	email := strings.ToLower(strings.TrimSpace(data.Email))

	if len(name) < 2 {
		return nil, fmt.Errorf("name must be at least 2 characters")
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("a valid email address is required")
	}
	if len(data.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check existing email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userRec := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(data.Phone),
		Role:         models.RolePatient,
	}
	if err := s.Repo.Create(userRec); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueSession(userRec)
}
