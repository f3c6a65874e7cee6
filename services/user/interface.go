package user

import (
	favoriteRepo "github.com/itssanjain-collab/surgery-hub-connect/database/repository/favorite"
	hospitalRepo "github.com/itssanjain-collab/surgery-hub-connect/database/repository/hospital"
	userRepo "github.com/itssanjain-collab/surgery-hub-connect/database/repository/user"
	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/services/notification"
)

type UserService interface {
	// Registration and authentication
	RegisterUser(data models.UserRegistrationData) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	AuthenticateWithGoogle(idToken string) (*AuthResponse, error)
	SignOut(userID string) error

	// Password reset
	RequestPasswordReset(email string) error
	CompletePasswordReset(token, newPassword string) error

	// Profile
	GetUserByID(userID string) (*models.User, error)
	UpdateProfile(userID string, update models.ProfileUpdate) (*models.User, error)
	DeleteUser(userID string) error

	// Favorites
	ListFavorites(userID string) ([]FavoriteEntry, error)
	ToggleFavorite(userID, hospitalID string) (saved bool, err error)
	LabelFavorite(userID, hospitalID, label, notes string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo         userRepo.UserRepository
	FavoriteRepo favoriteRepo.FavoriteRepository
	HospitalRepo hospitalRepo.HospitalRepository
	Mailer       notification.Mailer
}

// AuthResponse contains the user's ID, token, and profile basics.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FavoriteEntry pairs a saved hospital with the user's label and notes.
type FavoriteEntry struct {
	Hospital models.Hospital `json:"hospital"`
	Label    string          `json:"label,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}
