package models

import "time"

// UserRole separates patients from hospital administrators.
type UserRole string

const (
	RolePatient       UserRole = "patient"
	RoleHospitalAdmin UserRole = "hospital_admin"
)

// User is a platform account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         UserRole  `bson:"role" json:"role"`
	GoogleSub    string    `bson:"google_sub,omitempty" json:"-"` // set for OAuth accounts
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"` // sha256 of the active bearer token
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRegistrationData is the payload for email/password sign-up.
type UserRegistrationData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// ProfileUpdate carries the fields a user may edit on their own profile.
type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}
