package handlers

import (
	userRepoPkg "github.com/itssanjain-collab/surgery-hub-connect/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Catalog endpoints
	SearchHospitalsHandler  gin.HandlerFunc
	GetHospitalHandler      gin.HandlerFunc
	CompareHospitalsHandler gin.HandlerFunc
	SurgeryTypesHandler     gin.HandlerFunc
	RegionsHandler          gin.HandlerFunc

	// Booking wizard endpoints
	StartSessionHandler        gin.HandlerFunc
	GetSessionHandler          gin.HandlerFunc
	AuthenticateSessionHandler gin.HandlerFunc
	SelectSlotHandler          gin.HandlerFunc
	EnterDetailsHandler        gin.HandlerFunc
	SubmitHandler              gin.HandlerFunc
	ResetSessionHandler        gin.HandlerFunc

	// Booking management endpoints
	ListMyBookingsHandler gin.HandlerFunc
	RescheduleHandler     gin.HandlerFunc
	CancelHandler         gin.HandlerFunc

	// Auth endpoints
	RegisterUserHandler          gin.HandlerFunc
	AuthenticateUserHandler      gin.HandlerFunc
	GoogleAuthHandler            gin.HandlerFunc
	SignOutHandler               gin.HandlerFunc
	RequestPasswordResetHandler  gin.HandlerFunc
	CompletePasswordResetHandler gin.HandlerFunc

	// Profile and favorites endpoints
	GetProfileHandler     gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	DeleteAccountHandler  gin.HandlerFunc
	ListFavoritesHandler  gin.HandlerFunc
	ToggleFavoriteHandler gin.HandlerFunc
	LabelFavoriteHandler  gin.HandlerFunc

	// Review endpoints
	ListReviewsHandler  gin.HandlerFunc
	SubmitReviewHandler gin.HandlerFunc
	MarkHelpfulHandler  gin.HandlerFunc
}
