package routes

import (
	"net/http"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/handlers"
	"github.com/itssanjain-collab/surgery-hub-connect/middleware"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHospitalRoutes registers public catalog endpoints.
func RegisterHospitalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hospitals")
	{
		api.GET("", hb.SearchHospitalsHandler)
		api.GET("/compare", hb.CompareHospitalsHandler)
		api.GET("/:id", hb.GetHospitalHandler)
		api.GET("/:id/reviews", hb.ListReviewsHandler)

		// Writing a review requires authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/:id/reviews", hb.SubmitReviewHandler)
	}

	meta := r.Group("/api/meta")
	{
		meta.GET("/surgery-types", hb.SurgeryTypesHandler)
		meta.GET("/regions", hb.RegionsHandler)
	}

	reviews := r.Group("/api/reviews")
	{
		reviews.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		reviews.POST("/:reviewID/helpful", hb.MarkHelpfulHandler)
	}
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
		api.POST("/google", hb.GoogleAuthHandler)
		api.POST("/forgot-password", hb.RequestPasswordResetHandler)
		api.POST("/reset-password", hb.CompletePasswordResetHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.SignOutHandler)
	}
}

// RegisterUserRoutes registers profile and favorites endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users/me")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.GetProfileHandler)
		api.PATCH("", hb.UpdateProfileHandler)
		api.DELETE("", hb.DeleteAccountHandler)

		api.GET("/favorites", hb.ListFavoritesHandler)
		api.POST("/favorites/:hospitalID", hb.ToggleFavoriteHandler)
		api.PUT("/favorites/:hospitalID", hb.LabelFavoriteHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard and
// booking management. Starting and inspecting a session is open to anonymous
// callers; everything that advances the wizard requires authentication.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wizard := r.Group("/api/booking")
	{
		wizard.POST("/session", middleware.OptionalAuthMiddleware(hb.UserRepo), hb.StartSessionHandler)
		wizard.GET("/session/:sessionID", hb.GetSessionHandler)

		protected := wizard.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/session/:sessionID/authenticate", hb.AuthenticateSessionHandler)
		protected.PUT("/session/:sessionID/slot", hb.SelectSlotHandler)
		protected.PUT("/session/:sessionID/details", hb.EnterDetailsHandler)
		protected.POST("/session/:sessionID/submit", hb.SubmitHandler)
		protected.POST("/session/:sessionID/reset", hb.ResetSessionHandler)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		bookings.GET("", hb.ListMyBookingsHandler)
		bookings.PUT("/:id/reschedule", hb.RescheduleHandler)
		bookings.DELETE("/:id", hb.CancelHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHospitalRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
