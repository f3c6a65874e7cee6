package handlers

import (
	"net/http"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves profile and favorites endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler builds a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	profile, err := h.Service.GetUserByID(authedUserID(c))
	if err != nil {
		logger.Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler updates the authenticated user's profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := h.Service.UpdateProfile(authedUserID(c), update)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteAccountHandler removes the authenticated user's account.
func (h *UserHandler) DeleteAccountHandler(c *gin.Context) {
	if err := h.Service.DeleteUser(authedUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "account deleted"})
}

// ListFavoritesHandler returns the caller's saved hospitals.
func (h *UserHandler) ListFavoritesHandler(c *gin.Context) {
	favorites, err := h.Service.ListFavorites(authedUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// ToggleFavoriteHandler saves or removes a hospital from the caller's favorites.
func (h *UserHandler) ToggleFavoriteHandler(c *gin.Context) {
	saved, err := h.Service.ToggleFavorite(authedUserID(c), c.Param("hospitalID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// LabelFavoriteHandler sets the label and notes on a saved hospital.
func (h *UserHandler) LabelFavoriteHandler(c *gin.Context) {
	var req struct {
		Label string `json:"label"`
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.LabelFavorite(authedUserID(c), c.Param("hospitalID"), req.Label, req.Notes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
