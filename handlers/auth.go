package handlers

import (
	"net/http"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, sign-in, and password-reset endpoints.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler builds an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterUserHandler creates a new account and signs it in.
func (h *AuthHandler) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.RegisterUser(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler verifies email/password credentials.
func (h *AuthHandler) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleAuthHandler signs a user in with a Google ID token.
func (h *AuthHandler) GoogleAuthHandler(c *gin.Context) {
	var req struct {
		IDToken string `json:"idToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An ID token is required"})
		return
	}

	resp, err := h.Service.AuthenticateWithGoogle(req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutHandler revokes the caller's active token.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	if err := h.Service.SignOut(authedUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// RequestPasswordResetHandler starts the password-reset flow. It always
// reports success so the endpoint cannot probe registered emails.
func (h *AuthHandler) RequestPasswordResetHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An email address is required"})
		return
	}

	if err := h.Service.RequestPasswordReset(req.Email); err != nil {
		getLogger(c).Error("Password reset request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "If the email is registered, a reset link is on its way"})
}

// CompletePasswordResetHandler consumes a reset token and sets the new password.
func (h *AuthHandler) CompletePasswordResetHandler(c *gin.Context) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A reset token is required"})
		return
	}

	if err := h.Service.CompletePasswordReset(req.Token, req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}
