package handlers

import (
	"net/http"

	"github.com/itssanjain-collab/surgery-hub-connect/services/review"
	"github.com/itssanjain-collab/surgery-hub-connect/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves hospital review endpoints.
type ReviewHandler struct {
	Service     review.ReviewService
	UserService user.UserService
}

// NewReviewHandler builds a ReviewHandler.
func NewReviewHandler(svc review.ReviewService, userSvc user.UserService) *ReviewHandler {
	return &ReviewHandler{Service: svc, UserService: userSvc}
}

// ListReviewsHandler returns a hospital's reviews, newest first.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.ListByHospital(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// SubmitReviewHandler records a review under the caller's name.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	logger := getLogger(c)

	var input review.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid review request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	input.HospitalID = c.Param("id")

	userID := authedUserID(c)
	profile, err := h.UserService.GetUserByID(userID)
	if err != nil {
		logger.Error("Failed to resolve reviewer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		return
	}

	record, err := h.Service.Submit(userID, profile.Name, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, record)
}

// MarkHelpfulHandler bumps the helpful counter of a review.
func (h *ReviewHandler) MarkHelpfulHandler(c *gin.Context) {
	if err := h.Service.MarkHelpful(c.Param("reviewID")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "marked helpful"})
}
