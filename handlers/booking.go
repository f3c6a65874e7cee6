package handlers

import (
	"errors"
	"net/http"

	"github.com/itssanjain-collab/surgery-hub-connect/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking wizard and booking management endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler builds a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// workflowStatus maps a wizard error code onto an HTTP status.
func workflowStatus(err error) int {
	var wfErr *booking.WorkflowError
	if !errors.As(err, &wfErr) {
		return http.StatusInternalServerError
	}
	switch wfErr.Code {
	case booking.CodeUnauthenticated:
		return http.StatusUnauthorized
	case booking.CodeSessionNotFound, booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeInvalidState, booking.CodeNotMutable:
		return http.StatusConflict
	case booking.CodeInvalidSlot, booking.CodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWorkflow(c *gin.Context, err error) {
	var wfErr *booking.WorkflowError
	if errors.As(err, &wfErr) {
		c.JSON(workflowStatus(err), gin.H{"error": wfErr.Message, "code": wfErr.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}

// StartSessionHandler opens a new wizard session. Anonymous callers get an
// unauthenticated session that records their intent.
func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	var opts booking.StartOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		logger.Error("Invalid session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	opts.UserID = authedUserID(c)

	session, err := h.Service.StartSession(opts)
	if err != nil {
		abortWorkflow(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSessionHandler returns the current wizard state.
func (h *BookingHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionID"))
	if err != nil {
		abortWorkflow(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AuthenticateSessionHandler attaches the signed-in user to a session that was
// started anonymously.
func (h *BookingHandler) AuthenticateSessionHandler(c *gin.Context) {
	session, err := h.Service.Authenticate(c.Param("sessionID"), authedUserID(c))
	if err != nil {
		abortWorkflow(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectSlotHandler records the chosen date and time slot.
func (h *BookingHandler) SelectSlotHandler(c *gin.Context) {
	var req struct {
		Date     string `json:"date"`
		TimeSlot string `json:"timeSlot"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Service.SelectSlot(c.Param("sessionID"), req.Date, req.TimeSlot)
	if err != nil {
		abortWorkflow(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// EnterDetailsHandler records the patient's contact details.
func (h *BookingHandler) EnterDetailsHandler(c *gin.Context) {
	var details booking.PatientDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Service.EnterDetails(c.Param("sessionID"), details)
	if err != nil {
		abortWorkflow(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitHandler persists the booking and sends the confirmation email.
func (h *BookingHandler) SubmitHandler(c *gin.Context) {
	session, record, err := h.Service.Submit(c.Param("sessionID"))
	if err != nil {
		abortWorkflow(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session, "booking": record})
}

// ResetSessionHandler clears the wizard back to slot selection.
func (h *BookingHandler) ResetSessionHandler(c *gin.Context) {
	session, err := h.Service.ResetSession(c.Param("sessionID"))
	if err != nil {
		abortWorkflow(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListMyBookingsHandler returns the caller's bookings split into upcoming and past.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	history, err := h.Service.ListUserBookings(authedUserID(c))
	if err != nil {
		abortWorkflow(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// RescheduleHandler moves a booking to a new slot.
func (h *BookingHandler) RescheduleHandler(c *gin.Context) {
	var req struct {
		Date     string `json:"date"`
		TimeSlot string `json:"timeSlot"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	record, err := h.Service.Reschedule(authedUserID(c), c.Param("id"), req.Date, req.TimeSlot)
	if err != nil {
		abortWorkflow(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// CancelHandler cancels a booking.
func (h *BookingHandler) CancelHandler(c *gin.Context) {
	record, err := h.Service.Cancel(authedUserID(c), c.Param("id"))
	if err != nil {
		abortWorkflow(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
