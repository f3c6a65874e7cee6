package booking

import (
	"time"

	bookingRepo "github.com/itssanjain-collab/surgery-hub-connect/database/repository/booking"
	hospitalRepo "github.com/itssanjain-collab/surgery-hub-connect/database/repository/hospital"
	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/services/notification"
	"github.com/itssanjain-collab/surgery-hub-connect/services/tasks"
)

// StartOptions seeds a new wizard session. UserID may be empty; the session
// then starts unauthenticated and records the patient's intent until sign-in.
type StartOptions struct {
	UserID     string             `json:"-"`
	HospitalID string             `json:"hospitalId"`
	DoctorID   string             `json:"doctorId,omitempty"`
	SurgeryID  string             `json:"surgeryId,omitempty"`
	Type       models.BookingType `json:"bookingType"`
}

// PatientDetails is the contact step of the wizard.
type PatientDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// BookingHistory partitions a user's bookings for display.
type BookingHistory struct {
	Upcoming []models.Booking `json:"upcoming"`
	Past     []models.Booking `json:"past"`
}

// BookingService drives the booking wizard and manages existing bookings.
type BookingService interface {
	// StartSession opens a new wizard session against a hospital.
	StartSession(opts StartOptions) (*WizardSession, error)
	// GetSession returns the current wizard state.
	GetSession(sessionID string) (*WizardSession, error)
	// Authenticate attaches a signed-in user to an unauthenticated session.
	Authenticate(sessionID, userID string) (*WizardSession, error)
	// SelectSlot records the chosen date and time slot. Both must be valid
	// before the wizard advances to collecting details.
	SelectSlot(sessionID, date, timeSlot string) (*WizardSession, error)
	// EnterDetails records the patient's contact details.
	EnterDetails(sessionID string, details PatientDetails) (*WizardSession, error)
	// Submit persists the booking exactly once, sends the confirmation email,
	// and moves the session to confirmed.
	Submit(sessionID string) (*WizardSession, *models.Booking, error)
	// ResetSession clears the slot and patient fields and returns the wizard
	// to slot selection for reuse.
	ResetSession(sessionID string) (*WizardSession, error)

	// ListUserBookings returns the user's bookings split into upcoming and past.
	ListUserBookings(userID string) (*BookingHistory, error)
	// Reschedule moves a booking to a new slot and resets it to pending.
	Reschedule(userID, bookingID, newDate, newTimeSlot string) (*models.Booking, error)
	// Cancel transitions a booking to cancelled.
	Cancel(userID, bookingID string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	HospitalRepo hospitalRepo.HospitalRepository
	Sessions     SessionStore
	Dispatcher   notification.Dispatcher
	Reminders    tasks.ReminderScheduler

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
