package bookingRepo

import "github.com/itssanjain-collab/surgery-hub-connect/models"

// BookingRepository defines methods for booking record access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// ListByUser retrieves a user's bookings ordered by scheduled date then
	// time slot, ascending.
	ListByUser(userID string) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// UpdateSchedule rewrites a booking's date/time and resets its status.
	UpdateSchedule(id, date, slot string, slotIndex int, status models.BookingStatus) error
	// UpdateStatus transitions a booking to the given status.
	UpdateStatus(id string, status models.BookingStatus) error
	// SetConfirmationSent records whether the confirmation email went out.
	SetConfirmationSent(id string, sent bool) error
}
