package notification

import (
	"context"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
)

// Mailer defines methods for sending transactional booking emails.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, payload models.BookingConfirmationPayload) error
	SendBookingUpdate(ctx context.Context, payload models.BookingUpdatePayload) error
	SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error
	SendPasswordReset(ctx context.Context, payload models.PasswordResetPayload) error
}

// Dispatcher hands notification work off the request path. Each Dispatch call
// returns a channel that delivers exactly one result: nil on success, the send
// error otherwise. Callers that need the outcome (the booking wizard records
// whether the confirmation went out) receive on the channel; callers that do
// not simply drop it.
type Dispatcher interface {
	DispatchConfirmation(payload models.BookingConfirmationPayload) <-chan error
	DispatchUpdate(payload models.BookingUpdatePayload) <-chan error
}
