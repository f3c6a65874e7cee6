package notification

import (
	"context"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"go.uber.org/zap"
)

// DefaultDispatcher runs each send on its own goroutine with a bounded
// timeout and reports the result on a buffered channel, so a slow email
// provider can never wedge a booking submission.
type DefaultDispatcher struct {
	Mailer      Mailer
	SendTimeout time.Duration
}

// NewDefaultDispatcher wires a dispatcher over the given mailer.
func NewDefaultDispatcher(mailer Mailer) *DefaultDispatcher {
	return &DefaultDispatcher{Mailer: mailer, SendTimeout: 15 * time.Second}
}

// DispatchConfirmation sends a booking confirmation email asynchronously.
func (d *DefaultDispatcher) DispatchConfirmation(payload models.BookingConfirmationPayload) <-chan error {
	return d.dispatch(func(ctx context.Context) error {
		return d.Mailer.SendBookingConfirmation(ctx, payload)
	}, "confirmation", payload.BookingID)
}

// DispatchUpdate sends a reschedule or cancellation email asynchronously.
func (d *DefaultDispatcher) DispatchUpdate(payload models.BookingUpdatePayload) <-chan error {
	return d.dispatch(func(ctx context.Context) error {
		return d.Mailer.SendBookingUpdate(ctx, payload)
	}, string(payload.UpdateType), payload.BookingID)
}

func (d *DefaultDispatcher) dispatch(send func(context.Context) error, kind, bookingID string) <-chan error {
	result := make(chan error, 1)

	go func() {
		timeout := d.SendTimeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := send(ctx)
		if err != nil {
			utils.GetLogger().Error("notification send failed",
				zap.String("kind", kind),
				zap.String("bookingID", bookingID),
				zap.Error(err))
		}
		result <- err
	}()

	return result
}
