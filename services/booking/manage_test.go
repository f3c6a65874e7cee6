package booking

import (
	"testing"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(f *workflowFixture, id string, status models.BookingStatus, date, slot string) {
	f.repo.bookings[id] = models.Booking{
		ID:            id,
		UserID:        "u1",
		HospitalID:    "hosp-1",
		Type:          models.BookingConsultation,
		Status:        status,
		ScheduledDate: date,
		ScheduledTime: slot,
		SlotIndex:     models.SlotIndex(slot),
		PatientName:   "Asha",
		PatientEmail:  "asha@example.com",
	}
}

func TestRescheduleMovesBookingAndResetsStatus(t *testing.T) {
	f := newWorkflowFixture()
	seedBooking(f, "b1", models.StatusConfirmed, "2025-06-10", "10:00 AM")

	record, err := f.svc.Reschedule("u1", "b1", "2025-06-15", "02:00 PM")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-15", record.ScheduledDate)
	assert.Equal(t, "02:00 PM", record.ScheduledTime)
	assert.Equal(t, models.SlotIndex("02:00 PM"), record.SlotIndex)
	assert.Equal(t, models.StatusPending, record.Status, "a reschedule needs fresh hospital confirmation")

	stored, _ := f.repo.GetByID("b1")
	assert.Equal(t, "2025-06-15", stored.ScheduledDate)
	assert.Equal(t, models.StatusPending, stored.Status)

	// The update email carries both the original and the new schedule.
	require.Len(t, f.dispatcher.updates, 1)
	payload := f.dispatcher.updates[0]
	assert.Equal(t, models.UpdateRescheduled, payload.UpdateType)
	assert.Equal(t, "2025-06-10", payload.OriginalDate)
	assert.Equal(t, "10:00 AM", payload.OriginalTime)
	assert.Equal(t, "2025-06-15", payload.NewDate)
	assert.Equal(t, "02:00 PM", payload.NewTime)

	// A fresh reminder is queued for the new slot.
	require.Len(t, f.reminders.fireAts, 1)
	assert.Equal(t, time.Date(2025, 6, 14, 14, 0, 0, 0, time.UTC), f.reminders.fireAts[0])
}

func TestRescheduleValidatesNewSlot(t *testing.T) {
	f := newWorkflowFixture()
	seedBooking(f, "b1", models.StatusPending, "2025-06-10", "10:00 AM")

	_, err := f.svc.Reschedule("u1", "b1", "2025-05-01", "10:00 AM")
	assert.Equal(t, CodeInvalidSlot, workflowCode(t, err))

	_, err = f.svc.Reschedule("u1", "b1", "2025-06-15", "10:13 AM")
	assert.Equal(t, CodeInvalidSlot, workflowCode(t, err))

	// The stored booking is untouched by failed attempts.
	stored, _ := f.repo.GetByID("b1")
	assert.Equal(t, "2025-06-10", stored.ScheduledDate)
}

func TestRescheduleGuards(t *testing.T) {
	f := newWorkflowFixture()
	seedBooking(f, "cancelled", models.StatusCancelled, "2025-06-10", "10:00 AM")
	seedBooking(f, "past", models.StatusConfirmed, "2025-05-20", "10:00 AM")

	_, err := f.svc.Reschedule("u1", "cancelled", "2025-06-15", "02:00 PM")
	assert.Equal(t, CodeNotMutable, workflowCode(t, err))

	_, err = f.svc.Reschedule("u1", "past", "2025-06-15", "02:00 PM")
	assert.Equal(t, CodeNotMutable, workflowCode(t, err))

	// Another user's booking reads as missing, not as forbidden.
	seedBooking(f, "b2", models.StatusPending, "2025-06-10", "10:00 AM")
	_, err = f.svc.Reschedule("intruder", "b2", "2025-06-15", "02:00 PM")
	assert.Equal(t, CodeNotFound, workflowCode(t, err))
}

func TestCancelPendingAndConfirmed(t *testing.T) {
	f := newWorkflowFixture()
	seedBooking(f, "b1", models.StatusPending, "2025-06-10", "10:00 AM")
	seedBooking(f, "b2", models.StatusConfirmed, "2025-06-12", "09:30 AM")

	for _, id := range []string{"b1", "b2"} {
		record, err := f.svc.Cancel("u1", id)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, record.Status)
	}

	require.Len(t, f.dispatcher.updates, 2)
	assert.Equal(t, models.UpdateCancelled, f.dispatcher.updates[0].UpdateType)

	// A cancelled booking cannot be cancelled again.
	_, err := f.svc.Cancel("u1", "b1")
	assert.Equal(t, CodeNotMutable, workflowCode(t, err))
}

func TestCancelPastBookingRejected(t *testing.T) {
	f := newWorkflowFixture()
	seedBooking(f, "past", models.StatusConfirmed, "2025-05-20", "10:00 AM")

	_, err := f.svc.Cancel("u1", "past")
	assert.Equal(t, CodeNotMutable, workflowCode(t, err))
	assert.Empty(t, f.dispatcher.updates)
}

func TestListUserBookingsPartition(t *testing.T) {
	f := newWorkflowFixture()
	seedBooking(f, "upcoming", models.StatusConfirmed, "2025-06-10", "10:00 AM")
	seedBooking(f, "today", models.StatusPending, "2025-06-01", "02:00 PM")
	seedBooking(f, "done", models.StatusConfirmed, "2025-05-20", "10:00 AM")
	seedBooking(f, "dropped", models.StatusCancelled, "2025-06-15", "10:00 AM")

	history, err := f.svc.ListUserBookings("u1")
	require.NoError(t, err)

	upcoming := map[string]models.BookingStatus{}
	for _, b := range history.Upcoming {
		upcoming[b.ID] = b.Status
	}
	past := map[string]models.BookingStatus{}
	for _, b := range history.Past {
		past[b.ID] = b.Status
	}

	assert.Len(t, upcoming, 2)
	assert.Contains(t, upcoming, "upcoming")
	assert.Contains(t, past, "done")
	assert.Contains(t, past, "dropped")

	// A past, never-cancelled booking reads as completed.
	assert.Equal(t, models.StatusCompleted, past["done"])
	assert.Equal(t, models.StatusCancelled, past["dropped"])
}
