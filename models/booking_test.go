package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

func TestTimeSlotGrid(t *testing.T) {
	assert.Len(t, TimeSlots, 14)
	assert.Equal(t, 0, SlotIndex("09:00 AM"))
	assert.Equal(t, len(TimeSlots)-1, SlotIndex("05:00 PM"))

	// The lunch gap is not bookable.
	assert.False(t, ValidTimeSlot("12:30 PM"))
	assert.False(t, ValidTimeSlot("01:00 PM"))
	assert.True(t, ValidTimeSlot("12:00 PM"))
	assert.True(t, ValidTimeSlot("02:00 PM"))

	// Grid order matches chronological order.
	for i := 1; i < len(TimeSlots); i++ {
		assert.Greater(t, SlotIndex(TimeSlots[i]), SlotIndex(TimeSlots[i-1]))
	}

	assert.Equal(t, -1, SlotIndex("10:15 AM"))
}

func TestScheduledDayPast(t *testing.T) {
	b := Booking{ScheduledDate: "2025-05-31"}
	assert.True(t, b.ScheduledDayPast(now))

	// The scheduled day itself is not past, even late in the day.
	b.ScheduledDate = "2025-06-01"
	assert.False(t, b.ScheduledDayPast(now))

	b.ScheduledDate = "2025-06-02"
	assert.False(t, b.ScheduledDayPast(now))

	// Unparseable dates are treated as not past.
	b.ScheduledDate = "soon"
	assert.False(t, b.ScheduledDayPast(now))
}

func TestEffectiveStatus(t *testing.T) {
	past := Booking{ScheduledDate: "2025-05-20", Status: StatusConfirmed}
	assert.Equal(t, StatusCompleted, past.EffectiveStatus(now))

	pastPending := Booking{ScheduledDate: "2025-05-20", Status: StatusPending}
	assert.Equal(t, StatusCompleted, pastPending.EffectiveStatus(now))

	// Cancellation survives the date passing.
	cancelled := Booking{ScheduledDate: "2025-05-20", Status: StatusCancelled}
	assert.Equal(t, StatusCancelled, cancelled.EffectiveStatus(now))

	upcoming := Booking{ScheduledDate: "2025-06-10", Status: StatusConfirmed}
	assert.Equal(t, StatusConfirmed, upcoming.EffectiveStatus(now))
}

func TestMutable(t *testing.T) {
	assert.True(t, (&Booking{ScheduledDate: "2025-06-10", Status: StatusPending}).Mutable(now))
	assert.False(t, (&Booking{ScheduledDate: "2025-06-10", Status: StatusCancelled}).Mutable(now))
	assert.False(t, (&Booking{ScheduledDate: "2025-05-20", Status: StatusConfirmed}).Mutable(now))
}
