package models

// DateLayout is the wire format for scheduled dates.
const DateLayout = "2006-01-02"

// MaxAdvanceDays bounds how far ahead a booking may be scheduled.
const MaxAdvanceDays = 60

// TimeSlots is the fixed ordered grid of bookable times: half-hour steps from
// 09:00 AM with a lunch gap between 12:00 PM and 02:00 PM.
var TimeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM", "04:00 PM",
	"04:30 PM", "05:00 PM",
}

// SlotIndex returns the position of a time slot in the grid, or -1 when the
// value is not a valid slot.
func SlotIndex(slot string) int {
	for i, s := range TimeSlots {
		if s == slot {
			return i
		}
	}
	return -1
}

// ValidTimeSlot reports whether slot is one of the fixed grid entries.
func ValidTimeSlot(slot string) bool {
	return SlotIndex(slot) >= 0
}
