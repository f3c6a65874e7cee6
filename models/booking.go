package models

import "time"

// BookingType distinguishes what the patient is reserving.
type BookingType string

const (
	BookingConsultation BookingType = "consultation"
	BookingSurgery      BookingType = "surgery"
	BookingVisit        BookingType = "visit"
)

// Valid reports whether t is a known booking type.
func (t BookingType) Valid() bool {
	switch t {
	case BookingConsultation, BookingSurgery, BookingVisit:
		return true
	}
	return false
}

// Label returns the display label for a booking type.
func (t BookingType) Label() string {
	switch t {
	case BookingConsultation:
		return "Consultation"
	case BookingSurgery:
		return "Surgery"
	case BookingVisit:
		return "Hospital Visit"
	}
	return string(t)
}

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is a patient's reserved slot at a hospital. It is owned by the user
// who created it; no other actor mutates it.
type Booking struct {
	ID               string        `bson:"id" json:"id"`
	UserID           string        `bson:"user_id" json:"userId"`
	HospitalID       string        `bson:"hospital_id" json:"hospitalId"`
	DoctorID         string        `bson:"doctor_id,omitempty" json:"doctorId,omitempty"`
	SurgeryID        string        `bson:"surgery_id,omitempty" json:"surgeryId,omitempty"`
	Type             BookingType   `bson:"booking_type" json:"bookingType"`
	Status           BookingStatus `bson:"status" json:"status"`
	ScheduledDate    string        `bson:"scheduled_date" json:"scheduledDate"` // "YYYY-MM-DD"
	ScheduledTime    string        `bson:"scheduled_time" json:"scheduledTime"` // e.g. "10:00 AM"
	SlotIndex        int           `bson:"slot_index" json:"-"`                 // position in the slot grid, for ordering
	PatientName      string        `bson:"patient_name" json:"patientName"`
	PatientEmail     string        `bson:"patient_email" json:"patientEmail"`
	PatientPhone     string        `bson:"patient_phone,omitempty" json:"patientPhone,omitempty"`
	Notes            string        `bson:"notes,omitempty" json:"notes,omitempty"`
	ConfirmationSent bool          `bson:"confirmation_sent" json:"confirmationSent"`
	CreatedAt        time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updated_at" json:"updatedAt"`
}

// ScheduledDayPast reports whether the booking's scheduled date is before today.
func (b *Booking) ScheduledDayPast(now time.Time) bool {
	day, err := time.ParseInLocation(DateLayout, b.ScheduledDate, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.Before(today)
}

// EffectiveStatus maps a stored status to what the user observes: a booking
// whose date has passed and that was never cancelled reads as completed.
func (b *Booking) EffectiveStatus(now time.Time) BookingStatus {
	if b.Status != StatusCancelled && b.ScheduledDayPast(now) {
		return StatusCompleted
	}
	return b.Status
}

// Mutable reports whether cancel/reschedule may still be offered: the date is
// not in the past and the booking is not already cancelled.
func (b *Booking) Mutable(now time.Time) bool {
	return b.Status != StatusCancelled && !b.ScheduledDayPast(now)
}
