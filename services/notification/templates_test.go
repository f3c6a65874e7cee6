package notification

import (
	"strings"
	"testing"

	"github.com/itssanjain-collab/surgery-hub-connect/models"

	"github.com/stretchr/testify/assert"
)

func TestBookingRef(t *testing.T) {
	assert.Equal(t, "A1B2C3D4", BookingRef("a1b2c3d4-e5f6-7890"))
	assert.Equal(t, "AB", BookingRef("ab"))
}

func TestConfirmationBodyIncludesDetails(t *testing.T) {
	payload := models.BookingConfirmationPayload{
		BookingID:     "a1b2c3d4-e5f6",
		PatientName:   "Asha Patel",
		PatientEmail:  "asha@example.com",
		HospitalName:  "Aster CMI",
		DoctorName:    "Dr. Rao",
		SurgeryName:   "Knee Replacement",
		BookingType:   models.BookingSurgery,
		ScheduledDate: "2025-06-10",
		ScheduledTime: "10:00 AM",
	}

	plain, html := confirmationBody(payload)
	for _, body := range []string{plain, html} {
		assert.Contains(t, body, "Asha Patel")
		assert.Contains(t, body, "Aster CMI")
		assert.Contains(t, body, "10:00 AM")
		assert.Contains(t, body, "A1B2C3D4")
		assert.Contains(t, body, "Tuesday, 10 June 2025")
	}
	assert.Contains(t, html, "Dr. Rao")
	assert.Contains(t, html, "Knee Replacement")

	assert.Equal(t, "Booking Confirmed - Surgery at Aster CMI", confirmationSubject(payload))
}

func TestUpdateBodyRescheduledCarriesBothSchedules(t *testing.T) {
	payload := models.BookingUpdatePayload{
		BookingID:    "a1b2c3d4",
		PatientName:  "Asha",
		HospitalName: "Aster CMI",
		BookingType:  models.BookingConsultation,
		UpdateType:   models.UpdateRescheduled,
		OriginalDate: "2025-06-10",
		OriginalTime: "10:00 AM",
		NewDate:      "2025-06-15",
		NewTime:      "02:00 PM",
	}

	plain, html := updateBody(payload)
	for _, body := range []string{plain, html} {
		assert.Contains(t, body, "10:00 AM")
		assert.Contains(t, body, "02:00 PM")
		assert.Contains(t, body, "Tuesday, 10 June 2025")
		assert.Contains(t, body, "Sunday, 15 June 2025")
	}
	assert.True(t, strings.HasPrefix(updateSubject(payload), "Booking Rescheduled"))
}

func TestUpdateBodyCancelled(t *testing.T) {
	payload := models.BookingUpdatePayload{
		BookingID:    "a1b2c3d4",
		PatientName:  "Asha",
		HospitalName: "Aster CMI",
		BookingType:  models.BookingVisit,
		UpdateType:   models.UpdateCancelled,
		OriginalDate: "2025-06-10",
		OriginalTime: "10:00 AM",
	}

	plain, _ := updateBody(payload)
	assert.Contains(t, plain, "cancelled")
	assert.NotContains(t, plain, "New:")
	assert.Equal(t, "Booking Cancelled - Hospital Visit at Aster CMI", updateSubject(payload))
}

func TestPrettyDatePassesThroughGarbage(t *testing.T) {
	assert.Equal(t, "someday", prettyDate("someday"))
}
