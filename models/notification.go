package models

// BookingUpdateKind distinguishes the two flavours of update email.
type BookingUpdateKind string

const (
	UpdateRescheduled BookingUpdateKind = "rescheduled"
	UpdateCancelled   BookingUpdateKind = "cancelled"
)

// BookingConfirmationPayload carries everything the confirmation email needs.
type BookingConfirmationPayload struct {
	BookingID     string      `json:"bookingId"`
	PatientName   string      `json:"patientName"`
	PatientEmail  string      `json:"patientEmail"`
	HospitalName  string      `json:"hospitalName"`
	DoctorName    string      `json:"doctorName,omitempty"`
	SurgeryName   string      `json:"surgeryName,omitempty"`
	BookingType   BookingType `json:"bookingType"`
	ScheduledDate string      `json:"scheduledDate"`
	ScheduledTime string      `json:"scheduledTime"`
}

// BookingUpdatePayload carries a reschedule or cancellation email. For
// reschedules both the original and the new date/time are present.
type BookingUpdatePayload struct {
	BookingID    string            `json:"bookingId"`
	PatientName  string            `json:"patientName"`
	PatientEmail string            `json:"patientEmail"`
	HospitalName string            `json:"hospitalName"`
	BookingType  BookingType       `json:"bookingType"`
	UpdateType   BookingUpdateKind `json:"updateType"`
	OriginalDate string            `json:"originalDate"`
	OriginalTime string            `json:"originalTime"`
	NewDate      string            `json:"newDate,omitempty"`
	NewTime      string            `json:"newTime,omitempty"`
}

// ReminderPayload is queued for delivery shortly before an appointment.
type ReminderPayload struct {
	BookingID     string      `json:"bookingId"`
	PatientName   string      `json:"patientName"`
	PatientEmail  string      `json:"patientEmail"`
	HospitalName  string      `json:"hospitalName"`
	BookingType   BookingType `json:"bookingType"`
	ScheduledDate string      `json:"scheduledDate"`
	ScheduledTime string      `json:"scheduledTime"`
}

// PasswordResetPayload carries a password-reset email.
type PasswordResetPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	ResetURL string `json:"resetUrl"`
}
