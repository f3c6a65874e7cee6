package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
)

// BookingRef derives the short reference code shown to patients: the first
// eight characters of the booking id, uppercased.
func BookingRef(bookingID string) string {
	ref := bookingID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return strings.ToUpper(ref)
}

// prettyDate renders a "2006-01-02" date as "Monday, 2 January 2006". Dates
// that fail to parse are passed through untouched.
func prettyDate(date string) string {
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return day.Format("Monday, 2 January 2006")
}

func confirmationSubject(p models.BookingConfirmationPayload) string {
	return fmt.Sprintf("Booking Confirmed - %s at %s", p.BookingType.Label(), p.HospitalName)
}

func confirmationBody(p models.BookingConfirmationPayload) (plain, html string) {
	var details strings.Builder
	detailRow(&details, "Booking Type", p.BookingType.Label())
	detailRow(&details, "Hospital", p.HospitalName)
	if p.DoctorName != "" {
		detailRow(&details, "Doctor", p.DoctorName)
	}
	if p.SurgeryName != "" {
		detailRow(&details, "Surgery", p.SurgeryName)
	}
	detailRow(&details, "Date", prettyDate(p.ScheduledDate))
	detailRow(&details, "Time", p.ScheduledTime)

	plain = fmt.Sprintf(
		"Hello %s,\n\nYour %s has been successfully booked.\n\nHospital: %s\nDate: %s\nTime: %s\n\nPlease arrive 15 minutes before your scheduled time and bring any relevant medical records.\n\nBooking Reference: %s\n",
		p.PatientName, strings.ToLower(p.BookingType.Label()), p.HospitalName,
		prettyDate(p.ScheduledDate), p.ScheduledTime, BookingRef(p.BookingID),
	)

	html = emailShell("Your Booking is Confirmed!", fmt.Sprintf(`
    <p style="font-size:18px;color:#333;">Hello <strong>%s</strong>,</p>
    <p style="font-size:16px;color:#666;line-height:1.6;">Your %s has been successfully booked. Please find the details below:</p>
    <table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f8fafc;border-radius:12px;"><tr><td style="padding:25px;">%s</td></tr></table>
    <p style="font-size:14px;color:#64748b;margin:30px 0 0;padding:20px;background-color:#fef3c7;border-radius:8px;border-left:4px solid #f59e0b;"><strong>Important:</strong> Please arrive 15 minutes before your scheduled time. Bring any relevant medical records.</p>
    <p style="font-size:14px;color:#666;margin:30px 0 0;">Booking Reference: <strong style="color:#1E88E5;">%s</strong></p>`,
		p.PatientName, strings.ToLower(p.BookingType.Label()), details.String(), BookingRef(p.BookingID)))
	return plain, html
}

func updateSubject(p models.BookingUpdatePayload) string {
	header := "Booking Rescheduled"
	if p.UpdateType == models.UpdateCancelled {
		header = "Booking Cancelled"
	}
	return fmt.Sprintf("%s - %s at %s", header, p.BookingType.Label(), p.HospitalName)
}

func updateBody(p models.BookingUpdatePayload) (plain, html string) {
	ref := BookingRef(p.BookingID)
	typ := strings.ToLower(p.BookingType.Label())

	if p.UpdateType == models.UpdateCancelled {
		plain = fmt.Sprintf(
			"Hello %s,\n\nYour %s at %s has been cancelled as requested.\n\nOriginal appointment: %s at %s\n\nBooking Reference: %s\n\nIf you'd like to book a new appointment, please visit our website.\n",
			p.PatientName, typ, p.HospitalName,
			prettyDate(p.OriginalDate), p.OriginalTime, ref,
		)
		html = emailShell("Booking Cancelled", fmt.Sprintf(`
    <p style="font-size:18px;color:#333;">Hello <strong>%s</strong>,</p>
    <p style="font-size:16px;color:#666;line-height:1.6;">Your %s at <strong>%s</strong> has been cancelled as requested.</p>
    <table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#fef2f2;border-radius:12px;border-left:4px solid #EF4444;"><tr><td style="padding:25px;">
      <p style="margin:0 0 10px;color:#64748b;font-size:14px;">Original Appointment</p>
      <p style="margin:0;color:#1e293b;font-size:16px;"><strong>%s</strong> at <strong>%s</strong></p>
    </td></tr></table>
    <p style="font-size:14px;color:#666;margin:30px 0 0;">Booking Reference: <strong style="color:#1E88E5;">%s</strong></p>
    <p style="font-size:14px;color:#666;margin:20px 0 0;">If you'd like to book a new appointment, please visit our website.</p>`,
			p.PatientName, typ, p.HospitalName,
			prettyDate(p.OriginalDate), p.OriginalTime, ref))
		return plain, html
	}

	plain = fmt.Sprintf(
		"Hello %s,\n\nYour %s at %s has been rescheduled.\n\nPrevious: %s at %s\nNew: %s at %s\n\nPlease arrive 15 minutes before your new scheduled time.\n\nBooking Reference: %s\n",
		p.PatientName, typ, p.HospitalName,
		prettyDate(p.OriginalDate), p.OriginalTime,
		prettyDate(p.NewDate), p.NewTime, ref,
	)
	html = emailShell("Booking Rescheduled", fmt.Sprintf(`
    <p style="font-size:18px;color:#333;">Hello <strong>%s</strong>,</p>
    <p style="font-size:16px;color:#666;line-height:1.6;">Your %s at <strong>%s</strong> has been rescheduled. Please see the updated details below:</p>
    <table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f8fafc;border-radius:12px;"><tr><td style="padding:25px;">
      <p style="margin:0 0 10px;color:#64748b;font-size:14px;">Previous Date &amp; Time</p>
      <p style="margin:0 0 20px;color:#94a3b8;font-size:16px;text-decoration:line-through;">%s at %s</p>
      <p style="margin:0 0 10px;color:#64748b;font-size:14px;">New Date &amp; Time</p>
      <p style="margin:0;color:#1e293b;font-size:16px;font-weight:600;">%s at %s</p>
    </td></tr></table>
    <p style="font-size:14px;color:#64748b;margin:30px 0 0;padding:20px;background-color:#fef3c7;border-radius:8px;border-left:4px solid #f59e0b;"><strong>Reminder:</strong> Please arrive 15 minutes before your new scheduled time.</p>
    <p style="font-size:14px;color:#666;margin:30px 0 0;">Booking Reference: <strong style="color:#1E88E5;">%s</strong></p>`,
		p.PatientName, typ, p.HospitalName,
		prettyDate(p.OriginalDate), p.OriginalTime,
		prettyDate(p.NewDate), p.NewTime, ref))
	return plain, html
}

func reminderSubject(p models.ReminderPayload) string {
	return fmt.Sprintf("Reminder - %s at %s tomorrow", p.BookingType.Label(), p.HospitalName)
}

func reminderBody(p models.ReminderPayload) (plain, html string) {
	plain = fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder about your upcoming %s at %s on %s at %s.\n\nPlease arrive 15 minutes early and bring any relevant medical records.\n\nBooking Reference: %s\n",
		p.PatientName, strings.ToLower(p.BookingType.Label()), p.HospitalName,
		prettyDate(p.ScheduledDate), p.ScheduledTime, BookingRef(p.BookingID),
	)
	html = emailShell("Appointment Reminder", fmt.Sprintf(`
    <p style="font-size:18px;color:#333;">Hello <strong>%s</strong>,</p>
    <p style="font-size:16px;color:#666;line-height:1.6;">This is a reminder about your upcoming %s at <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong>.</p>
    <p style="font-size:14px;color:#64748b;margin:30px 0 0;padding:20px;background-color:#fef3c7;border-radius:8px;border-left:4px solid #f59e0b;"><strong>Important:</strong> Please arrive 15 minutes early and bring any relevant medical records.</p>
    <p style="font-size:14px;color:#666;margin:30px 0 0;">Booking Reference: <strong style="color:#1E88E5;">%s</strong></p>`,
		p.PatientName, strings.ToLower(p.BookingType.Label()), p.HospitalName,
		prettyDate(p.ScheduledDate), p.ScheduledTime, BookingRef(p.BookingID)))
	return plain, html
}

func passwordResetSubject() string {
	return "Reset your Surgery Hub password"
}

func passwordResetBody(p models.PasswordResetPayload) (plain, html string) {
	plain = fmt.Sprintf(
		"Hello %s,\n\nWe received a request to reset your Surgery Hub password. Open the link below to choose a new one:\n\n%s\n\nThe link expires in 30 minutes. If you didn't request this, you can safely ignore this email.\n",
		p.Name, p.ResetURL,
	)
	html = emailShell("Password Reset", fmt.Sprintf(`
    <p style="font-size:18px;color:#333;">Hello <strong>%s</strong>,</p>
    <p style="font-size:16px;color:#666;line-height:1.6;">We received a request to reset your Surgery Hub password. Click the button below to choose a new one:</p>
    <p style="text-align:center;margin:30px 0;"><a href="%s" style="background:#1E88E5;color:#ffffff;padding:14px 28px;border-radius:8px;text-decoration:none;font-size:16px;font-weight:600;">Reset Password</a></p>
    <p style="font-size:14px;color:#64748b;">The link expires in 30 minutes. If you didn't request this, you can safely ignore this email.</p>`,
		p.Name, p.ResetURL))
	return plain, html
}

func detailRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, `<p style="margin:0 0 4px;color:#64748b;font-size:14px;">%s</p><p style="margin:0 0 16px;color:#1e293b;font-size:16px;font-weight:600;">%s</p>`, label, value)
}

// emailShell wraps body content in the shared branded layout.
func emailShell(header, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
  <body style="margin:0;padding:0;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;background-color:#f5f7fa;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width:600px;margin:0 auto;background-color:#ffffff;">
      <tr>
        <td style="background:linear-gradient(135deg,#1E88E5 0%%,#26A69A 100%%);padding:40px 30px;text-align:center;">
          <h1 style="color:#ffffff;margin:0;font-size:28px;font-weight:600;">Surgery Hub</h1>
          <p style="color:rgba(255,255,255,0.9);margin:10px 0 0;font-size:16px;">%s</p>
        </td>
      </tr>
      <tr><td style="padding:40px 30px;">%s</td></tr>
      <tr>
        <td style="background-color:#f8fafc;padding:30px;text-align:center;border-top:1px solid #e2e8f0;">
          <p style="font-size:14px;color:#64748b;margin:0 0 10px;">Questions? Contact the hospital directly.</p>
          <p style="font-size:12px;color:#94a3b8;margin:0;">&copy; %d Surgery Hub. All rights reserved.</p>
        </td>
      </tr>
    </table>
  </body>
</html>`, header, body, time.Now().Year())
}
