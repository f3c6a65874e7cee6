package notification

import (
	"context"
	"fmt"

	"github.com/itssanjain-collab/surgery-hub-connect/config"
	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridMailer sends transactional emails through the SendGrid API.
type SendGridMailer struct {
	client *sendgrid.Client
}

// NewSendGridMailer builds a mailer from the configured API key. An empty key
// is tolerated so local development can boot; sends will fail and be logged.
func NewSendGridMailer() *SendGridMailer {
	apiKey := config.AppConfig.SendGridAPIKey
	if apiKey == "" {
		utils.GetLogger().Warn("SENDGRID_API_KEY is not set; emails will fail to send")
	}
	return &SendGridMailer{client: sendgrid.NewSendClient(apiKey)}
}

// SendBookingConfirmation emails the patient their booking details.
func (m *SendGridMailer) SendBookingConfirmation(ctx context.Context, p models.BookingConfirmationPayload) error {
	plain, html := confirmationBody(p)
	return m.send(ctx, p.PatientName, p.PatientEmail, confirmationSubject(p), plain, html)
}

// SendBookingUpdate emails the patient a reschedule or cancellation notice.
func (m *SendGridMailer) SendBookingUpdate(ctx context.Context, p models.BookingUpdatePayload) error {
	plain, html := updateBody(p)
	return m.send(ctx, p.PatientName, p.PatientEmail, updateSubject(p), plain, html)
}

// SendBookingReminder emails the patient shortly before their appointment.
func (m *SendGridMailer) SendBookingReminder(ctx context.Context, p models.ReminderPayload) error {
	plain, html := reminderBody(p)
	return m.send(ctx, p.PatientName, p.PatientEmail, reminderSubject(p), plain, html)
}

// SendPasswordReset emails a password-reset link.
func (m *SendGridMailer) SendPasswordReset(ctx context.Context, p models.PasswordResetPayload) error {
	plain, html := passwordResetBody(p)
	return m.send(ctx, p.Name, p.Email, passwordResetSubject(), plain, html)
}

func (m *SendGridMailer) send(ctx context.Context, toName, toAddr, subject, plain, html string) error {
	from := mail.NewEmail(config.AppConfig.EmailFromName, config.AppConfig.EmailFromAddr)
	to := mail.NewEmail(toName, toAddr)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email %q to %s: %w", subject, toAddr, err)
	}
	if rejected(resp) {
		return fmt.Errorf("sendgrid rejected email %q to %s: status %d", subject, toAddr, resp.StatusCode)
	}

	utils.GetLogger().Info("email sent",
		zap.String("subject", subject),
		zap.Int("status", resp.StatusCode))
	return nil
}

func rejected(resp *rest.Response) bool {
	return resp.StatusCode >= 400
}
