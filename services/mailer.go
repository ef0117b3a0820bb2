package services

import (
	"errors"
	"fmt"
	"time"

	"astrokalki/config"
	"astrokalki/models"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type mailSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

type Mailer struct {
	client     mailSender
	from       *mail.Email
	adminEmail string
}

// NewMailer returns nil when SendGrid is not configured.
func NewMailer(cfg config.MailConfig) *Mailer {
	if cfg.SendGridAPIKey == "" {
		return nil
	}
	return &Mailer{
		client:     sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:       mail.NewEmail("AstroKalki", cfg.From),
		adminEmail: cfg.AdminEmail,
	}
}

func (m *Mailer) send(to *mail.Email, subject, body string) error {
	message := mail.NewSingleEmail(m.from, subject, to, body, body)
	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendAppointmentConfirmation mails the customer the booking details and the
// token they need to view or change it.
func (m *Mailer) SendAppointmentConfirmation(appt models.Appointment) error {
	subject := fmt.Sprintf("Your AstroKalki consultation on %s", appt.ScheduledAt.Format("Mon, 02 Jan 2006"))
	body := fmt.Sprintf(`Namaste %s,

Your consultation request has been received.

Session: %s
When: %s
Duration: %d minutes
Price: ₹%d
Status: %s

Meeting link:
%s

Manage your booking with:
Appointment ID: %s
Confirmation token: %s

Keep this token private. Anyone with it can view or change the booking.

- AstroKalki`,
		appt.CustomerName,
		appt.SessionType,
		appt.ScheduledAt.Format(time.RFC1123),
		appt.Duration,
		appt.Price,
		appt.Status,
		appt.MeetingURL,
		appt.ID,
		appt.ConfirmationToken,
	)
	return m.send(mail.NewEmail(appt.CustomerName, appt.CustomerEmail), subject, body)
}

var errNoAdminEmail = errors.New("no admin email configured")

func (m *Mailer) hasAdmin() bool {
	return m != nil && m.adminEmail != ""
}

// SendPaymentReceived asks the admin to check a submitted payment reference.
func (m *Mailer) SendPaymentReceived(proof models.PaymentProof, plan models.UserPlan) error {
	if !m.hasAdmin() {
		return errNoAdminEmail
	}
	subject := fmt.Sprintf("[AstroKalki] Payment proof %s needs verification", plan.TransactionID)
	body := fmt.Sprintf(`A user submitted a payment proof and was upgraded to %s.

Method: %s
Reference: %s
Amount: ₹%.2f
Submitted at: %s

Check the reference against the %s statement.`,
		plan.Plan, plan.PaymentMethod, plan.TransactionID, proof.Amount, plan.UpgradedAt, plan.PaymentMethod)
	return m.send(mail.NewEmail("Admin", m.adminEmail), subject, body)
}
