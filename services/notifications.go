package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"astrokalki/models"

	"go.uber.org/zap"
)

// Notifier receives booking and billing events. Delivery is best effort.
type Notifier interface {
	AppointmentBooked(appt models.Appointment)
	PaymentProofSubmitted(proof models.PaymentProof, plan models.UserPlan)
}

// Notifications sends email and Slack messages in the background. Either
// channel may be nil.
type Notifications struct {
	mailer *Mailer
	slack  *SlackNotifier
	logger *zap.Logger
	wg     sync.WaitGroup
}

func NewNotifications(mailer *Mailer, slack *SlackNotifier, logger *zap.Logger) *Notifications {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifications{mailer: mailer, slack: slack, logger: logger}
}

func (n *Notifications) Enabled() bool {
	return n != nil && (n.mailer != nil || n.slack != nil)
}

func (n *Notifications) AppointmentBooked(appt models.Appointment) {
	if n.mailer != nil {
		n.dispatch("appointment_email", func(context.Context) error {
			return n.mailer.SendAppointmentConfirmation(appt)
		})
	}
	if n.slack != nil {
		text := fmt.Sprintf("New booking\n\nSession: %s\nCustomer: %s <%s>\nWhen: %s\nPrice: ₹%d\nID: %s",
			appt.SessionType, appt.CustomerName, appt.CustomerEmail,
			appt.ScheduledAt.Format(time.RFC3339), appt.Price, appt.ID)
		n.dispatch("appointment_slack", func(ctx context.Context) error {
			return n.slack.Post(ctx, text)
		})
	}
}

func (n *Notifications) PaymentProofSubmitted(proof models.PaymentProof, plan models.UserPlan) {
	switch {
	case n.mailer.hasAdmin():
		n.dispatch("payment_email", func(context.Context) error {
			return n.mailer.SendPaymentReceived(proof, plan)
		})
	case n.mailer != nil:
		n.logger.Debug("payment email skipped, ADMIN_EMAIL not set")
	}
	if n.slack != nil {
		text := fmt.Sprintf("Payment proof submitted (unverified)\n\nMethod: %s\nReference: %s\nAmount: ₹%.2f\nAt: %s",
			plan.PaymentMethod, plan.TransactionID, proof.Amount, plan.UpgradedAt)
		n.dispatch("payment_slack", func(ctx context.Context) error {
			return n.slack.Post(ctx, text)
		})
	}
}

func (n *Notifications) dispatch(kind string, send func(context.Context) error) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				n.logger.Error("notification panic recovered", zap.String("kind", kind), zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := send(ctx); err != nil {
			n.logger.Warn("notification failed", zap.String("kind", kind), zap.Error(err))
			return
		}
		n.logger.Info("notification sent", zap.String("kind", kind))
	}()
}

// Wait blocks until in-flight notifications finish.
func (n *Notifications) Wait() {
	n.wg.Wait()
}
