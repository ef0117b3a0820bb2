package services

import (
	"testing"
	"time"

	"astrokalki/models"

	"github.com/stretchr/testify/assert"
)

func TestProPlanFromProof(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 30, 0, 0, time.FixedZone("IST", 19800))

	plan := ProPlanFromProof(models.PaymentProof{UTR: " 123456789012 ", Amount: 100}, now)
	assert.Equal(t, models.PlanPro, plan.Plan)
	assert.Equal(t, models.PaymentUPI, plan.PaymentMethod)
	assert.Equal(t, "123456789012", plan.TransactionID)
	assert.Equal(t, "2026-03-01T03:00:00Z", plan.UpgradedAt)

	plan = ProPlanFromProof(models.PaymentProof{UTR: "PAYID-XYZ", Amount: 100, Method: models.PaymentPayPal, Timestamp: "2026-02-28T10:00:00Z"}, now)
	assert.Equal(t, models.PaymentPayPal, plan.PaymentMethod)
	assert.Equal(t, "2026-02-28T10:00:00Z", plan.UpgradedAt)
}

func TestNewConfirmationToken(t *testing.T) {
	a, err := NewConfirmationToken()
	assert.NoError(t, err)
	b, err := NewConfirmationToken()
	assert.NoError(t, err)

	assert.Len(t, a, ConfirmationTokenBytes*2)
	assert.Regexp(t, "^[0-9a-f]+$", a)
	assert.NotEqual(t, a, b)
}

func TestNewAppointmentID(t *testing.T) {
	assert.Len(t, NewAppointmentID(), 36)
	assert.NotEqual(t, NewAppointmentID(), NewAppointmentID())
}
