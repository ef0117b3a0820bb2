package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentPatchApply(t *testing.T) {
	a := Appointment{Status: StatusCancelled, Notes: "old", CustomerPhone: "1"}
	status := StatusPending
	notes := "new"
	when := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	AppointmentPatch{Status: &status, Notes: &notes, ScheduledAt: &when}.Apply(&a)

	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, "new", a.Notes)
	assert.Equal(t, when, a.ScheduledAt)
	assert.Equal(t, "1", a.CustomerPhone)
}

func TestSeverityValid(t *testing.T) {
	assert.True(t, SeverityHigh.Valid())
	assert.False(t, Severity("extreme").Valid())
	assert.False(t, Severity("").Valid())
}
