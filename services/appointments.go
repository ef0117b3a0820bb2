package services

import (
	"strings"
	"time"

	"astrokalki/catalog"
	"astrokalki/models"
)

// MeetingURL joins the base and the appointment id with "-" so the default
// Jitsi base yields a single room name.
func MeetingURL(base, id string) string {
	return strings.TrimRight(base, "/-") + "-" + id
}

// NewAppointment builds a pending booking for session. Duration and price
// always come from the catalog, never from the request.
func NewAppointment(in models.AppointmentInput, session catalog.Session, meetingBase string, now time.Time) (models.Appointment, error) {
	token, err := NewConfirmationToken()
	if err != nil {
		return models.Appointment{}, err
	}
	id := NewAppointmentID()
	return models.Appointment{
		ID:                id,
		ConfirmationToken: token,
		SessionType:       session.Slug,
		CustomerName:      strings.TrimSpace(in.CustomerName),
		CustomerEmail:     strings.TrimSpace(in.CustomerEmail),
		CustomerPhone:     strings.TrimSpace(in.CustomerPhone),
		ScheduledAt:       in.ScheduledAt.UTC(),
		Duration:          session.Duration,
		Price:             session.Price,
		Status:            models.StatusPending,
		MeetingURL:        MeetingURL(meetingBase, id),
		Notes:             in.Notes,
		CreatedAt:         now.UTC(),
	}, nil
}
