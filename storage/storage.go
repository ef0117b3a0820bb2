// Package storage keeps the user plan and consultation bookings.
package storage

import (
	"context"
	"crypto/subtle"
	"errors"

	"astrokalki/models"
)

var (
	ErrNotFound     = errors.New("appointment not found")
	ErrInvalidToken = errors.New("invalid confirmation token")
)

// Storage holds the single user plan and the appointments. Writes are last
// write wins; status changes are not checked against a state machine.
type Storage interface {
	GetUserPlan(ctx context.Context) (models.UserPlan, error)
	SetUserPlan(ctx context.Context, plan models.UserPlan) (models.UserPlan, error)

	CreateAppointment(ctx context.Context, appt models.Appointment) (models.Appointment, error)
	GetAppointment(ctx context.Context, id, token string) (models.Appointment, error)
	UpdateAppointment(ctx context.Context, id, token string, patch models.AppointmentPatch) (models.Appointment, error)
	DeleteAppointment(ctx context.Context, id, token string) error
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
}

func tokenMatches(want, got string) bool {
	if got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}
