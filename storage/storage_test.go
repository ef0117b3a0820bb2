package storage

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"astrokalki/db"
	"astrokalki/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointment(created time.Time) models.Appointment {
	id := uuid.NewString()
	return models.Appointment{
		ID:                id,
		ConfirmationToken: "token-" + id,
		SessionType:       "monthly-check-in",
		CustomerName:      "Asha Rao",
		CustomerEmail:     "asha@example.test",
		ScheduledAt:       time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC),
		Duration:          30,
		Price:             1499,
		Status:            models.StatusPending,
		MeetingURL:        "https://meet.example.test/" + id,
		CreatedAt:         created.UTC().Truncate(time.Microsecond),
	}
}

// runStorageContract exercises behavior every backend must share.
func runStorageContract(t *testing.T, s Storage) {
	ctx := context.Background()

	t.Run("plan starts free and upgrades", func(t *testing.T) {
		plan, err := s.GetUserPlan(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.PlanFree, plan.Plan)

		pro := models.UserPlan{Plan: models.PlanPro, UpgradedAt: "2026-10-14T00:00:00Z", PaymentMethod: models.PaymentUPI, TransactionID: "123456789012"}
		_, err = s.SetUserPlan(ctx, pro)
		require.NoError(t, err)

		plan, err = s.GetUserPlan(ctx)
		require.NoError(t, err)
		assert.Equal(t, pro, plan)
	})

	t.Run("appointment read requires token", func(t *testing.T) {
		appt := newAppointment(time.Now())
		_, err := s.CreateAppointment(ctx, appt)
		require.NoError(t, err)

		got, err := s.GetAppointment(ctx, appt.ID, appt.ConfirmationToken)
		require.NoError(t, err)
		assert.Equal(t, appt.CustomerEmail, got.CustomerEmail)
		assert.True(t, appt.ScheduledAt.Equal(got.ScheduledAt))

		_, err = s.GetAppointment(ctx, appt.ID, "wrong")
		assert.ErrorIs(t, err, ErrInvalidToken)
		_, err = s.GetAppointment(ctx, appt.ID, "")
		assert.ErrorIs(t, err, ErrInvalidToken)
		_, err = s.GetAppointment(ctx, "missing", appt.ConfirmationToken)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("status overwrite is unguarded", func(t *testing.T) {
		appt := newAppointment(time.Now())
		_, err := s.CreateAppointment(ctx, appt)
		require.NoError(t, err)

		cancelled := models.StatusCancelled
		got, err := s.UpdateAppointment(ctx, appt.ID, appt.ConfirmationToken, models.AppointmentPatch{Status: &cancelled})
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, got.Status)

		pending := models.StatusPending
		notes := "changed my mind"
		got, err = s.UpdateAppointment(ctx, appt.ID, appt.ConfirmationToken, models.AppointmentPatch{Status: &pending, Notes: &notes})
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, got.Status)

		got, err = s.GetAppointment(ctx, appt.ID, appt.ConfirmationToken)
		require.NoError(t, err)
		assert.Equal(t, "changed my mind", got.Notes)

		_, err = s.UpdateAppointment(ctx, appt.ID, "wrong", models.AppointmentPatch{Status: &cancelled})
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("delete", func(t *testing.T) {
		appt := newAppointment(time.Now())
		_, err := s.CreateAppointment(ctx, appt)
		require.NoError(t, err)

		assert.ErrorIs(t, s.DeleteAppointment(ctx, appt.ID, "wrong"), ErrInvalidToken)
		require.NoError(t, s.DeleteAppointment(ctx, appt.ID, appt.ConfirmationToken))
		assert.ErrorIs(t, s.DeleteAppointment(ctx, appt.ID, appt.ConfirmationToken), ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		base := time.Now().Add(time.Hour)
		older := newAppointment(base)
		newer := newAppointment(base.Add(time.Minute))
		_, err := s.CreateAppointment(ctx, older)
		require.NoError(t, err)
		_, err = s.CreateAppointment(ctx, newer)
		require.NoError(t, err)

		list, err := s.ListAppointments(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(list), 2)
		assert.Equal(t, newer.ID, list[0].ID)
		assert.Equal(t, older.ID, list[1].ID)
	})
}

func TestMemStorage(t *testing.T) {
	runStorageContract(t, NewMemStorage())
}

func TestMemStorageConcurrentWrites(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()
	appt := newAppointment(time.Now())
	_, err := s.CreateAppointment(ctx, appt)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := models.StatusConfirmed
			if i%2 == 0 {
				status = models.StatusCancelled
			}
			_, _ = s.UpdateAppointment(ctx, appt.ID, appt.ConfirmationToken, models.AppointmentPatch{Status: &status})
			_, _ = s.GetAppointment(ctx, appt.ID, appt.ConfirmationToken)
			_, _ = s.ListAppointments(ctx)
		}(i)
	}
	wg.Wait()

	got, err := s.GetAppointment(ctx, appt.ID, appt.ConfirmationToken)
	require.NoError(t, err)
	assert.Contains(t, []models.AppointmentStatus{models.StatusConfirmed, models.StatusCancelled}, got.Status)
}

func TestPostgresStorage(t *testing.T) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, dbURL)
	if err != nil {
		t.Skipf("Failed to connect to test database: %v", err)
	}
	defer conn.Close()

	require.NoError(t, db.Migrate(ctx, conn))
	_, err = conn.ExecContext(ctx, "DELETE FROM appointments")
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, "UPDATE user_plan SET plan = 'free', upgraded_at = '', payment_method = '', transaction_id = ''")
	require.NoError(t, err)

	runStorageContract(t, NewPostgresStorage(conn))
}
