package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"astrokalki/models"

	"github.com/lib/pq"
)

// PostgresStorage keeps the same contract as MemStorage but survives restarts.
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) GetUserPlan(ctx context.Context) (models.UserPlan, error) {
	var p models.UserPlan
	err := s.db.QueryRowContext(ctx, `
		SELECT plan, upgraded_at, payment_method, transaction_id
		FROM user_plan WHERE id = 1
	`).Scan(&p.Plan, &p.UpgradedAt, &p.PaymentMethod, &p.TransactionID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserPlan{Plan: models.PlanFree}, nil
	}
	if err != nil {
		return models.UserPlan{}, fmt.Errorf("failed to get user plan: %w", err)
	}
	return p, nil
}

func (s *PostgresStorage) SetUserPlan(ctx context.Context, plan models.UserPlan) (models.UserPlan, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_plan (id, plan, upgraded_at, payment_method, transaction_id)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			plan = EXCLUDED.plan,
			upgraded_at = EXCLUDED.upgraded_at,
			payment_method = EXCLUDED.payment_method,
			transaction_id = EXCLUDED.transaction_id
	`, plan.Plan, plan.UpgradedAt, plan.PaymentMethod, plan.TransactionID)
	if err != nil {
		return models.UserPlan{}, fmt.Errorf("failed to set user plan: %w", err)
	}
	return plan, nil
}

func (s *PostgresStorage) CreateAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO appointments (id, confirmation_token, session_type, customer_name, customer_email,
			customer_phone, scheduled_at, duration, price, status, meeting_url, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, a.ID, a.ConfirmationToken, a.SessionType, a.CustomerName, a.CustomerEmail,
		a.CustomerPhone, a.ScheduledAt, a.Duration, a.Price, a.Status, a.MeetingURL, a.Notes, a.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return models.Appointment{}, fmt.Errorf("failed to create appointment (%s): %w", pqErr.Code.Name(), err)
		}
		return models.Appointment{}, fmt.Errorf("failed to create appointment: %w", err)
	}
	return a, nil
}

const appointmentColumns = `id, confirmation_token, session_type, customer_name, customer_email,
	customer_phone, scheduled_at, duration, price, status, meeting_url, notes, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (models.Appointment, error) {
	var a models.Appointment
	err := row.Scan(&a.ID, &a.ConfirmationToken, &a.SessionType, &a.CustomerName, &a.CustomerEmail,
		&a.CustomerPhone, &a.ScheduledAt, &a.Duration, &a.Price, &a.Status, &a.MeetingURL, &a.Notes, &a.CreatedAt)
	return a, err
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStorage) lookup(ctx context.Context, q queryer, id, token, suffix string) (models.Appointment, error) {
	a, err := scanAppointment(q.QueryRowContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id::text = $1`+suffix, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Appointment{}, ErrNotFound
	}
	if err != nil {
		return models.Appointment{}, fmt.Errorf("failed to get appointment: %w", err)
	}
	if !tokenMatches(a.ConfirmationToken, token) {
		return models.Appointment{}, ErrInvalidToken
	}
	return a, nil
}

func (s *PostgresStorage) GetAppointment(ctx context.Context, id, token string) (models.Appointment, error) {
	return s.lookup(ctx, s.db, id, token, "")
}

func (s *PostgresStorage) UpdateAppointment(ctx context.Context, id, token string, patch models.AppointmentPatch) (models.Appointment, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	a, err := s.lookup(ctx, tx, id, token, " FOR UPDATE")
	if err != nil {
		return models.Appointment{}, err
	}
	patch.Apply(&a)

	_, err = tx.ExecContext(ctx, `
		UPDATE appointments
		SET status = $1, scheduled_at = $2, customer_phone = $3, notes = $4
		WHERE id = $5
	`, a.Status, a.ScheduledAt, a.CustomerPhone, a.Notes, a.ID)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("failed to update appointment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return models.Appointment{}, fmt.Errorf("failed to commit appointment update: %w", err)
	}
	return a, nil
}

func (s *PostgresStorage) DeleteAppointment(ctx context.Context, id, token string) error {
	a, err := s.lookup(ctx, s.db, id, token, "")
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM appointments WHERE id = $1", a.ID)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStorage) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+appointmentColumns+` FROM appointments ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	out := []models.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointments: %w", err)
	}
	return out, nil
}
