package storage

import (
	"context"
	"sort"
	"sync"

	"astrokalki/models"
)

type MemStorage struct {
	mu           sync.RWMutex
	userPlan     models.UserPlan
	appointments map[string]models.Appointment
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		userPlan:     models.UserPlan{Plan: models.PlanFree},
		appointments: make(map[string]models.Appointment),
	}
}

func (s *MemStorage) GetUserPlan(_ context.Context) (models.UserPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userPlan, nil
}

func (s *MemStorage) SetUserPlan(_ context.Context, plan models.UserPlan) (models.UserPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userPlan = plan
	return plan, nil
}

func (s *MemStorage) CreateAppointment(_ context.Context, appt models.Appointment) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[appt.ID] = appt
	return appt, nil
}

// lookup must be called with mu held.
func (s *MemStorage) lookup(id, token string) (models.Appointment, error) {
	appt, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	if !tokenMatches(appt.ConfirmationToken, token) {
		return models.Appointment{}, ErrInvalidToken
	}
	return appt, nil
}

func (s *MemStorage) GetAppointment(_ context.Context, id, token string) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(id, token)
}

func (s *MemStorage) UpdateAppointment(_ context.Context, id, token string, patch models.AppointmentPatch) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, err := s.lookup(id, token)
	if err != nil {
		return models.Appointment{}, err
	}
	patch.Apply(&appt)
	s.appointments[id] = appt
	return appt, nil
}

func (s *MemStorage) DeleteAppointment(_ context.Context, id, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(id, token); err != nil {
		return err
	}
	delete(s.appointments, id)
	return nil
}

// ListAppointments returns newest first.
func (s *MemStorage) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
