package appointments

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/booking-service/internal/domain"
	appointmentRepo "github.com/barberhub/booking-service/internal/infra/storage/appointment"
	"github.com/barberhub/booking-service/internal/integrations/notifier"
	"github.com/barberhub/booking-service/internal/service/appointments/models"
	"github.com/barberhub/booking-service/pkg/types"
)

type fakeAppointmentRepo struct {
	mu    sync.Mutex
	items map[int64]*domain.Appointment
}

func newFakeAppointmentRepo(items ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{items: make(map[int64]*domain.Appointment)}
	for _, apt := range items {
		repo.items[apt.ID] = apt
	}
	return repo
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	apt, ok := r.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *apt
	return &copied, nil
}

func (r *fakeAppointmentRepo) GetByClientID(_ context.Context, clientID uuid.UUID, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Appointment, 0)
	for _, apt := range r.items {
		if apt.ClientID != clientID {
			continue
		}
		if status != nil && apt.Status != *status {
			continue
		}
		copied := *apt
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeAppointmentRepo) GetByBarberWithFilter(_ context.Context, filter domain.BarberAppointmentsFilter) ([]*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Appointment, 0)
	for _, apt := range r.items {
		if apt.BarberID != filter.BarberID {
			continue
		}
		if filter.Status != nil && apt.Status != *filter.Status {
			continue
		}
		copied := *apt
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	apt, ok := r.items[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	apt.Status = status
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []notifier.AppointmentEvent
}

func (n *fakeNotifier) Notify(_ context.Context, event notifier.AppointmentEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func scheduledAppointment(id int64, clientID, barberID uuid.UUID) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		ClientID:        clientID,
		BarberID:        barberID,
		ServiceID:       uuid.New(),
		AppointmentDate: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       types.NewTimeOfDay(12, 0),
		EndTime:         types.NewTimeOfDay(13, 0),
		Status:          domain.StatusScheduled,
		ServiceName:     "Стрижка",
		ServicePrice:    1200,
		BarberName:      "Иван Петров",
	}
}

func TestGetByID_ParticipantAccess(t *testing.T) {
	clientID := uuid.New()
	barberID := uuid.New()
	repo := newFakeAppointmentRepo(scheduledAppointment(1, clientID, barberID))
	svc := NewService(repo, &fakeNotifier{}, noopLogger{})

	t.Run("client sees own appointment", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, clientID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("barber sees own appointment", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, barberID)
		assert.NoError(t, err)
	})

	t.Run("stranger gets access denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, uuid.New())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 42, clientID)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestCancel(t *testing.T) {
	clientID := uuid.New()
	barberID := uuid.New()

	t.Run("client cancels scheduled appointment", func(t *testing.T) {
		repo := newFakeAppointmentRepo(scheduledAppointment(1, clientID, barberID))
		notify := &fakeNotifier{}
		svc := NewService(repo, notify, noopLogger{})

		resp, err := svc.Cancel(context.Background(), 1, clientID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)

		notify.mu.Lock()
		defer notify.mu.Unlock()
		require.Len(t, notify.events, 1)
		assert.Equal(t, notifier.EventAppointmentCancelled, notify.events[0].Event)
	})

	t.Run("barber can cancel too", func(t *testing.T) {
		repo := newFakeAppointmentRepo(scheduledAppointment(1, clientID, barberID))
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		_, err := svc.Cancel(context.Background(), 1, barberID)
		assert.NoError(t, err)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		repo := newFakeAppointmentRepo(scheduledAppointment(1, clientID, barberID))
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		_, err := svc.Cancel(context.Background(), 1, uuid.New())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		apt := scheduledAppointment(1, clientID, barberID)
		apt.Status = domain.StatusCompleted
		repo := newFakeAppointmentRepo(apt)
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		_, err := svc.Cancel(context.Background(), 1, clientID)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("double cancel is rejected", func(t *testing.T) {
		repo := newFakeAppointmentRepo(scheduledAppointment(1, clientID, barberID))
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		_, err := svc.Cancel(context.Background(), 1, clientID)
		require.NoError(t, err)

		_, err = svc.Cancel(context.Background(), 1, clientID)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestComplete(t *testing.T) {
	clientID := uuid.New()
	barberID := uuid.New()

	t.Run("barber completes appointment", func(t *testing.T) {
		repo := newFakeAppointmentRepo(scheduledAppointment(1, clientID, barberID))
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		resp, err := svc.Complete(context.Background(), 1, barberID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	})

	t.Run("client cannot complete", func(t *testing.T) {
		repo := newFakeAppointmentRepo(scheduledAppointment(1, clientID, barberID))
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		_, err := svc.Complete(context.Background(), 1, clientID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("cancelled appointment cannot be completed", func(t *testing.T) {
		apt := scheduledAppointment(1, clientID, barberID)
		apt.Status = domain.StatusCancelled
		repo := newFakeAppointmentRepo(apt)
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		_, err := svc.Complete(context.Background(), 1, barberID)
		assert.ErrorIs(t, err, ErrCannotComplete)
	})
}

func TestGetBarberAppointments_OnlyOwner(t *testing.T) {
	clientID := uuid.New()
	barberID := uuid.New()
	repo := newFakeAppointmentRepo(scheduledAppointment(1, clientID, barberID))
	svc := NewService(repo, &fakeNotifier{}, noopLogger{})

	t.Run("barber gets own appointments", func(t *testing.T) {
		resp, err := svc.GetBarberAppointments(context.Background(), &models.GetBarberAppointmentsRequest{
			BarberID: barberID,
			UserID:   barberID,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("other user gets access denied", func(t *testing.T) {
		_, err := svc.GetBarberAppointments(context.Background(), &models.GetBarberAppointmentsRequest{
			BarberID: barberID,
			UserID:   clientID,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetClientAppointments_StatusFilter(t *testing.T) {
	clientID := uuid.New()
	barberID := uuid.New()

	cancelled := scheduledAppointment(2, clientID, barberID)
	cancelled.Status = domain.StatusCancelled

	repo := newFakeAppointmentRepo(scheduledAppointment(1, clientID, barberID), cancelled)
	svc := NewService(repo, &fakeNotifier{}, noopLogger{})

	t.Run("without filter returns all", func(t *testing.T) {
		resp, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
			ClientID: clientID,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("filter by status", func(t *testing.T) {
		status := "cancelled"
		resp, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
			ClientID: clientID,
			Status:   &status,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("invalid status", func(t *testing.T) {
		bad := "unknown"
		_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
			ClientID: clientID,
			Status:   &bad,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
