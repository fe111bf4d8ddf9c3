package create_appointment

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
	serviceRepo "github.com/barberhub/booking-service/internal/infra/storage/service"
	"github.com/barberhub/booking-service/internal/integrations/notifier"
	"github.com/barberhub/booking-service/internal/integrations/profileservice"
	"github.com/barberhub/booking-service/pkg/ptr"
	"github.com/barberhub/booking-service/pkg/types"
)

// fakeAppointmentRepo хранит записи в памяти и воспроизводит уникальный
// индекс по (barber_id, date, start_time) для статуса scheduled
type fakeAppointmentRepo struct {
	mu     sync.Mutex
	nextID int64
	items  []*domain.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Status == domain.StatusScheduled &&
			existing.BarberID == apt.BarberID &&
			existing.AppointmentDate.Equal(apt.AppointmentDate) &&
			existing.StartTime == apt.StartTime {
			return nil, appointmentRepo.ErrSlotTaken
		}
	}

	r.nextID++
	stored := *apt
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.items = append(r.items, &stored)

	result := stored
	return &result, nil
}

func (r *fakeAppointmentRepo) GetByBarberWithFilter(_ context.Context, filter domain.BarberAppointmentsFilter) ([]*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Appointment, 0)
	for _, apt := range r.items {
		if apt.BarberID != filter.BarberID {
			continue
		}
		if filter.StartDate != nil && apt.AppointmentDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && apt.AppointmentDate.After(*filter.EndDate) {
			continue
		}
		if filter.OnlyScheduled && apt.Status != domain.StatusScheduled {
			continue
		}
		copied := *apt
		result = append(result, &copied)
	}

	return result, nil
}

type fakeScheduleRepo struct {
	entries []domain.ScheduleEntry
}

func (r *fakeScheduleRepo) GetByBarber(_ context.Context, _ uuid.UUID) ([]domain.ScheduleEntry, error) {
	return r.entries, nil
}

type fakeServiceRepo struct {
	services map[uuid.UUID]*domain.Service
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeProfileClient struct {
	profile *profileservice.Profile
	err     error
}

func (c *fakeProfileClient) GetProfileWithGracefulDegradation(_ context.Context, _ uuid.UUID) (*profileservice.Profile, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.profile, nil
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

// fakeTxManager сериализует транзакции глобальным мьютексом, что
// эквивалентно уровню изоляции SERIALIZABLE для этих тестов
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fixedTime struct {
	t time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.t
}

type testEnv struct {
	uc        *UseCase
	repo      *fakeAppointmentRepo
	notifier  *fakeNotifier
	barberID  uuid.UUID
	serviceID uuid.UUID
}

func newTestEnv(t *testing.T, now time.Time) *testEnv {
	t.Helper()

	barberID := uuid.New()
	serviceID := uuid.New()

	repo := &fakeAppointmentRepo{}
	schedules := &fakeScheduleRepo{
		entries: []domain.ScheduleEntry{
			{
				BarberID:   barberID,
				DayOfWeek:  now.Weekday(),
				StartTime:  types.NewTimeOfDay(10, 0),
				EndTime:    types.NewTimeOfDay(19, 0),
				BreakStart: ptr.Ptr(types.NewTimeOfDay(13, 0)),
				BreakEnd:   ptr.Ptr(types.NewTimeOfDay(14, 0)),
				IsActive:   true,
			},
		},
	}
	services := &fakeServiceRepo{
		services: map[uuid.UUID]*domain.Service{
			serviceID: {
				ID:              serviceID,
				BarberID:        barberID,
				Name:            "Мужская стрижка",
				DurationMinutes: 60,
				Price:           1500,
			},
		},
	}
	profiles := &fakeProfileClient{
		profile: &profileservice.Profile{ID: barberID.String(), FullName: "Иван Петров", Role: "barber"},
	}
	notify := &fakeNotifier{}

	uc := NewUseCase(repo, schedules, services, profiles, notify, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTime{t: now}

	return &testEnv{
		uc:        uc,
		repo:      repo,
		notifier:  notify,
		barberID:  barberID,
		serviceID: serviceID,
	}
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_CreatesAppointment(t *testing.T) {
	now := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)

	resp, err := env.uc.Execute(context.Background(), &Request{
		ClientID:  uuid.New(),
		BarberID:  env.barberID,
		ServiceID: env.serviceID,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: types.NewTimeOfDay(11, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "11:00", resp.StartTime.String())
	assert.Equal(t, "12:00", resp.EndTime.String())
	assert.Equal(t, "Мужская стрижка", resp.ServiceName)
	assert.Equal(t, "Иван Петров", resp.BarberName)

	env.notifier.mu.Lock()
	defer env.notifier.mu.Unlock()
	require.Len(t, env.notifier.events, 1)
	assert.Equal(t, notifier.EventAppointmentCreated, env.notifier.events[0].Event)
}

func TestExecute_ConcurrentBookingHasOneWinner(t *testing.T) {
	now := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)

	const attempts = 8

	var wg sync.WaitGroup
	results := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = env.uc.Execute(context.Background(), &Request{
				ClientID:  uuid.New(),
				BarberID:  env.barberID,
				ServiceID: env.serviceID,
				Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
				StartTime: types.NewTimeOfDay(15, 0),
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrSlotAlreadyTaken)
		}
	}

	assert.Equal(t, 1, winners, "ровно одна из конкурирующих попыток должна выиграть слот")
	assert.Len(t, env.repo.items, 1)
}

func TestExecute_RejectsConflictingInterval(t *testing.T) {
	now := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	_, err := env.uc.Execute(context.Background(), &Request{
		ClientID:  uuid.New(),
		BarberID:  env.barberID,
		ServiceID: env.serviceID,
		Date:      date,
		StartTime: types.NewTimeOfDay(15, 0),
	})
	require.NoError(t, err)

	// Слот 15:30 пересекается с записью 15:00-16:00, хотя начинается в другое время
	_, err = env.uc.Execute(context.Background(), &Request{
		ClientID:  uuid.New(),
		BarberID:  env.barberID,
		ServiceID: env.serviceID,
		Date:      date,
		StartTime: types.NewTimeOfDay(15, 30),
	})
	assert.ErrorIs(t, err, ErrSlotAlreadyTaken)

	// Слот 16:00 граничит с записью 15:00-16:00 - это не конфликт
	_, err = env.uc.Execute(context.Background(), &Request{
		ClientID:  uuid.New(),
		BarberID:  env.barberID,
		ServiceID: env.serviceID,
		Date:      date,
		StartTime: types.NewTimeOfDay(16, 0),
	})
	assert.NoError(t, err)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	now := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	resp, err := env.uc.Execute(context.Background(), &Request{
		ClientID:  uuid.New(),
		BarberID:  env.barberID,
		ServiceID: env.serviceID,
		Date:      date,
		StartTime: types.NewTimeOfDay(15, 0),
	})
	require.NoError(t, err)

	// Отменяем запись напрямую в хранилище
	env.repo.mu.Lock()
	for _, apt := range env.repo.items {
		if apt.ID == resp.ID {
			apt.Status = domain.StatusCancelled
		}
	}
	env.repo.mu.Unlock()

	_, err = env.uc.Execute(context.Background(), &Request{
		ClientID:  uuid.New(),
		BarberID:  env.barberID,
		ServiceID: env.serviceID,
		Date:      date,
		StartTime: types.NewTimeOfDay(15, 0),
	})
	assert.NoError(t, err)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 37, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name: "time already passed today",
			req: &Request{
				ClientID: uuid.New(), BarberID: env.barberID, ServiceID: env.serviceID,
				Date: today, StartTime: types.NewTimeOfDay(14, 30),
			},
			wantErr: ErrTimeInPast,
		},
		{
			name: "date in the past",
			req: &Request{
				ClientID: uuid.New(), BarberID: env.barberID, ServiceID: env.serviceID,
				Date: today.AddDate(0, 0, -1), StartTime: types.NewTimeOfDay(15, 0),
			},
			wantErr: ErrInvalidDate,
		},
		{
			name: "date beyond horizon",
			req: &Request{
				ClientID: uuid.New(), BarberID: env.barberID, ServiceID: env.serviceID,
				Date: today.AddDate(0, 0, domain.DefaultHorizonDays), StartTime: types.NewTimeOfDay(15, 0),
			},
			wantErr: ErrDateTooFarInFuture,
		},
		{
			// Следующий вторник, чтобы время не отсекалось как прошедшее
			name: "overlaps break",
			req: &Request{
				ClientID: uuid.New(), BarberID: env.barberID, ServiceID: env.serviceID,
				Date: today.AddDate(0, 0, 7), StartTime: types.NewTimeOfDay(13, 30),
			},
			wantErr: ErrOverlapsBreak,
		},
		{
			name: "outside working hours",
			req: &Request{
				ClientID: uuid.New(), BarberID: env.barberID, ServiceID: env.serviceID,
				Date: today, StartTime: types.NewTimeOfDay(18, 30),
			},
			wantErr: ErrOutsideWorkingHours,
		},
		{
			name: "unknown service",
			req: &Request{
				ClientID: uuid.New(), BarberID: env.barberID, ServiceID: uuid.New(),
				Date: today, StartTime: types.NewTimeOfDay(15, 0),
			},
			wantErr: ErrServiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_BarberNotWorkingOnDate(t *testing.T) {
	// Расписание есть только на вторник, запись на среду
	now := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)

	_, err := env.uc.Execute(context.Background(), &Request{
		ClientID:  uuid.New(),
		BarberID:  env.barberID,
		ServiceID: env.serviceID,
		Date:      time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime: types.NewTimeOfDay(15, 0),
	})
	assert.ErrorIs(t, err, ErrBarberNotWorking)
}

func TestExecute_GracefulDegradationWithoutBarberName(t *testing.T) {
	now := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)

	degraded := &fakeProfileClient{err: profileservice.ErrServiceDegraded}
	env.uc.profileClient = degraded

	resp, err := env.uc.Execute(context.Background(), &Request{
		ClientID:  uuid.New(),
		BarberID:  env.barberID,
		ServiceID: env.serviceID,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: types.NewTimeOfDay(15, 0),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.BarberName)
}
