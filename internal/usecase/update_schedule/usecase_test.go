package update_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/booking-service/internal/domain"
	"github.com/barberhub/booking-service/pkg/ptr"
	"github.com/barberhub/booking-service/pkg/types"
)

type fakeScheduleRepo struct {
	replaced map[uuid.UUID][]domain.ScheduleEntry
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{replaced: make(map[uuid.UUID][]domain.ScheduleEntry)}
}

func (r *fakeScheduleRepo) ReplaceForBarber(_ context.Context, barberID uuid.UUID, entries []domain.ScheduleEntry) error {
	r.replaced[barberID] = entries
	return nil
}

func (r *fakeScheduleRepo) GetByBarber(_ context.Context, barberID uuid.UUID) ([]domain.ScheduleEntry, error) {
	return r.replaced[barberID], nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_ReplacesSchedule(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewUseCase(repo, passthroughTxManager{}, noopLogger{})
	barberID := uuid.New()

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID: barberID,
		Entries: []EntryInput{
			{
				DayOfWeek:  time.Monday,
				StartTime:  types.NewTimeOfDay(10, 0),
				EndTime:    types.NewTimeOfDay(19, 0),
				BreakStart: ptr.Ptr(types.NewTimeOfDay(13, 0)),
				BreakEnd:   ptr.Ptr(types.NewTimeOfDay(14, 0)),
				IsActive:   true,
			},
			{
				DayOfWeek: time.Saturday,
				StartTime: types.NewTimeOfDay(11, 0),
				EndTime:   types.NewTimeOfDay(16, 0),
				IsActive:  true,
			},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, barberID, resp.BarberID)
	require.Len(t, repo.replaced[barberID], 2)
	assert.Equal(t, barberID, repo.replaced[barberID][0].BarberID)
}

func TestExecute_ValidationErrors(t *testing.T) {
	workingDay := EntryInput{
		DayOfWeek: time.Monday,
		StartTime: types.NewTimeOfDay(10, 0),
		EndTime:   types.NewTimeOfDay(19, 0),
		IsActive:  true,
	}

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing barberID",
			req:     &Request{BarberID: uuid.Nil, Entries: []EntryInput{workingDay}},
			wantErr: ErrInvalidInput,
		},
		{
			name: "duplicate active weekday",
			req: &Request{
				BarberID: uuid.New(),
				Entries:  []EntryInput{workingDay, workingDay},
			},
			wantErr: ErrInvalidSchedule,
		},
		{
			name: "inverted working window",
			req: &Request{
				BarberID: uuid.New(),
				Entries: []EntryInput{{
					DayOfWeek: time.Monday,
					StartTime: types.NewTimeOfDay(19, 0),
					EndTime:   types.NewTimeOfDay(10, 0),
					IsActive:  true,
				}},
			},
			wantErr: ErrInvalidSchedule,
		},
		{
			name: "break outside working window",
			req: &Request{
				BarberID: uuid.New(),
				Entries: []EntryInput{{
					DayOfWeek:  time.Monday,
					StartTime:  types.NewTimeOfDay(10, 0),
					EndTime:    types.NewTimeOfDay(19, 0),
					BreakStart: ptr.Ptr(types.NewTimeOfDay(9, 0)),
					BreakEnd:   ptr.Ptr(types.NewTimeOfDay(11, 0)),
					IsActive:   true,
				}},
			},
			wantErr: ErrInvalidSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUseCase(newFakeScheduleRepo(), passthroughTxManager{}, noopLogger{}).
				Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_OnlyActiveEntriesPersisted(t *testing.T) {
	// Хранится только активное подмножество: неактивные строки не попадают
	// в репозиторий, даже если их содержимое некорректно
	repo := newFakeScheduleRepo()
	uc := NewUseCase(repo, passthroughTxManager{}, noopLogger{})
	barberID := uuid.New()

	// Неактивная строка с перевернутым рабочим окном: она не валидируется
	// и не должна дойти до хранилища
	inactiveMalformed := EntryInput{
		DayOfWeek: time.Monday,
		StartTime: types.NewTimeOfDay(19, 0),
		EndTime:   types.NewTimeOfDay(10, 0),
		IsActive:  false,
	}
	active := EntryInput{
		DayOfWeek: time.Tuesday,
		StartTime: types.NewTimeOfDay(10, 0),
		EndTime:   types.NewTimeOfDay(19, 0),
		IsActive:  true,
	}

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID: barberID,
		Entries:  []EntryInput{inactiveMalformed, active},
	})

	require.NoError(t, err)
	require.Len(t, repo.replaced[barberID], 1)
	assert.Equal(t, time.Tuesday, repo.replaced[barberID][0].DayOfWeek)
	assert.True(t, repo.replaced[barberID][0].IsActive)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, time.Tuesday, resp.Entries[0].DayOfWeek)
}

func TestExecute_AllInactiveClearsSchedule(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewUseCase(repo, passthroughTxManager{}, noopLogger{})
	barberID := uuid.New()

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID: barberID,
		Entries: []EntryInput{{
			DayOfWeek: time.Monday,
			StartTime: types.NewTimeOfDay(10, 0),
			EndTime:   types.NewTimeOfDay(19, 0),
			IsActive:  false,
		}},
	})

	require.NoError(t, err)
	assert.Empty(t, repo.replaced[barberID])
	assert.Empty(t, resp.Entries)
}
