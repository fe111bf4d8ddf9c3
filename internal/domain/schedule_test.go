package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/booking-service/pkg/ptr"
	"github.com/barberhub/booking-service/pkg/types"
)

func validEntry(day time.Weekday) ScheduleEntry {
	return ScheduleEntry{
		BarberID:  uuid.New(),
		DayOfWeek: day,
		StartTime: types.NewTimeOfDay(10, 0),
		EndTime:   types.NewTimeOfDay(19, 0),
		IsActive:  true,
	}
}

func TestScheduleEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ScheduleEntry)
		wantErr bool
	}{
		{
			name:   "valid without break",
			mutate: func(e *ScheduleEntry) {},
		},
		{
			name: "valid with break",
			mutate: func(e *ScheduleEntry) {
				e.BreakStart = ptr.Ptr(types.NewTimeOfDay(13, 0))
				e.BreakEnd = ptr.Ptr(types.NewTimeOfDay(14, 0))
			},
		},
		{
			name: "start equals end",
			mutate: func(e *ScheduleEntry) {
				e.EndTime = e.StartTime
			},
			wantErr: true,
		},
		{
			name: "start after end",
			mutate: func(e *ScheduleEntry) {
				e.StartTime = types.NewTimeOfDay(20, 0)
			},
			wantErr: true,
		},
		{
			name: "break start without break end",
			mutate: func(e *ScheduleEntry) {
				e.BreakStart = ptr.Ptr(types.NewTimeOfDay(13, 0))
			},
			wantErr: true,
		},
		{
			name: "break end without break start",
			mutate: func(e *ScheduleEntry) {
				e.BreakEnd = ptr.Ptr(types.NewTimeOfDay(14, 0))
			},
			wantErr: true,
		},
		{
			name: "break outside working hours",
			mutate: func(e *ScheduleEntry) {
				e.BreakStart = ptr.Ptr(types.NewTimeOfDay(9, 0))
				e.BreakEnd = ptr.Ptr(types.NewTimeOfDay(11, 0))
			},
			wantErr: true,
		},
		{
			name: "inverted break",
			mutate: func(e *ScheduleEntry) {
				e.BreakStart = ptr.Ptr(types.NewTimeOfDay(14, 0))
				e.BreakEnd = ptr.Ptr(types.NewTimeOfDay(13, 0))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry(time.Monday)
			tt.mutate(&entry)

			err := entry.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewWeeklySchedule(t *testing.T) {
	t.Run("builds schedule from active entries", func(t *testing.T) {
		schedule, err := NewWeeklySchedule([]ScheduleEntry{
			validEntry(time.Monday),
			validEntry(time.Wednesday),
		})
		require.NoError(t, err)

		_, ok := schedule.EntryFor(time.Monday)
		assert.True(t, ok)
		_, ok = schedule.EntryFor(time.Wednesday)
		assert.True(t, ok)
		_, ok = schedule.EntryFor(time.Sunday)
		assert.False(t, ok)
	})

	t.Run("skips inactive entries", func(t *testing.T) {
		inactive := validEntry(time.Friday)
		inactive.IsActive = false

		schedule, err := NewWeeklySchedule([]ScheduleEntry{inactive})
		require.NoError(t, err)

		assert.True(t, schedule.IsEmpty())
		_, ok := schedule.EntryFor(time.Friday)
		assert.False(t, ok)
	})

	t.Run("rejects duplicate weekday", func(t *testing.T) {
		_, err := NewWeeklySchedule([]ScheduleEntry{
			validEntry(time.Monday),
			validEntry(time.Monday),
		})
		assert.ErrorIs(t, err, ErrDuplicateWeekday)
	})

	t.Run("rejects invalid entry", func(t *testing.T) {
		broken := validEntry(time.Monday)
		broken.EndTime = broken.StartTime

		_, err := NewWeeklySchedule([]ScheduleEntry{broken})
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("empty input gives empty schedule", func(t *testing.T) {
		schedule, err := NewWeeklySchedule(nil)
		require.NoError(t, err)
		assert.True(t, schedule.IsEmpty())
	})
}
