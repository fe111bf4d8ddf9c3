package get_available_dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/booking-service/internal/domain"
	"github.com/barberhub/booking-service/pkg/types"
)

func scheduleFor(days ...time.Weekday) *domain.WeeklySchedule {
	entries := make([]domain.ScheduleEntry, 0, len(days))
	for _, day := range days {
		entries = append(entries, domain.ScheduleEntry{
			DayOfWeek: day,
			StartTime: types.NewTimeOfDay(10, 0),
			EndTime:   types.NewTimeOfDay(19, 0),
			IsActive:  true,
		})
	}

	schedule, err := domain.NewWeeklySchedule(entries)
	if err != nil {
		panic(err)
	}
	return schedule
}

func TestAvailableDates_OnlyWorkingWeekdays(t *testing.T) {
	// 15 сентября 2026 - вторник
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	schedule := scheduleFor(time.Tuesday, time.Thursday)

	dates := availableDates(now, schedule, domain.DefaultHorizonDays)

	require.NotEmpty(t, dates)
	for _, date := range dates {
		weekday := date.Weekday()
		assert.True(t, weekday == time.Tuesday || weekday == time.Thursday,
			"unexpected weekday %s for %s", weekday, date.Format(domain.DateFormat))
	}

	// 30 дней покрывают ровно 4 полных недели и еще 2 дня: вторников 5, четвергов 4
	assert.Len(t, dates, 9)
}

func TestAvailableDates_IncludesTodayRegardlessOfTime(t *testing.T) {
	// Поздний вечер вторника: рабочий день уже закончился, но дата остаётся в списке
	now := time.Date(2026, 9, 15, 23, 30, 0, 0, time.UTC)
	schedule := scheduleFor(time.Tuesday)

	dates := availableDates(now, schedule, domain.DefaultHorizonDays)

	require.NotEmpty(t, dates)
	assert.Equal(t, "2026-09-15", dates[0].Format(domain.DateFormat))
}

func TestAvailableDates_HorizonBound(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	schedule := scheduleFor(time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday)

	dates := availableDates(now, schedule, domain.DefaultHorizonDays)

	require.Len(t, dates, domain.DefaultHorizonDays)
	assert.Equal(t, "2026-09-15", dates[0].Format(domain.DateFormat))
	// Последняя дата - сегодня плюс 29 дней
	assert.Equal(t, "2026-10-14", dates[len(dates)-1].Format(domain.DateFormat))
}

func TestAvailableDates_EmptySchedule(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	schedule := scheduleFor()

	assert.Empty(t, availableDates(now, schedule, domain.DefaultHorizonDays))
}

func TestAvailableDates_Idempotent(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	schedule := scheduleFor(time.Monday, time.Friday)

	first := availableDates(now, schedule, domain.DefaultHorizonDays)
	second := availableDates(now, schedule, domain.DefaultHorizonDays)

	assert.Equal(t, first, second)
}
