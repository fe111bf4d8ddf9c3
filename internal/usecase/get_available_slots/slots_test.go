package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barberhub/booking-service/internal/domain"
	"github.com/barberhub/booking-service/pkg/ptr"
	"github.com/barberhub/booking-service/pkg/types"
)

func workingDay() domain.ScheduleEntry {
	return domain.ScheduleEntry{
		DayOfWeek: time.Tuesday,
		StartTime: types.NewTimeOfDay(10, 0),
		EndTime:   types.NewTimeOfDay(19, 0),
		IsActive:  true,
	}
}

func slotStrings(slots []types.TimeOfDay) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.String()
	}
	return result
}

func TestGenerateTimeSlots_FutureDate(t *testing.T) {
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	slots := generateTimeSlots(workingDay(), 60, date, now)

	got := slotStrings(slots)
	// Шаг 30 минут, услуга 60 минут должна заканчиваться не позже 19:00
	assert.Equal(t, "10:00", got[0])
	assert.Equal(t, "18:00", got[len(got)-1])
	assert.Len(t, slots, 17)
}

func TestGenerateTimeSlots_TodayExcludesPast(t *testing.T) {
	// Сейчас 14:37 - первый доступный слот 15:00
	now := time.Date(2026, 9, 15, 14, 37, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	slots := generateTimeSlots(workingDay(), 60, date, now)

	got := slotStrings(slots)
	assert.Equal(t, "15:00", got[0])
	assert.NotContains(t, got, "14:30")
	assert.NotContains(t, got, "14:00")
}

func TestGenerateTimeSlots_SlotStartingExactlyNowIsExcluded(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	slots := generateTimeSlots(workingDay(), 30, date, now)

	got := slotStrings(slots)
	assert.NotContains(t, got, "14:30")
	assert.Contains(t, got, "15:00")
}

func TestGenerateTimeSlots_BreakExclusion(t *testing.T) {
	entry := workingDay()
	entry.BreakStart = ptr.Ptr(types.NewTimeOfDay(12, 0))
	entry.BreakEnd = ptr.Ptr(types.NewTimeOfDay(13, 0))

	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	slots := generateTimeSlots(entry, 60, date, now)

	got := slotStrings(slots)
	// Услуга 60 минут: слоты 11:30, 12:00 и 12:30 пересеклись бы с перерывом 12:00-13:00
	assert.Contains(t, got, "11:00")
	assert.NotContains(t, got, "11:30")
	assert.NotContains(t, got, "12:00")
	assert.NotContains(t, got, "12:30")
	// Слот 13:00 начинается ровно в конце перерыва - допустим
	assert.Contains(t, got, "13:00")
}

func TestGenerateTimeSlots_ServiceMustFitWorkingDay(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	slots := generateTimeSlots(workingDay(), 90, date, now)

	got := slotStrings(slots)
	// 17:30 + 90 минут = 19:00 помещается, 18:00 + 90 минут уже нет
	assert.Contains(t, got, "17:30")
	assert.NotContains(t, got, "18:00")
}

func TestGenerateTimeSlots_PastDateGivesNothing(t *testing.T) {
	now := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	slots := generateTimeSlots(workingDay(), 30, date, now)
	assert.Empty(t, slots)
}

func scheduledAppointment(start, end types.TimeOfDay) *domain.Appointment {
	return &domain.Appointment{
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusScheduled,
	}
}

func TestFilterConflicting(t *testing.T) {
	slots := []types.TimeOfDay{
		types.NewTimeOfDay(11, 0),
		types.NewTimeOfDay(11, 30),
		types.NewTimeOfDay(12, 0),
		types.NewTimeOfDay(12, 30),
	}

	appointments := []*domain.Appointment{
		scheduledAppointment(types.NewTimeOfDay(12, 0), types.NewTimeOfDay(12, 30)),
	}

	got := slotStrings(filterConflicting(slots, 30, appointments))

	// Слоты, граничащие с записью 12:00-12:30, конфликтом не считаются
	assert.Contains(t, got, "11:00")
	assert.Contains(t, got, "11:30")
	assert.NotContains(t, got, "12:00")
	assert.Contains(t, got, "12:30")
}

func TestFilterConflicting_LongServiceOverlapsFromBehind(t *testing.T) {
	slots := []types.TimeOfDay{
		types.NewTimeOfDay(11, 30),
	}

	// Запись 12:00-12:30, услуга 60 минут: слот 11:30-12:30 пересекается
	appointments := []*domain.Appointment{
		scheduledAppointment(types.NewTimeOfDay(12, 0), types.NewTimeOfDay(12, 30)),
	}

	assert.Empty(t, filterConflicting(slots, 60, appointments))
}

func TestFilterConflicting_CancelledDoesNotBlock(t *testing.T) {
	slots := []types.TimeOfDay{types.NewTimeOfDay(12, 0)}

	cancelled := scheduledAppointment(types.NewTimeOfDay(12, 0), types.NewTimeOfDay(12, 30))
	cancelled.Status = domain.StatusCancelled

	completed := scheduledAppointment(types.NewTimeOfDay(12, 0), types.NewTimeOfDay(12, 30))
	completed.Status = domain.StatusCompleted

	got := filterConflicting(slots, 30, []*domain.Appointment{cancelled, completed})
	assert.Len(t, got, 1)
}
