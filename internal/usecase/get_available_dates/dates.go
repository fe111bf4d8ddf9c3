package get_available_dates

import (
	"time"

	"github.com/barberhub/booking-service/internal/domain"
)

// availableDates перечисляет даты в пределах горизонта записи, в которые барбер работает.
// Горизонт включает сегодняшний день: при horizonDays=30 проверяются сегодня и 29 следующих дат.
// Текущее время суток на результат не влияет: сегодняшняя дата попадает в список,
// даже если рабочий день барбера уже закончился
func availableDates(now time.Time, schedule *domain.WeeklySchedule, horizonDays int) []time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	dates := make([]time.Time, 0, horizonDays)

	for i := 0; i < horizonDays; i++ {
		date := today.AddDate(0, 0, i)
		if _, ok := schedule.EntryFor(date.Weekday()); ok {
			dates = append(dates, date)
		}
	}

	return dates
}
