package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/pkg/types"
)

var (
	// ErrInvalidSchedule возвращается при структурно некорректном расписании
	ErrInvalidSchedule = errors.New("domain: invalid schedule")

	// ErrDuplicateWeekday возвращается, когда на один день недели приходится
	// больше одной активной записи расписания
	ErrDuplicateWeekday = errors.New("domain: duplicate weekday in schedule")
)

// ScheduleEntry одна запись недельного расписания барбера: рабочие часы
// одного дня недели с опциональным перерывом
type ScheduleEntry struct {
	ID         int64
	BarberID   uuid.UUID
	DayOfWeek  time.Weekday // 0 = воскресенье, как в исходных данных
	StartTime  types.TimeOfDay
	EndTime    types.TimeOfDay
	BreakStart *types.TimeOfDay
	BreakEnd   *types.TimeOfDay
	IsActive   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBreak returns true if the entry has a break window
func (e *ScheduleEntry) HasBreak() bool {
	return e.BreakStart != nil && e.BreakEnd != nil
}

// Validate проверяет инварианты записи расписания:
// start < end; перерыв, если задан, целиком внутри рабочего окна.
func (e *ScheduleEntry) Validate() error {
	if e.DayOfWeek < time.Sunday || e.DayOfWeek > time.Saturday {
		return fmt.Errorf("%w: day of week %d out of range", ErrInvalidSchedule, e.DayOfWeek)
	}

	if !e.StartTime.Valid() || !e.EndTime.Valid() {
		return fmt.Errorf("%w: time of day out of range", ErrInvalidSchedule)
	}

	if !e.StartTime.Before(e.EndTime) {
		return fmt.Errorf("%w: start time %s must be before end time %s",
			ErrInvalidSchedule, e.StartTime, e.EndTime)
	}

	// Перерыв либо задан целиком, либо отсутствует
	if (e.BreakStart == nil) != (e.BreakEnd == nil) {
		return fmt.Errorf("%w: break window must have both start and end", ErrInvalidSchedule)
	}

	if e.HasBreak() {
		if !e.BreakStart.Before(*e.BreakEnd) {
			return fmt.Errorf("%w: break start %s must be before break end %s",
				ErrInvalidSchedule, *e.BreakStart, *e.BreakEnd)
		}
		if e.BreakStart.Before(e.StartTime) {
			return fmt.Errorf("%w: break start %s is before working hours start %s",
				ErrInvalidSchedule, *e.BreakStart, e.StartTime)
		}
		if e.BreakEnd.After(e.EndTime) {
			return fmt.Errorf("%w: break end %s is after working hours end %s",
				ErrInvalidSchedule, *e.BreakEnd, e.EndTime)
		}
	}

	return nil
}

// WeeklySchedule недельное расписание барбера: не больше одной активной
// записи на день недели. Конструируется один раз на сессию бронирования
// и дальше только читается.
type WeeklySchedule struct {
	entries map[time.Weekday]ScheduleEntry
}

// NewWeeklySchedule строит расписание из списка записей.
// Неактивные записи отбрасываются; каждая активная валидируется.
// Дубликат дня недели среди активных записей — ошибка данных, а не повод
// молча выбрать одну из записей.
func NewWeeklySchedule(entries []ScheduleEntry) (*WeeklySchedule, error) {
	schedule := &WeeklySchedule{
		entries: make(map[time.Weekday]ScheduleEntry, len(entries)),
	}

	for _, entry := range entries {
		if !entry.IsActive {
			continue
		}

		if err := entry.Validate(); err != nil {
			return nil, err
		}

		if _, exists := schedule.entries[entry.DayOfWeek]; exists {
			return nil, fmt.Errorf("%w: weekday %d", ErrDuplicateWeekday, entry.DayOfWeek)
		}

		schedule.entries[entry.DayOfWeek] = entry
	}

	return schedule, nil
}

// EntryFor возвращает активную запись расписания на день недели, если она есть
func (s *WeeklySchedule) EntryFor(day time.Weekday) (ScheduleEntry, bool) {
	entry, ok := s.entries[day]
	return entry, ok
}

// IsEmpty returns true if the barber has no active working days
func (s *WeeklySchedule) IsEmpty() bool {
	return len(s.entries) == 0
}
