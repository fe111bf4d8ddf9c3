package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/domain"
	"github.com/barberhub/booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.StartTime.Valid() {
		return fmt.Errorf("%w: startTime must be within a single day", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно записи
func validateDate(requestDate time.Time, now time.Time, horizonDays int) error {
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, horizonDays-1)

	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, horizonDays)
	}

	return nil
}

// validateAgainstSchedule проверяет, что запись укладывается в рабочий день барбера:
// начинается на сетке слотов, целиком помещается в рабочее время и не задевает перерыв
func validateAgainstSchedule(entry domain.ScheduleEntry, start, end types.TimeOfDay) error {
	if start.Before(entry.StartTime) || end.After(entry.EndTime) {
		return ErrOutsideWorkingHours
	}

	if (int(start)-int(entry.StartTime))%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: startTime must be aligned to %d-minute slot grid", ErrInvalidInput, domain.SlotStepMinutes)
	}

	if entry.HasBreak() && start.Before(*entry.BreakEnd) && end.After(*entry.BreakStart) {
		return ErrOverlapsBreak
	}

	return nil
}

// validateTimeNotInPast проверяет, что время записи ещё не прошло.
// Для сегодняшней даты время начала должно быть строго позже текущего времени
func validateTimeNotInPast(requestDate time.Time, start types.TimeOfDay, now time.Time) error {
	if !isSameDay(requestDate, now) {
		return nil
	}

	if !start.After(types.TimeOfDayFromTime(now)) {
		return ErrTimeInPast
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
