package get_available_slots

import (
	"time"

	"github.com/barberhub/booking-service/internal/domain"
	"github.com/barberhub/booking-service/pkg/types"
)

// generateTimeSlots генерирует список возможных слотов на день по строке расписания барбера
// Слоты генерируются с начала рабочего дня с фиксированным шагом SlotStepMinutes,
// независимо от длительности услуги. Слот попадает в список, только если услуга
// целиком помещается до конца рабочего дня и не пересекается с перерывом
func generateTimeSlots(
	entry domain.ScheduleEntry,
	durationMinutes int,
	requestDate time.Time,
	now time.Time,
) []types.TimeOfDay {
	if isDateInPast(requestDate, now) {
		return []types.TimeOfDay{}
	}

	allSlots := make([]types.TimeOfDay, 0)
	currentSlot := entry.StartTime

	for currentSlot.Before(entry.EndTime) {
		slotEnd := currentSlot.AddMinutes(durationMinutes)

		// Услуга должна целиком помещаться в рабочий день
		if slotEnd.After(entry.EndTime) {
			break
		}

		if !overlapsBreak(entry, currentSlot, slotEnd) {
			allSlots = append(allSlots, currentSlot)
		}

		currentSlot = currentSlot.AddMinutes(domain.SlotStepMinutes)
	}

	// Для дат в будущем все слоты доступны
	if !isSameDay(requestDate, now) {
		return allSlots
	}

	// Для сегодняшней даты оставляем только слоты, начинающиеся строго позже текущего времени
	currentTime := types.TimeOfDayFromTime(now)

	availableSlots := make([]types.TimeOfDay, 0, len(allSlots))
	for _, slot := range allSlots {
		if slot.After(currentTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots
}

// overlapsBreak проверяет, пересекается ли слот с перерывом барбера
// Граничные случаи пересечением не считаются: услуга может заканчиваться
// ровно в начале перерыва или начинаться ровно в его конце
func overlapsBreak(entry domain.ScheduleEntry, slotStart, slotEnd types.TimeOfDay) bool {
	if !entry.HasBreak() {
		return false
	}

	return slotStart.Before(*entry.BreakEnd) && slotEnd.After(*entry.BreakStart)
}

// filterConflicting убирает слоты, пересекающиеся с существующими записями
// Блокируют слот только записи в статусе scheduled: отменённые и завершённые
// записи место не занимают
//
// Примеры:
// - Слот 11:30-12:30, запись 12:00-12:30 → ЕСТЬ пересечение (12:00-12:30)
// - Слот 11:30-12:00, запись 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, запись 12:00-12:30 → НЕТ пересечения (граничат)
func filterConflicting(
	slots []types.TimeOfDay,
	durationMinutes int,
	appointments []*domain.Appointment,
) []types.TimeOfDay {
	result := make([]types.TimeOfDay, 0, len(slots))

	for _, slotStart := range slots {
		slotEnd := slotStart.AddMinutes(durationMinutes)

		if !hasConflict(slotStart, slotEnd, appointments) {
			result = append(result, slotStart)
		}
	}

	return result
}

// hasConflict проверяет, пересекается ли интервал слота хотя бы с одной активной записью
// Интервалы полуоткрытые [start, end): пересечение есть, только если
// начало записи СТРОГО раньше конца слота И конец записи СТРОГО позже начала слота
func hasConflict(slotStart, slotEnd types.TimeOfDay, appointments []*domain.Appointment) bool {
	for _, apt := range appointments {
		if !apt.Blocks() {
			continue
		}

		aptStart, aptEnd := apt.Interval()
		if aptStart.Before(slotEnd) && aptEnd.After(slotStart) {
			return true
		}
	}

	return false
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
