package update_schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/pkg/types"
)

// EntryInput строка недельного расписания в запросе
type EntryInput struct {
	DayOfWeek  time.Weekday
	StartTime  types.TimeOfDay
	EndTime    types.TimeOfDay
	BreakStart *types.TimeOfDay
	BreakEnd   *types.TimeOfDay
	IsActive   bool
}

// Request модель запроса на обновление расписания барбера
type Request struct {
	BarberID uuid.UUID
	Entries  []EntryInput
}

// Response модель ответа с сохранённым расписанием
type Response struct {
	BarberID uuid.UUID
	Entries  []EntryInput
}
