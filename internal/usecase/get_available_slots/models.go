package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BarberID  uuid.UUID // ID барбера
	ServiceID uuid.UUID // ID услуги (определяет длительность слота)
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	BarberID        uuid.UUID // ID барбера
	ServiceID       uuid.UUID // ID услуги
	DurationMinutes int       // Длительность услуги в минутах
	Slots           []Slot    // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeOfDay // Время начала слота (например, "10:00")
	EndTime   types.TimeOfDay // Время окончания слота
}
