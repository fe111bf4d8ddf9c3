package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID  uuid.UUID       // ID клиента (из заголовка аутентификации)
	BarberID  uuid.UUID       // ID барбера
	ServiceID uuid.UUID       // ID услуги
	Date      time.Time       // Дата записи (без времени)
	StartTime types.TimeOfDay // Время начала записи
	Notes     *string         // Заметки клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	ClientID        uuid.UUID
	BarberID        uuid.UUID
	ServiceID       uuid.UUID
	AppointmentDate time.Time
	StartTime       types.TimeOfDay
	EndTime         types.TimeOfDay
	Status          string
	ServiceName     string
	ServicePrice    float64
	BarberName      string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
