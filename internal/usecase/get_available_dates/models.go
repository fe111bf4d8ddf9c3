package get_available_dates

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на получение доступных дат
type Request struct {
	BarberID uuid.UUID // ID барбера
}

// Response модель ответа со списком рабочих дат барбера
type Response struct {
	BarberID uuid.UUID   // ID барбера
	Dates    []time.Time // Даты в пределах горизонта записи, когда барбер работает
}
