package get_available_dates

import (
	"github.com/barberhub/booking-service/internal/domain"
	getAvailableDates "github.com/barberhub/booking-service/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	BarberID string   `json:"barberId"`
	Dates    []string `json:"dates"` // Даты в формате YYYY-MM-DD
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, len(resp.Dates))
	for i, date := range resp.Dates {
		dates[i] = date.Format(domain.DateFormat)
	}

	return &AvailableDatesResponse{
		BarberID: resp.BarberID.String(),
		Dates:    dates,
	}
}
