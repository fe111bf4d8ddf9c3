package get_barber_appointments

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/domain"
	"github.com/barberhub/booking-service/internal/service/appointments/models"
)

// parseQuery разбирает query-параметры фильтрации записей барбера
// Поддерживаются startDate, endDate (YYYY-MM-DD) и status
func parseQuery(query url.Values, barberID, userID uuid.UUID) (*models.GetBarberAppointmentsRequest, error) {
	req := &models.GetBarberAppointmentsRequest{
		BarberID: barberID,
		UserID:   userID,
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %v", err)
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %v", err)
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
