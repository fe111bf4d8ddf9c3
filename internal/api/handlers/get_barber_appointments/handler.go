package get_barber_appointments

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/barberhub/booking-service/internal/api/handlers"
	"github.com/barberhub/booking-service/internal/api/middleware"
	appointmentsService "github.com/barberhub/booking-service/internal/service/appointments"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgInvalidFilter   = "некорректные параметры фильтрации"
	msgAccessDenied    = "записи барбера может просматривать только сам барбер"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/appointments?startDate={date}&endDate={date}&status={status}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /barbers/{id}/appointments - Missing user ID in context")
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	vars := mux.Vars(r)

	barberID, err := uuid.Parse(vars["barberId"])
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/appointments - Invalid barber ID: %s", vars["barberId"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	req, err := parseQuery(r.URL.Query(), barberID, userID)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/appointments - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.GetBarberAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("GET /barbers/{id}/appointments - Access denied: user_id=%s, barber_id=%s", userID, barberID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/appointments - Invalid input: barber_id=%s", barberID)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /barbers/{id}/appointments - Failed: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/appointments - %d appointments for barber_id=%s", result.Total, barberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
