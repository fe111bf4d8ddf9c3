package get_available_dates

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/barberhub/booking-service/internal/api/handlers"
	getAvailableDates "github.com/barberhub/booking-service/internal/usecase/get_available_dates"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/available-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := uuid.Parse(vars["barberId"])
	if err != nil {
		h.logger.Warn("GET /available-dates - Invalid barber ID: %s", vars["barberId"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{BarberID: barberID})
	if err != nil {
		h.logger.Error("GET /available-dates - Failed: barber_id=%s, error=%v", barberID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /available-dates - %d dates for barber_id=%s", len(result.Dates), barberID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
