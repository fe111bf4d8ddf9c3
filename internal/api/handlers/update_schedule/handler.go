package update_schedule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/barberhub/booking-service/internal/api/handlers"
	"github.com/barberhub/booking-service/internal/api/middleware"
	updateSchedule "github.com/barberhub/booking-service/internal/usecase/update_schedule"
)

const (
	msgInvalidBarberID    = "некорректный ID барбера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEntries     = "некорректные строки расписания, ожидается время в формате HH:MM"
	msgInvalidSchedule    = "некорректное расписание"
	msgAccessDenied       = "изменять расписание может только сам барбер"
)

type Handler struct {
	useCase UpdateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UpdateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/barbers/{barberId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	vars := mux.Vars(r)

	barberID, err := uuid.Parse(vars["barberId"])
	if err != nil {
		h.logger.Warn("PUT /schedule - Invalid barber ID: %s", vars["barberId"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	// Расписание может менять только сам барбер
	if userID != barberID {
		h.logger.Warn("PUT /schedule - Access denied for user=%s to barber=%s", userID, barberID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(barberID)
	if err != nil {
		h.logger.Warn("PUT /schedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntries)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSchedule.ErrInvalidSchedule):
			h.logger.Warn("PUT /schedule - Invalid schedule for barber=%s: %v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, updateSchedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /schedule - Failed: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule - Schedule updated for barber_id=%s, entries=%d", barberID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
