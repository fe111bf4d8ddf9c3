package create_service

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/barberhub/booking-service/internal/api/handlers"
	"github.com/barberhub/booking-service/internal/api/middleware"
	catalogService "github.com/barberhub/booking-service/internal/service/catalog"
)

const (
	msgInvalidBarberID    = "некорректный ID барбера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidService     = "некорректные параметры услуги"
	msgAccessDenied       = "создавать услуги может только сам барбер"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/barbers/{barberId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /barbers/{id}/services - Missing user ID in context")
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	vars := mux.Vars(r)

	barberID, err := uuid.Parse(vars["barberId"])
	if err != nil {
		h.logger.Warn("POST /barbers/{id}/services - Invalid barber ID: %s", vars["barberId"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbers/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), req.ToServiceRequest(barberID, userID))
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrAccessDenied):
			h.logger.Warn("POST /barbers/{id}/services - Access denied: user_id=%s, barber_id=%s", userID, barberID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /barbers/{id}/services - Invalid service: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("POST /barbers/{id}/services - Failed: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbers/{id}/services - Created service_id=%s for barber_id=%s", result.ID, barberID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
