package complete_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	Complete(ctx context.Context, id int64, userID uuid.UUID) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
