package get_schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetSchedule(ctx context.Context, barberID uuid.UUID) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
