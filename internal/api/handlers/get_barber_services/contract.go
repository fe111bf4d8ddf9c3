package get_barber_services

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetBarberServices(ctx context.Context, barberID uuid.UUID) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
