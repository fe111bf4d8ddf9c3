package update_service

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	UpdateService(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
