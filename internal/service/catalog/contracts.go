package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	GetByBarber(ctx context.Context, barberID uuid.UUID) ([]*domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, id uuid.UUID, svc *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ScheduleRepository интерфейс репозитория расписания барбера
type ScheduleRepository interface {
	GetByBarber(ctx context.Context, barberID uuid.UUID) ([]domain.ScheduleEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
