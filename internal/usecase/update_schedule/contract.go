package update_schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания барбера
type ScheduleRepository interface {
	// ReplaceForBarber полностью заменяет недельное расписание барбера
	ReplaceForBarber(ctx context.Context, barberID uuid.UUID, entries []domain.ScheduleEntry) error
	GetByBarber(ctx context.Context, barberID uuid.UUID) ([]domain.ScheduleEntry, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
