package get_available_dates

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/domain"
)

// UseCase use case для получения дат, доступных для записи к барберу
type UseCase struct {
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: barber=%s", req.BarberID)

	// 1. Валидация входных данных
	if req.BarberID == uuid.Nil {
		uc.logger.Warn("GetAvailableDates: barberID is required")
		return nil, fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	// 2. Получаем недельное расписание барбера
	entries, err := uc.scheduleRepo.GetByBarber(ctx, req.BarberID)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get schedule for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	schedule, err := domain.NewWeeklySchedule(entries)
	if err != nil {
		uc.logger.Error("GetAvailableDates: invalid schedule for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: invalid schedule: %v", ErrInternal, err)
	}

	// 3. Перечисляем рабочие даты в пределах горизонта записи
	dates := availableDates(uc.timeProvider.Now(), schedule, domain.DefaultHorizonDays)

	uc.logger.Info("GetAvailableDates: %d dates available for barber=%s", len(dates), req.BarberID)

	return &Response{
		BarberID: req.BarberID,
		Dates:    dates,
	}, nil
}
