package update_schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/domain"
)

// UseCase use case для обновления недельного расписания барбера
type UseCase struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case обновления расписания
// Расписание сохраняется целиком: старые строки удаляются, активные вставляются
// в одной транзакции. Неактивные дни недели в хранилище не попадают.
// Существующие записи при смене расписания не трогаются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSchedule: barber=%s, entries=%d", req.BarberID, len(req.Entries))

	// 1. Валидация входных данных
	if req.BarberID == uuid.Nil {
		uc.logger.Warn("UpdateSchedule: barberID is required")
		return nil, fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	// 2. Отбираем активные строки: только они описывают рабочие дни и
	// только они сохраняются
	activeInputs := make([]EntryInput, 0, len(req.Entries))
	activeEntries := make([]domain.ScheduleEntry, 0, len(req.Entries))
	for _, in := range req.Entries {
		if !in.IsActive {
			continue
		}

		activeInputs = append(activeInputs, in)
		activeEntries = append(activeEntries, domain.ScheduleEntry{
			BarberID:   req.BarberID,
			DayOfWeek:  in.DayOfWeek,
			StartTime:  in.StartTime,
			EndTime:    in.EndTime,
			BreakStart: in.BreakStart,
			BreakEnd:   in.BreakEnd,
			IsActive:   true,
		})
	}

	// 3. Проверяем расписание целиком: корректность каждой строки и отсутствие
	// дубликатов дней недели
	if _, err := domain.NewWeeklySchedule(activeEntries); err != nil {
		uc.logger.Warn("UpdateSchedule: schedule validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	// 4. Заменяем расписание в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.scheduleRepo.ReplaceForBarber(txCtx, req.BarberID, activeEntries); err != nil {
			uc.logger.Error("UpdateSchedule: failed to replace schedule for barber=%s: %v", req.BarberID, err)
			return fmt.Errorf("%w: failed to replace schedule: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateSchedule: schedule replaced for barber=%s, active days=%d",
		req.BarberID, len(activeEntries))

	return &Response{
		BarberID: req.BarberID,
		Entries:  activeInputs,
	}, nil
}
