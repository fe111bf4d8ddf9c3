package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberhub/booking-service/internal/domain"
	serviceRepo "github.com/barberhub/booking-service/internal/infra/storage/service"
	"github.com/barberhub/booking-service/pkg/ptr"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	serviceRepo     ServiceRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		serviceRepo:     serviceRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%s, service=%s, date=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу, чтобы узнать её длительность
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем, что услуга принадлежит указанному барберу
	if service.BarberID != req.BarberID {
		uc.logger.Warn("GetAvailableSlots: service id=%s belongs to barber=%s, requested barber=%s",
			req.ServiceID, service.BarberID, req.BarberID)
		return nil, ErrServiceWrongBarber
	}

	// 5. Валидация даты с учетом горизонта бронирования
	if err := validateDate(req.Date, now, domain.DefaultHorizonDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 6. Получаем недельное расписание барбера
	entries, err := uc.scheduleRepo.GetByBarber(ctx, req.BarberID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	schedule, err := domain.NewWeeklySchedule(entries)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid schedule for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: invalid schedule: %v", ErrInternal, err)
	}

	// 7. Если барбер не работает в этот день недели - слотов нет
	entry, ok := schedule.EntryFor(req.Date.Weekday())
	if !ok {
		uc.logger.Info("GetAvailableSlots: barber=%s does not work on %s", req.BarberID, req.Date.Weekday())
		return uc.emptyResponse(req, service.DurationMinutes), nil
	}

	// 8. Генерируем временные слоты с учетом перерыва и текущего времени
	timeSlots := generateTimeSlots(entry, service.DurationMinutes, req.Date, now)

	// 9. Получаем активные записи барбера на эту дату
	filter := domain.BarberAppointmentsFilter{
		BarberID:      req.BarberID,
		StartDate:     ptr.Ptr(req.Date),
		EndDate:       ptr.Ptr(req.Date),
		OnlyScheduled: true,
	}

	appointments, err := uc.appointmentRepo.GetByBarberWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 10. Убираем слоты, пересекающиеся с существующими записями
	availableSlots := filterConflicting(timeSlots, service.DurationMinutes, appointments)

	slots := make([]Slot, len(availableSlots))
	for i, start := range availableSlots {
		slots[i] = Slot{
			StartTime: start,
			EndTime:   start.AddMinutes(service.DurationMinutes),
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for barber=%s, service=%s, date=%s",
		len(slots), req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, durationMinutes int) *Response {
	return &Response{
		Date:            req.Date,
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		DurationMinutes: durationMinutes,
		Slots:           []Slot{},
	}
}
