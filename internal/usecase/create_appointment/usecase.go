package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberhub/booking-service/internal/domain"
	appointmentRepo "github.com/barberhub/booking-service/internal/infra/storage/appointment"
	serviceRepo "github.com/barberhub/booking-service/internal/infra/storage/service"
	notifierClient "github.com/barberhub/booking-service/internal/integrations/notifier"
	profileClient "github.com/barberhub/booking-service/internal/integrations/profileservice"
	"github.com/barberhub/booking-service/pkg/ptr"
	"github.com/barberhub/booking-service/pkg/types"
)

// UseCase use case для создания записи к барберу
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	serviceRepo     ServiceRepository
	profileClient   ProfileServiceClient
	notifier        NotifierClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	profileClient ProfileServiceClient,
	notifier NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		serviceRepo:     serviceRepo,
		profileClient:   profileClient,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию, чтобы при двух одновременных попытках
// занять один слот успешной оказалась ровно одна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, barber=%s, service=%s, date=%s, time=%s",
		req.ClientID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты с учетом горизонта записи
	if err := validateDate(req.Date, now, domain.DefaultHorizonDays); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Проверяем, что услуга принадлежит указанному барберу
	if service.BarberID != req.BarberID {
		uc.logger.Warn("CreateAppointment: service id=%s belongs to barber=%s, requested barber=%s",
			req.ServiceID, service.BarberID, req.BarberID)
		return nil, ErrServiceWrongBarber
	}

	endTime := req.StartTime.AddMinutes(service.DurationMinutes)
	if !endTime.Valid() {
		uc.logger.Warn("CreateAppointment: appointment does not fit into a single day")
		return nil, fmt.Errorf("%w: appointment must end within the same day", ErrInvalidInput)
	}

	// 6. Проверяем, что время записи ещё не прошло
	if err := validateTimeNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: time validation failed: %v", err)
		return nil, err
	}

	// 7. Получаем профиль барбера для денормализации имени
	// При недоступности ProfileService запись создаётся без имени барбера
	barberName := ""
	profile, err := uc.profileClient.GetProfileWithGracefulDegradation(ctx, req.BarberID)
	switch {
	case err == nil:
		barberName = profile.FullName
	case errors.Is(err, profileClient.ErrProfileNotFound):
		uc.logger.Warn("CreateAppointment: barber profile id=%s not found", req.BarberID)
		return nil, ErrBarberNotFound
	case errors.Is(err, profileClient.ErrServiceDegraded):
		uc.logger.Warn("CreateAppointment: proceeding without barber name for barber=%s", req.BarberID)
	default:
		uc.logger.Error("CreateAppointment: failed to get barber profile id=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber profile: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем недельное расписание барбера
		entries, err := uc.scheduleRepo.GetByBarber(txCtx, req.BarberID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get schedule for barber=%s: %v", req.BarberID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		schedule, err := domain.NewWeeklySchedule(entries)
		if err != nil {
			uc.logger.Error("CreateAppointment: invalid schedule for barber=%s: %v", req.BarberID, err)
			return fmt.Errorf("%w: invalid schedule: %v", ErrInternal, err)
		}

		entry, ok := schedule.EntryFor(req.Date.Weekday())
		if !ok {
			uc.logger.Warn("CreateAppointment: barber=%s does not work on %s", req.BarberID, req.Date.Weekday())
			return ErrBarberNotWorking
		}

		// 8.2. Проверяем запись против рабочего дня барбера
		if err := validateAgainstSchedule(entry, req.StartTime, endTime); err != nil {
			uc.logger.Warn("CreateAppointment: schedule validation failed: %v", err)
			return err
		}

		// 8.3. Получаем активные записи барбера на эту дату с блокировкой (FOR UPDATE)
		filter := domain.BarberAppointmentsFilter{
			BarberID:      req.BarberID,
			StartDate:     ptr.Ptr(req.Date),
			EndDate:       ptr.Ptr(req.Date),
			OnlyScheduled: true,
		}

		appointments, err := uc.appointmentRepo.GetByBarberWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 8.4. Проверяем, что слот свободен
		if hasConflict(req.StartTime, endTime, appointments) {
			uc.logger.Warn("CreateAppointment: slot %s is already taken for barber=%s on %s",
				req.StartTime, req.BarberID, req.Date.Format(domain.DateFormat))
			return ErrSlotAlreadyTaken
		}

		// 8.5. Создаём запись с денормализацией данных услуги и барбера
		appointment := &domain.Appointment{
			ClientID:        req.ClientID,
			BarberID:        req.BarberID,
			ServiceID:       req.ServiceID,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			Status:          domain.StatusScheduled,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			BarberName:      barberName,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Уникальный индекс в БД - последний рубеж против гонки
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s taken concurrently for barber=%s", req.StartTime, req.BarberID)
				return ErrSlotAlreadyTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 9. Уведомление отправляется после фиксации транзакции и на результат не влияет
	uc.notifier.Notify(context.WithoutCancel(ctx), notifierClient.AppointmentEvent{
		Event:           notifierClient.EventAppointmentCreated,
		AppointmentID:   result.ID,
		ClientID:        result.ClientID.String(),
		BarberID:        result.BarberID.String(),
		ServiceName:     result.ServiceName,
		AppointmentDate: result.AppointmentDate.Format(domain.DateFormat),
		StartTime:       result.StartTime.String(),
	})

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		BarberID:        result.BarberID,
		ServiceID:       result.ServiceID,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		BarberName:      result.BarberName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// hasConflict проверяет, пересекается ли запрошенный интервал хотя бы с одной активной записью
// Интервалы полуоткрытые: записи, граничащие по времени, конфликтом не считаются
func hasConflict(start, end types.TimeOfDay, appointments []*domain.Appointment) bool {
	for _, apt := range appointments {
		if !apt.Blocks() {
			continue
		}

		aptStart, aptEnd := apt.Interval()
		if aptStart.Before(end) && aptEnd.After(start) {
			return true
		}
	}

	return false
}
