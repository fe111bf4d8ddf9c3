package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/domain"
	appointmentRepo "github.com/barberhub/booking-service/internal/infra/storage/appointment"
	notifierClient "github.com/barberhub/booking-service/internal/integrations/notifier"
	"github.com/barberhub/booking-service/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	notifier        NotifierClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	notifier NotifierClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Запись могут видеть только её участники: клиент и барбер
func (s *Service) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%s", id, userID)

	apt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkParticipantAccess(apt, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(apt), nil
}

// GetClientAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%s, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%s", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%s",
		len(appointments), req.ClientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetBarberAppointments получает записи барбера с фильтрацией по периоду и статусу
// Доступно только самому барберу
func (s *Service) GetBarberAppointments(ctx context.Context, req *models.GetBarberAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetBarberAppointments: fetching appointments for barber=%s, user=%s", req.BarberID, req.UserID)

	if req.UserID != req.BarberID {
		s.logger.Warn("GetBarberAppointments: access denied for user=%s to barber=%s appointments",
			req.UserID, req.BarberID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBarberAppointments: invalid filter for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByBarberWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBarberAppointments: repository error for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberAppointments: successfully fetched %d appointments for barber=%s",
		len(appointments), req.BarberID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Отменить запись может любой из её участников, но только пока она в статусе scheduled
func (s *Service) Cancel(ctx context.Context, id int64, userID uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%s", id, userID)

	apt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkParticipantAccess(apt, userID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%s to appointment id=%d", userID, id)
		return nil, err
	}

	if !apt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d in status=%s cannot be cancelled", id, apt.Status)
		return nil, ErrCannotCancel
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: failed to update status for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	apt.Status = domain.StatusCancelled

	// Уведомление об отмене на результат операции не влияет
	s.notifier.Notify(context.WithoutCancel(ctx), notifierClient.AppointmentEvent{
		Event:           notifierClient.EventAppointmentCancelled,
		AppointmentID:   apt.ID,
		ClientID:        apt.ClientID.String(),
		BarberID:        apt.BarberID.String(),
		ServiceName:     apt.ServiceName,
		AppointmentDate: apt.AppointmentDate.Format(domain.DateFormat),
		StartTime:       apt.StartTime.String(),
	})

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return models.FromDomainAppointment(apt), nil
}

// Complete отмечает запись как завершённую
// Завершить запись может только барбер
func (s *Service) Complete(ctx context.Context, id int64, userID uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("Complete: completing appointment id=%d by user=%s", id, userID)

	apt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if apt.BarberID != userID {
		s.logger.Warn("Complete: access denied for user=%s to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	if !apt.CanBeCompleted() {
		s.logger.Warn("Complete: appointment id=%d in status=%s cannot be completed", id, apt.Status)
		return nil, ErrCannotComplete
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		s.logger.Error("Complete: failed to update status for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	apt.Status = domain.StatusCompleted

	s.logger.Info("Complete: successfully completed appointment id=%d", id)
	return models.FromDomainAppointment(apt), nil
}

func (s *Service) getAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return apt, nil
}

// checkParticipantAccess проверяет, что пользователь является участником записи
func checkParticipantAccess(apt *domain.Appointment, userID uuid.UUID) error {
	if apt.ClientID == userID || apt.BarberID == userID {
		return nil
	}
	return ErrAccessDenied
}
