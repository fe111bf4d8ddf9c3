package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/domain"
	serviceRepo "github.com/barberhub/booking-service/internal/infra/storage/service"
	"github.com/barberhub/booking-service/internal/service/catalog/models"
)

// Service сервис для работы с каталогом услуг и расписанием барберов
type Service struct {
	serviceRepo  ServiceRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error) {
	s.logger.Info("GetService: fetching service id=%s", id)

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// GetBarberServices получает все услуги барбера
func (s *Service) GetBarberServices(ctx context.Context, barberID uuid.UUID) (*models.ServiceListResponse, error) {
	s.logger.Info("GetBarberServices: fetching services for barber=%s", barberID)

	services, err := s.serviceRepo.GetByBarber(ctx, barberID)
	if err != nil {
		s.logger.Error("GetBarberServices: repository error for barber=%s: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetBarberServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberServices: successfully fetched %d services for barber=%s", len(services), barberID)
	return models.FromDomainServiceList(services), nil
}

// CreateService создает новую услугу
// Создавать услуги может только сам барбер
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: creating service for barber=%s by user=%s", req.BarberID, req.UserID)

	if req.UserID != req.BarberID {
		s.logger.Warn("CreateService: access denied for user=%s to barber=%s", req.UserID, req.BarberID)
		return nil, ErrAccessDenied
	}

	svc := &domain.Service{
		BarberID:        req.BarberID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	}

	if err := svc.Validate(); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// UpdateService обновляет услугу
// Обновлять услугу может только её владелец
func (s *Service) UpdateService(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: updating service id=%s by user=%s", id, req.UserID)

	existing, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	if existing.BarberID != req.UserID {
		s.logger.Warn("UpdateService: access denied for user=%s to service id=%s", req.UserID, id)
		return nil, ErrAccessDenied
	}

	svc := &domain.Service{
		BarberID:        existing.BarberID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	}

	if err := svc.Validate(); err != nil {
		s.logger.Warn("UpdateService: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.serviceRepo.Update(ctx, id, svc)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: successfully updated service id=%s", id)
	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу
// Удалять услугу может только её владелец
func (s *Service) DeleteService(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	s.logger.Info("DeleteService: deleting service id=%s by user=%s", id, userID)

	existing, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for service id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	if existing.BarberID != userID {
		s.logger.Warn("DeleteService: access denied for user=%s to service id=%s", userID, id)
		return ErrAccessDenied
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for service id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: successfully deleted service id=%s", id)
	return nil
}

// GetSchedule получает недельное расписание барбера
func (s *Service) GetSchedule(ctx context.Context, barberID uuid.UUID) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for barber=%s", barberID)

	entries, err := s.scheduleRepo.GetByBarber(ctx, barberID)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for barber=%s: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainScheduleEntries(barberID, entries), nil
}
