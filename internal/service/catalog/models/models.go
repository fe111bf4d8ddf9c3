package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	UserID          uuid.UUID `json:"userId"`
	BarberID        uuid.UUID `json:"barberId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
}

// UpdateServiceRequest запрос на обновление услуги
type UpdateServiceRequest struct {
	UserID          uuid.UUID `json:"userId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	BarberID        uuid.UUID `json:"barberId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// ScheduleEntryResponse строка недельного расписания в ответе
type ScheduleEntryResponse struct {
	DayOfWeek  int     `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime  string  `json:"startTime"` // "10:00"
	EndTime    string  `json:"endTime"`   // "19:00"
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
}

// ScheduleResponse ответ с недельным расписанием барбера
type ScheduleResponse struct {
	BarberID uuid.UUID               `json:"barberId"`
	Entries  []ScheduleEntryResponse `json:"entries"`
}

// Конвертеры

// FromDomainService конвертирует domain модель в response
func FromDomainService(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID,
		BarberID:        svc.BarberID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		CreatedAt:       svc.CreatedAt,
		UpdatedAt:       svc.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в response
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, len(services))
	for i, svc := range services {
		result[i] = *FromDomainService(svc)
	}

	return &ServiceListResponse{
		Services: result,
		Total:    len(result),
	}
}

// FromDomainScheduleEntries конвертирует строки расписания в response
func FromDomainScheduleEntries(barberID uuid.UUID, entries []domain.ScheduleEntry) *ScheduleResponse {
	result := make([]ScheduleEntryResponse, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsActive {
			continue
		}

		row := ScheduleEntryResponse{
			DayOfWeek: int(entry.DayOfWeek),
			StartTime: entry.StartTime.String(),
			EndTime:   entry.EndTime.String(),
		}
		if entry.HasBreak() {
			breakStart := entry.BreakStart.String()
			breakEnd := entry.BreakEnd.String()
			row.BreakStart = &breakStart
			row.BreakEnd = &breakEnd
		}

		result = append(result, row)
	}

	return &ScheduleResponse{
		BarberID: barberID,
		Entries:  result,
	}
}
