package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetClientAppointmentsRequest запрос на получение записей клиента
type GetClientAppointmentsRequest struct {
	ClientID uuid.UUID `json:"clientId"`
	Status   *string   `json:"status,omitempty"`
}

// GetBarberAppointmentsRequest запрос на получение записей барбера
type GetBarberAppointmentsRequest struct {
	BarberID  uuid.UUID  `json:"barberId"`
	UserID    uuid.UUID  `json:"userId"`
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status    *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBarberAppointmentsRequest) ToDomainFilter() (domain.BarberAppointmentsFilter, error) {
	filter := domain.BarberAppointmentsFilter{
		BarberID:  r.BarberID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	ClientID        uuid.UUID `json:"clientId"`
	BarberID        uuid.UUID `json:"barberId"`
	ServiceID       uuid.UUID `json:"serviceId"`
	AppointmentDate string    `json:"appointmentDate"` // "2026-09-15"
	StartTime       string    `json:"startTime"`       // "10:00"
	EndTime         string    `json:"endTime"`         // "11:00"
	Status          string    `json:"status"`
	ServiceName     string    `json:"serviceName"`
	ServicePrice    float64   `json:"servicePrice"`
	BarberName      string    `json:"barberName"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// Конвертеры

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(apt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              apt.ID,
		ClientID:        apt.ClientID,
		BarberID:        apt.BarberID,
		ServiceID:       apt.ServiceID,
		AppointmentDate: apt.AppointmentDate.Format(domain.DateFormat),
		StartTime:       apt.StartTime.String(),
		EndTime:         apt.EndTime.String(),
		Status:          string(apt.Status),
		ServiceName:     apt.ServiceName,
		ServicePrice:    apt.ServicePrice,
		BarberName:      apt.BarberName,
		Notes:           apt.Notes,
		CreatedAt:       apt.CreatedAt,
		UpdatedAt:       apt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, len(appointments))
	for i, apt := range appointments {
		result[i] = *FromDomainAppointment(apt)
	}

	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// ToDomainAppointmentStatus конвертирует строку в domain статус
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}
