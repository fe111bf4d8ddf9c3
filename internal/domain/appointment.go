package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberhub/booking-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatuses все допустимые статусы записи
var ValidStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCompleted,
	StatusCancelled,
}

// Appointment represents a booked time slot with a barber
type Appointment struct {
	ID              int64
	BarberID        uuid.UUID
	ClientID        uuid.UUID
	ServiceID       uuid.UUID
	AppointmentDate time.Time
	StartTime       types.TimeOfDay
	EndTime         types.TimeOfDay
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	BarberName   string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks returns true if the appointment occupies its time slot.
// Только записи в статусе scheduled блокируют время; completed и cancelled — нет.
func (a *Appointment) Blocks() bool {
	return a.Status == StatusScheduled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// CanBeCompleted returns true if the appointment can be marked completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusScheduled
}

// Interval возвращает занимаемый записью полуоткрытый интервал [start, end)
func (a *Appointment) Interval() (types.TimeOfDay, types.TimeOfDay) {
	return a.StartTime, a.EndTime
}

// BarberAppointmentsFilter фильтр для получения записей барбера
type BarberAppointmentsFilter struct {
	BarberID      uuid.UUID          // Обязательный параметр
	StartDate     *time.Time         // Начало периода (опционально)
	EndDate       *time.Time         // Конец периода (опционально)
	Status        *AppointmentStatus // Фильтр по статусу (опционально)
	OnlyScheduled bool               // Только записи, блокирующие время
}
