package notifier

// Типы событий уведомлений
const (
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentCancelled = "appointment.cancelled"
)

// AppointmentEvent событие записи для сервиса уведомлений
type AppointmentEvent struct {
	Event           string `json:"event"`
	AppointmentID   int64  `json:"appointment_id"`
	ClientID        string `json:"client_id"`
	BarberID        string `json:"barber_id"`
	ServiceName     string `json:"service_name"`
	AppointmentDate string `json:"appointment_date"` // YYYY-MM-DD
	StartTime       string `json:"start_time"`       // HH:MM
}
