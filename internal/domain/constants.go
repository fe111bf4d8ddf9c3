package domain

// SlotStepMinutes шаг генерации слотов. Фиксированный и не зависит от
// длительности услуги: слоты всегда начинаются на границе :00/:30.
const SlotStepMinutes = 30

// DefaultHorizonDays горизонт выбора даты бронирования (скользящее окно от сегодня)
const DefaultHorizonDays = 30

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxNotesLength            = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
