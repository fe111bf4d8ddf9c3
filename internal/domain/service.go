package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidService возвращается при некорректных данных услуги
var ErrInvalidService = errors.New("domain: invalid service")

// Service represents a service offered by a barber (haircut, beard trim, ...)
type Service struct {
	ID              uuid.UUID
	BarberID        uuid.UUID
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет инварианты услуги
func (s *Service) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidService)
	}

	if s.DurationMinutes < MinServiceDurationMinutes || s.DurationMinutes > MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidService, MinServiceDurationMinutes, MaxServiceDurationMinutes)
	}

	if s.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidService)
	}

	return nil
}
