package create_service

import (
	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/service/catalog/models"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest(barberID, userID uuid.UUID) *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		UserID:          userID,
		BarberID:        barberID,
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
	}
}
