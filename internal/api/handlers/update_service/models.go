package update_service

import (
	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/service/catalog/models"
)

// UpdateServiceRequest HTTP request model
type UpdateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateServiceRequest) ToServiceRequest(userID uuid.UUID) *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		UserID:          userID,
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
	}
}
