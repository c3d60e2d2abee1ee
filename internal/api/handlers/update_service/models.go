package update_service

import (
	"time"

	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
)

// UpdateServiceRequest HTTP request model, все поля опциональны
type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	DurationMin *int    `json:"durationMin,omitempty"`
	PriceCents  *int64  `json:"priceCents,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DurationMin int    `json:"durationMin"`
	PriceCents  int64  `json:"priceCents"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateServiceRequest) ToServiceRequest() *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		Name:        r.Name,
		DurationMin: r.DurationMin,
		PriceCents:  r.PriceCents,
		Active:      r.Active,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ServiceResponse) *ServiceResponse {
	return &ServiceResponse{
		ID:          resp.ID,
		Name:        resp.Name,
		DurationMin: resp.DurationMin,
		PriceCents:  resp.PriceCents,
		Active:      resp.Active,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
