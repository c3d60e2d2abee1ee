package list_services

import (
	"time"

	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
)

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Services []ServiceItem `json:"services"`
	Total    int           `json:"total"`
}

// ServiceItem элемент списка услуг
type ServiceItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DurationMin int    `json:"durationMin"`
	PriceCents  int64  `json:"priceCents"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(services []*models.ServiceResponse) *ServiceListResponse {
	items := make([]ServiceItem, len(services))
	for i, svc := range services {
		items[i] = ServiceItem{
			ID:          svc.ID,
			Name:        svc.Name,
			DurationMin: svc.DurationMin,
			PriceCents:  svc.PriceCents,
			Active:      svc.Active,
			CreatedAt:   svc.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   svc.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &ServiceListResponse{
		Services: items,
		Total:    len(items),
	}
}
