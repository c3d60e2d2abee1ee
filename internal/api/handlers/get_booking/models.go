package get_booking

import (
	"time"

	"github.com/glowline/salon-booking-service/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ServiceID       int64   `json:"serviceId"`
	StaffID         int64   `json:"staffId"`
	StartTs         int64   `json:"startTs"`
	EndTs           int64   `json:"endTs"`
	Status          string  `json:"status"`
	CustomerName    string  `json:"customerName"`
	CustomerContact *string `json:"customerContact,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ServiceID:       resp.ServiceID,
		StaffID:         resp.StaffID,
		StartTs:         resp.StartTs,
		EndTs:           resp.EndTs,
		Status:          resp.Status,
		CustomerName:    resp.CustomerName,
		CustomerContact: resp.CustomerContact,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
