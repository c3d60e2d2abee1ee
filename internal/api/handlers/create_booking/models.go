package create_booking

import (
	"time"

	createBooking "github.com/glowline/salon-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID       int64   `json:"serviceId"`
	StaffID         *int64  `json:"staffId,omitempty"` // nil - сервер назначит мастера
	StartTs         int64   `json:"startTs"`           // миллисекунды Unix-эпохи
	CustomerName    string  `json:"customerName"`
	CustomerContact *string `json:"customerContact,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ServiceID:       r.ServiceID,
		StaffID:         r.StaffID,
		StartTs:         r.StartTs,
		CustomerName:    r.CustomerName,
		CustomerContact: r.CustomerContact,
		Notes:           r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
