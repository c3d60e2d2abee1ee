package list_bookings

import (
	"time"

	"github.com/glowline/salon-booking-service/internal/service/bookings/models"
)

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingItem `json:"bookings"`
	Total    int           `json:"total"`
}

// BookingItem элемент списка бронирований
type BookingItem struct {
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
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	bookings := make([]BookingItem, len(resp.Bookings))
	for i, b := range resp.Bookings {
		bookings[i] = BookingItem{
			ID:              b.ID,
			ServiceID:       b.ServiceID,
			StaffID:         b.StaffID,
			StartTs:         b.StartTs,
			EndTs:           b.EndTs,
			Status:          b.Status,
			CustomerName:    b.CustomerName,
			CustomerContact: b.CustomerContact,
			Notes:           b.Notes,
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &BookingListResponse{
		Bookings: bookings,
		Total:    len(bookings),
	}
}
