package models

import (
	"time"

	"github.com/glowline/salon-booking-service/internal/domain"
)

// ListBookingsRequest запрос на получение административного списка бронирований
type ListBookingsRequest struct {
	StaffID   *int64
	ServiceID *int64
	FromTs    *int64
	ToTs      *int64
}

// ToDomainFilter конвертирует запрос в domain-фильтр
func (r *ListBookingsRequest) ToDomainFilter() domain.BookingsFilter {
	return domain.BookingsFilter{
		StaffID:   r.StaffID,
		ServiceID: r.ServiceID,
		FromTs:    r.FromTs,
		ToTs:      r.ToTs,
	}
}

// BookingResponse модель бронирования для вызывающего слоя
type BookingResponse struct {
	ID              int64
	ServiceID       int64
	StaffID         int64
	StartTs         int64
	EndTs           int64
	CustomerName    string
	CustomerContact *string
	Status          string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse
}

// FromDomainBooking конвертирует domain-бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		ServiceID:       b.ServiceID,
		StaffID:         b.StaffID,
		StartTs:         b.StartTs,
		EndTs:           b.EndTs,
		CustomerName:    b.CustomerName,
		CustomerContact: b.CustomerContact,
		Status:          string(b.Status),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain-бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: result}
}
