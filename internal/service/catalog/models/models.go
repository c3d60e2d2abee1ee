package models

import (
	"time"

	"github.com/glowline/salon-booking-service/internal/domain"
	"github.com/glowline/salon-booking-service/pkg/types"
)

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name        string
	DurationMin int
	PriceCents  int64
	Active      *bool // nil = true
}

// UpdateServiceRequest запрос на частичное обновление услуги
type UpdateServiceRequest struct {
	Name        *string
	DurationMin *int
	PriceCents  *int64
	Active      *bool
}

// ServiceResponse модель услуги для вызывающего слоя
type ServiceResponse struct {
	ID          int64
	Name        string
	DurationMin int
	PriceCents  int64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FromDomainService конвертирует domain-услугу в ответ сервиса
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		DurationMin: s.DurationMin,
		PriceCents:  s.PriceCents,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// CreateStaffRequest запрос на создание мастера
type CreateStaffRequest struct {
	Name   string
	Email  string
	Phone  *string
	Role   string
	Active *bool // nil = true
}

// StaffResponse модель мастера для вызывающего слоя
type StaffResponse struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Role      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainStaff конвертирует domain-мастера в ответ сервиса
func FromDomainStaff(st *domain.Staff) *StaffResponse {
	return &StaffResponse{
		ID:        st.ID,
		Name:      st.Name,
		Email:     st.Email,
		Phone:     st.Phone,
		Role:      st.Role,
		Active:    st.Active,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
}

// CreateScheduleRequest запрос на создание расписания
type CreateScheduleRequest struct {
	StaffID         int64
	Weekdays        types.Weekdays
	StartMin        int
	EndMin          int
	SlotIntervalMin int
}

// ScheduleResponse модель расписания для вызывающего слоя
type ScheduleResponse struct {
	ID              int64
	StaffID         int64
	Weekdays        types.Weekdays
	StartMin        int
	EndMin          int
	SlotIntervalMin int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FromDomainSchedule конвертирует domain-расписание в ответ сервиса
func FromDomainSchedule(s *domain.StaffSchedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:              s.ID,
		StaffID:         s.StaffID,
		Weekdays:        s.Weekdays,
		StartMin:        s.StartMin,
		EndMin:          s.EndMin,
		SlotIntervalMin: s.SlotIntervalMin,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// CreateBlackoutRequest запрос на создание blackout-интервала
type CreateBlackoutRequest struct {
	StaffID *int64 // nil = глобальный blackout для всех мастеров
	StartTs int64
	EndTs   int64
	Reason  *string
}

// BlackoutResponse модель blackout-интервала для вызывающего слоя
type BlackoutResponse struct {
	ID        int64
	StaffID   *int64
	StartTs   int64
	EndTs     int64
	Reason    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainBlackout конвертирует domain-blackout в ответ сервиса
func FromDomainBlackout(b *domain.Blackout) *BlackoutResponse {
	return &BlackoutResponse{
		ID:        b.ID,
		StaffID:   b.StaffID,
		StartTs:   b.StartTs,
		EndTs:     b.EndTs,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
