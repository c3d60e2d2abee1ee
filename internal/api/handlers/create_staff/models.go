package create_staff

import (
	"time"

	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
)

// CreateStaffRequest HTTP request model
type CreateStaffRequest struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  *string `json:"phone,omitempty"`
	Role   string  `json:"role"`
	Active *bool   `json:"active,omitempty"` // nil = true
}

// StaffResponse HTTP response model
type StaffResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateStaffRequest) ToServiceRequest() *models.CreateStaffRequest {
	return &models.CreateStaffRequest{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Role:   r.Role,
		Active: r.Active,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.StaffResponse) *StaffResponse {
	return &StaffResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		Phone:     resp.Phone,
		Role:      resp.Role,
		Active:    resp.Active,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
