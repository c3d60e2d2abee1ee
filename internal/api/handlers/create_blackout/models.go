package create_blackout

import (
	"time"

	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
)

// CreateBlackoutRequest HTTP request model
type CreateBlackoutRequest struct {
	StaffID *int64  `json:"staffId,omitempty"` // nil - глобальный blackout
	StartTs int64   `json:"startTs"`
	EndTs   int64   `json:"endTs"`
	Reason  *string `json:"reason,omitempty"`
}

// BlackoutResponse HTTP response model
type BlackoutResponse struct {
	ID        int64   `json:"id"`
	StaffID   *int64  `json:"staffId,omitempty"`
	StartTs   int64   `json:"startTs"`
	EndTs     int64   `json:"endTs"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlackoutRequest) ToServiceRequest() *models.CreateBlackoutRequest {
	return &models.CreateBlackoutRequest{
		StaffID: r.StaffID,
		StartTs: r.StartTs,
		EndTs:   r.EndTs,
		Reason:  r.Reason,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BlackoutResponse) *BlackoutResponse {
	return &BlackoutResponse{
		ID:        resp.ID,
		StaffID:   resp.StaffID,
		StartTs:   resp.StartTs,
		EndTs:     resp.EndTs,
		Reason:    resp.Reason,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
