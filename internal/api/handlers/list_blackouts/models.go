package list_blackouts

import (
	"time"

	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
)

// BlackoutListResponse HTTP response model
type BlackoutListResponse struct {
	Blackouts []BlackoutItem `json:"blackouts"`
	Total     int            `json:"total"`
}

// BlackoutItem элемент списка интервалов недоступности
type BlackoutItem struct {
	ID        int64   `json:"id"`
	StaffID   *int64  `json:"staffId,omitempty"` // nil - глобальный blackout
	StartTs   int64   `json:"startTs"`
	EndTs     int64   `json:"endTs"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(blackouts []*models.BlackoutResponse) *BlackoutListResponse {
	items := make([]BlackoutItem, len(blackouts))
	for i, b := range blackouts {
		items[i] = BlackoutItem{
			ID:        b.ID,
			StaffID:   b.StaffID,
			StartTs:   b.StartTs,
			EndTs:     b.EndTs,
			Reason:    b.Reason,
			CreatedAt: b.CreatedAt.Format(time.RFC3339),
			UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &BlackoutListResponse{
		Blackouts: items,
		Total:     len(items),
	}
}
