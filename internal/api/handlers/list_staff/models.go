package list_staff

import (
	"time"

	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
)

// StaffListResponse HTTP response model
type StaffListResponse struct {
	Staff []StaffItem `json:"staff"`
	Total int         `json:"total"`
}

// StaffItem элемент списка мастеров
type StaffItem struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(staff []*models.StaffResponse) *StaffListResponse {
	items := make([]StaffItem, len(staff))
	for i, st := range staff {
		items[i] = StaffItem{
			ID:        st.ID,
			Name:      st.Name,
			Email:     st.Email,
			Phone:     st.Phone,
			Role:      st.Role,
			Active:    st.Active,
			CreatedAt: st.CreatedAt.Format(time.RFC3339),
			UpdatedAt: st.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &StaffListResponse{
		Staff: items,
		Total: len(items),
	}
}
