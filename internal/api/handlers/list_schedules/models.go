package list_schedules

import (
	"time"

	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
)

// ScheduleListResponse HTTP response model
type ScheduleListResponse struct {
	Schedules []ScheduleItem `json:"schedules"`
	Total     int            `json:"total"`
}

// ScheduleItem элемент списка расписаний
type ScheduleItem struct {
	ID              int64  `json:"id"`
	StaffID         int64  `json:"staffId"`
	Weekdays        []int  `json:"weekdays"`
	StartMin        int    `json:"startMin"`
	EndMin          int    `json:"endMin"`
	SlotIntervalMin int    `json:"slotIntervalMin"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(schedules []*models.ScheduleResponse) *ScheduleListResponse {
	items := make([]ScheduleItem, len(schedules))
	for i, s := range schedules {
		items[i] = ScheduleItem{
			ID:              s.ID,
			StaffID:         s.StaffID,
			Weekdays:        s.Weekdays,
			StartMin:        s.StartMin,
			EndMin:          s.EndMin,
			SlotIntervalMin: s.SlotIntervalMin,
			CreatedAt:       s.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &ScheduleListResponse{
		Schedules: items,
		Total:     len(items),
	}
}
