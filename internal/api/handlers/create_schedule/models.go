package create_schedule

import (
	"time"

	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
	"github.com/glowline/salon-booking-service/pkg/types"
)

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	StaffID         int64 `json:"staffId"`
	Weekdays        []int `json:"weekdays"` // 0=воскресенье ... 6=суббота
	StartMin        int   `json:"startMin"`
	EndMin          int   `json:"endMin"`
	SlotIntervalMin int   `json:"slotIntervalMin"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID              int64  `json:"id"`
	StaffID         int64  `json:"staffId"`
	Weekdays        []int  `json:"weekdays"`
	StartMin        int    `json:"startMin"`
	EndMin          int    `json:"endMin"`
	SlotIntervalMin int    `json:"slotIntervalMin"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateScheduleRequest) ToServiceRequest() *models.CreateScheduleRequest {
	return &models.CreateScheduleRequest{
		StaffID:         r.StaffID,
		Weekdays:        types.Weekdays(r.Weekdays),
		StartMin:        r.StartMin,
		EndMin:          r.EndMin,
		SlotIntervalMin: r.SlotIntervalMin,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ScheduleResponse) *ScheduleResponse {
	return &ScheduleResponse{
		ID:              resp.ID,
		StaffID:         resp.StaffID,
		Weekdays:        resp.Weekdays,
		StartMin:        resp.StartMin,
		EndMin:          resp.EndMin,
		SlotIntervalMin: resp.SlotIntervalMin,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
