package get_available_slots

import (
	getAvailableSlots "github.com/glowline/salon-booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	DateTs    int64           `json:"dateTs"`
	ServiceID *int64          `json:"serviceId,omitempty"`
	StaffID   *int64          `json:"staffId,omitempty"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTs int64 `json:"startTs"`
	EndTs   int64 `json:"endTs"`
	StaffID int64 `json:"staffId"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *getAvailableSlots.Request, resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTs: slot.StartTs,
			EndTs:   slot.EndTs,
			StaffID: slot.StaffID,
		}
	}

	return &AvailableSlotsResponse{
		DateTs:    req.DateTs,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Slots:     slots,
	}
}
