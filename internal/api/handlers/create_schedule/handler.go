package create_schedule

import (
	"errors"
	"net/http"

	"github.com/glowline/salon-booking-service/internal/api/handlers"
	catalogService "github.com/glowline/salon-booking-service/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgStaffNotFound      = "мастер не найден"
	msgInvalidInput       = "некорректные данные расписания"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateSchedule(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrStaffNotFound):
			h.logger.Warn("POST /schedules - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: staff_id=%d, error=%v", req.StaffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: staff_id=%d, error=%v", req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedule created successfully: schedule_id=%d, staff_id=%d",
		result.ID, result.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
