package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/glowline/salon-booking-service/internal/api/handlers"
	getAvailableSlots "github.com/glowline/salon-booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDateTs    = "параметр dateTs обязателен"
	msgInvalidDateTs    = "некорректный dateTs, ожидаются миллисекунды Unix-эпохи"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidStaffID   = "некорректный ID мастера"
	msgServiceNotFound  = "услуга не найдена"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: dateTs (required, ms), serviceId (optional), staffId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем dateTs из query параметров
	dateTsStr := query.Get("dateTs")
	if dateTsStr == "" {
		h.logger.Warn("GET /available-slots - Missing dateTs")
		handlers.RespondBadRequest(w, msgMissingDateTs)
		return
	}

	dateTs, err := strconv.ParseInt(dateTsStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid dateTs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTs)
		return
	}

	req := &getAvailableSlots.Request{DateTs: dateTs}

	// Извлекаем опциональный serviceId
	if serviceIDStr := query.Get("serviceId"); serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /available-slots - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		req.ServiceID = &serviceID
	}

	// Извлекаем опциональный staffId
	if staffIDStr := query.Get("staffId"); staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /available-slots - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		req.StaffID = &staffID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: service_id=%v", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date_ts=%d, error=%v", dateTs, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: date_ts=%d, slots_count=%d",
		dateTs, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(req, result))
}
