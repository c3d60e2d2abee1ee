package list_bookings

import (
	"net/http"
	"strconv"

	"github.com/glowline/salon-booking-service/internal/api/handlers"
	"github.com/glowline/salon-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidStaffID   = "некорректный ID мастера"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidFromTs    = "некорректный fromTs, ожидаются миллисекунды Unix-эпохи"
	msgInvalidToTs      = "некорректный toTs, ожидаются миллисекунды Unix-эпохи"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: staffId, serviceId, fromTs, toTs (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if raw := query.Get("staffId"); raw != "" {
		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		req.StaffID = &staffID
	}

	if raw := query.Get("serviceId"); raw != "" {
		serviceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		req.ServiceID = &serviceID
	}

	if raw := query.Get("fromTs"); raw != "" {
		fromTs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid fromTs: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFromTs)
			return
		}
		req.FromTs = &fromTs
	}

	if raw := query.Get("toTs"); raw != "" {
		toTs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid toTs: %v", err)
			handlers.RespondBadRequest(w, msgInvalidToTs)
			return
		}
		req.ToTs = &toTs
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
