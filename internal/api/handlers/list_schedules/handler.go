package list_schedules

import (
	"net/http"
	"strconv"

	"github.com/glowline/salon-booking-service/internal/api/handlers"
)

const msgInvalidStaffID = "некорректный ID мастера"

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

// Handle GET /api/v1/schedules
// Query params: staffId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var staffID *int64
	if raw := r.URL.Query().Get("staffId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /schedules - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		staffID = &id
	}

	result, err := h.service.ListSchedules(r.Context(), staffID)
	if err != nil {
		h.logger.Error("GET /schedules - Failed to list schedules: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules - Schedules retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
