package create_blackout

import (
	"errors"
	"net/http"

	"github.com/glowline/salon-booking-service/internal/api/handlers"
	catalogService "github.com/glowline/salon-booking-service/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgStaffNotFound      = "мастер не найден"
	msgInvalidInput       = "некорректный интервал недоступности"
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

// Handle POST /api/v1/blackouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blackouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBlackout(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrStaffNotFound):
			h.logger.Warn("POST /blackouts - Staff not found: staff_id=%v", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /blackouts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blackouts - Failed to create blackout: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blackouts - Blackout created successfully: blackout_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
