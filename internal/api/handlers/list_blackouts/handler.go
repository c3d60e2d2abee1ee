package list_blackouts

import (
	"net/http"

	"github.com/glowline/salon-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/blackouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlackouts(r.Context())
	if err != nil {
		h.logger.Error("GET /blackouts - Failed to list blackouts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blackouts - Blackouts retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
