package delete_blackout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glowline/salon-booking-service/internal/api/handlers"
	catalogService "github.com/glowline/salon-booking-service/internal/service/catalog"
)

const (
	msgInvalidBlackoutID = "некорректный ID интервала недоступности"
	msgBlackoutNotFound  = "интервал недоступности не найден"
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

// Handle DELETE /api/v1/blackouts/{blackoutId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	blackoutID, err := strconv.ParseInt(vars["blackoutId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /blackouts/{id} - Invalid blackout ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlackoutID)
		return
	}

	if err := h.service.DeleteBlackout(r.Context(), blackoutID); err != nil {
		switch {
		case errors.Is(err, catalogService.ErrBlackoutNotFound):
			h.logger.Warn("DELETE /blackouts/{id} - Blackout not found: blackout_id=%d", blackoutID)
			handlers.RespondNotFound(w, msgBlackoutNotFound)

		default:
			h.logger.Error("DELETE /blackouts/{id} - Failed to delete blackout: blackout_id=%d, error=%v",
				blackoutID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blackouts/{id} - Blackout deleted successfully: blackout_id=%d", blackoutID)
	w.WriteHeader(http.StatusNoContent)
}
