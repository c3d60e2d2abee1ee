package list_blackouts

import (
	"context"

	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListBlackouts(ctx context.Context) ([]*models.BlackoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
