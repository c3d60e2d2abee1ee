package create_blackout

import (
	"context"

	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	CreateBlackout(ctx context.Context, req *models.CreateBlackoutRequest) (*models.BlackoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
