package create_schedule

import (
	"context"

	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	CreateSchedule(ctx context.Context, req *models.CreateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
