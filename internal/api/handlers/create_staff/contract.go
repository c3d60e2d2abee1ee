package create_staff

import (
	"context"

	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
