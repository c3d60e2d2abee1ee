package catalog

import (
	"context"

	"github.com/glowline/salon-booking-service/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, id int64, updates domain.ServiceUpdates) (*domain.Service, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	List(ctx context.Context) ([]*domain.Staff, error)
	Create(ctx context.Context, st *domain.Staff) (*domain.Staff, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	List(ctx context.Context, staffID *int64) ([]*domain.StaffSchedule, error)
	Create(ctx context.Context, sched *domain.StaffSchedule) (*domain.StaffSchedule, error)
	Delete(ctx context.Context, id int64) error
}

// BlackoutRepository интерфейс репозитория интервалов недоступности
type BlackoutRepository interface {
	List(ctx context.Context) ([]*domain.Blackout, error)
	Create(ctx context.Context, b *domain.Blackout) (*domain.Blackout, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
