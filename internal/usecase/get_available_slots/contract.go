package get_available_slots

import (
	"context"
	"time"

	"github.com/glowline/salon-booking-service/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	// ListForWeekday получает расписания на день недели, опционально одного мастера
	ListForWeekday(ctx context.Context, weekday time.Weekday, staffID *int64) ([]*domain.StaffSchedule, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListConfirmedOverlapping получает confirmed-бронирования мастера, пересекающие [startTs, endTs)
	ListConfirmedOverlapping(ctx context.Context, staffID int64, startTs, endTs int64) ([]*domain.Booking, error)
}

// BlackoutRepository интерфейс репозитория интервалов недоступности
type BlackoutRepository interface {
	// ListOverlapping получает blackout-интервалы мастера и глобальные, пересекающие [startTs, endTs)
	ListOverlapping(ctx context.Context, staffID *int64, startTs, endTs int64) ([]*domain.Blackout, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
