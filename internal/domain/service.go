package domain

import "time"

// Service represents a bookable service offered by the salon
type Service struct {
	ID          int64
	Name        string
	DurationMin int // длительность услуги в минутах, определяет длину слота
	PriceCents  int64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DurationMillis возвращает длительность услуги в миллисекундах
func (s *Service) DurationMillis() int64 {
	return int64(s.DurationMin) * MillisPerMinute
}

// ServiceUpdates частичное обновление услуги
// nil-поля не изменяются
type ServiceUpdates struct {
	Name        *string
	DurationMin *int
	PriceCents  *int64
	Active      *bool
}
