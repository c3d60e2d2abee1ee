package domain

import (
	"time"

	"github.com/glowline/salon-booking-service/pkg/types"
)

// StaffSchedule недельное правило доступности одного мастера
// У мастера может быть несколько расписаний (разные часы в разные дни).
// Дубликаты строк движком переносятся без последствий: слоты-кандидаты
// дедуплицируются по (staffId, startTs)
type StaffSchedule struct {
	ID              int64
	StaffID         int64
	Weekdays        types.Weekdays
	StartMin        int // минуты от полуночи, 0 <= StartMin < EndMin <= 1440
	EndMin          int
	SlotIntervalMin int // шаг между началами слотов-кандидатов, > 0
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WorkingWindow возвращает абсолютное рабочее окно расписания на день
// midnightUTC - полночь целевой даты в миллисекундах Unix-эпохи (UTC)
func (s *StaffSchedule) WorkingWindow(midnightUTC int64) Interval {
	return Interval{
		Start: midnightUTC + int64(s.StartMin)*MillisPerMinute,
		End:   midnightUTC + int64(s.EndMin)*MillisPerMinute,
	}
}

// IntervalMillis возвращает шаг расписания в миллисекундах
// Нулевой или отрицательный шаг заменяется дефолтным, чтобы обход
// кандидатов гарантированно продвигался вперед
func (s *StaffSchedule) IntervalMillis() int64 {
	if s.SlotIntervalMin <= 0 {
		return int64(DefaultServiceDurationMin) * MillisPerMinute
	}
	return int64(s.SlotIntervalMin) * MillisPerMinute
}
