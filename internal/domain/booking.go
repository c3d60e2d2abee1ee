package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a confirmed reservation of one staff member for one service
type Booking struct {
	ID        int64
	ServiceID int64
	StaffID   int64 // всегда заполнен: auto-assignment разрешается до записи в БД
	StartTs   int64 // миллисекунды Unix-эпохи, UTC
	EndTs     int64 // StartTs + длительность услуги

	CustomerName    string
	CustomerContact *string

	Status BookingStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval возвращает занимаемый бронированием полуоткрытый интервал
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTs, End: b.EndTs}
}

// IsConfirmed returns true if the booking occupies its time slot
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can transition to cancelled
// Переход одноразовый: повторная отмена - ошибка, а не no-op
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// BookingsFilter фильтр для административного списка бронирований
type BookingsFilter struct {
	StaffID   *int64 // фильтр по мастеру (опционально)
	ServiceID *int64 // фильтр по услуге (опционально)
	FromTs    *int64 // нижняя граница startTs в мс (опционально)
	ToTs      *int64 // верхняя граница startTs в мс (опционально)
}
