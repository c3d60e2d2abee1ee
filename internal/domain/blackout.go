package domain

import "time"

// Blackout явный интервал недоступности
// StaffID == nil означает глобальный blackout, действующий на всех мастеров
type Blackout struct {
	ID        int64
	StaffID   *int64
	StartTs   int64 // миллисекунды Unix-эпохи, UTC
	EndTs     int64
	Reason    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval возвращает интервал недоступности
func (b *Blackout) Interval() Interval {
	return Interval{Start: b.StartTs, End: b.EndTs}
}

// IsGlobal returns true if the blackout applies to every staff member
func (b *Blackout) IsGlobal() bool {
	return b.StaffID == nil
}

// AppliesTo проверяет, действует ли blackout на указанного мастера
func (b *Blackout) AppliesTo(staffID int64) bool {
	return b.StaffID == nil || *b.StaffID == staffID
}
