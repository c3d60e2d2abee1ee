package domain

// Slot represents a bookable time slot candidate tied to one staff member
type Slot struct {
	StartTs int64 // миллисекунды Unix-эпохи, UTC
	EndTs   int64
	StaffID int64
}

// Interval возвращает интервал слота
func (s Slot) Interval() Interval {
	return Interval{Start: s.StartTs, End: s.EndTs}
}
