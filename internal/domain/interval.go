package domain

// Interval полуоткрытый временной интервал [Start, End) в миллисекундах Unix-эпохи (UTC)
type Interval struct {
	Start int64
	End   int64
}

// NewInterval создает интервал [start, start+durationMs)
func NewInterval(start, durationMs int64) Interval {
	return Interval{Start: start, End: start + durationMs}
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
//
// [a,b) и [c,d) пересекаются тогда и только тогда, когда a < d && c < b.
// Граничные случаи пересечением НЕ считаются: бронирование, заканчивающееся
// ровно в момент начала другого, конфликта не создает.
//
// Это единственный предикат пересечения в системе - слот против бронирования,
// окно дня против бронирования, новое бронирование против существующих
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// OverlapsAny проверяет пересечение хотя бы с одним интервалом из списка
func (i Interval) OverlapsAny(others []Interval) bool {
	for _, o := range others {
		if i.Overlaps(o) {
			return true
		}
	}
	return false
}

// IsValid проверяет, что интервал непуст и корректно упорядочен
func (i Interval) IsValid() bool {
	return i.Start < i.End
}
