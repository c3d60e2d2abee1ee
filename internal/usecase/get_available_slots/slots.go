package get_available_slots

import (
	"sort"

	"github.com/glowline/salon-booking-service/internal/domain"
)

// walkSchedule генерирует слоты-кандидаты одного расписания на день
//
// Обход: t = dayStart, dayStart+interval, dayStart+2*interval, ... пока
// t+duration <= dayEnd. Кандидат [t, t+duration) принимается, только если
// он не пересекает ни один занятый интервал (бронирования и blackout'ы).
// Отклонённые кандидаты просто пропускаются - частичных или усечённых
// слотов не бывает
func walkSchedule(
	sched *domain.StaffSchedule,
	midnightUTC int64,
	durationMs int64,
	busy []domain.Interval,
) []domain.Slot {
	window := sched.WorkingWindow(midnightUTC)
	interval := sched.IntervalMillis()

	slots := make([]domain.Slot, 0)
	for t := window.Start; t+durationMs <= window.End; t += interval {
		candidate := domain.NewInterval(t, durationMs)
		if candidate.OverlapsAny(busy) {
			continue
		}
		slots = append(slots, domain.Slot{
			StartTs: candidate.Start,
			EndTs:   candidate.End,
			StaffID: sched.StaffID,
		})
	}
	return slots
}

// busyIntervals собирает занятые интервалы мастера:
// confirmed-бронирования плюс blackout'ы (его собственные и глобальные)
func busyIntervals(bookings []*domain.Booking, blackouts []*domain.Blackout) []domain.Interval {
	busy := make([]domain.Interval, 0, len(bookings)+len(blackouts))
	for _, b := range bookings {
		busy = append(busy, b.Interval())
	}
	for _, b := range blackouts {
		busy = append(busy, b.Interval())
	}
	return busy
}

// filterFuture оставляет только слоты, начинающиеся строго после now
// "Сейчас" вычисляется заново на каждый вызов генерации, не кэшируется
func filterFuture(slots []domain.Slot, nowMs int64) []domain.Slot {
	future := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if s.StartTs > nowMs {
			future = append(future, s)
		}
	}
	return future
}

// dedupeAndSort убирает дубликаты по (staffId, startTs) и сортирует выдачу
//
// Дубликаты возникают из повторяющихся строк расписания одного мастера -
// движок обязан переносить их без последствий. Сортировка: startTs по
// возрастанию, при равенстве - staffId по возрастанию (зафиксированный
// детерминированный порядок при совпадающем времени начала)
func dedupeAndSort(slots []domain.Slot) []domain.Slot {
	type slotKey struct {
		staffID int64
		startTs int64
	}

	seen := make(map[slotKey]bool, len(slots))
	result := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		key := slotKey{staffID: s.StaffID, startTs: s.StartTs}
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].StartTs != result[j].StartTs {
			return result[i].StartTs < result[j].StartTs
		}
		return result[i].StaffID < result[j].StaffID
	})

	return result
}
