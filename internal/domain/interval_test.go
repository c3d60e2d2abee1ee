package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Overlaps(t *testing.T) {
	base := Interval{Start: 1000, End: 2000}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{
			name:  "полное пересечение",
			other: Interval{Start: 1200, End: 1800},
			want:  true,
		},
		{
			name:  "частичное пересечение слева",
			other: Interval{Start: 500, End: 1500},
			want:  true,
		},
		{
			name:  "частичное пересечение справа",
			other: Interval{Start: 1500, End: 2500},
			want:  true,
		},
		{
			name:  "другой интервал содержит базовый",
			other: Interval{Start: 500, End: 2500},
			want:  true,
		},
		{
			name:  "встык слева - не пересечение",
			other: Interval{Start: 0, End: 1000},
			want:  false,
		},
		{
			name:  "встык справа - не пересечение",
			other: Interval{Start: 2000, End: 3000},
			want:  false,
		},
		{
			name:  "полностью до",
			other: Interval{Start: 0, End: 500},
			want:  false,
		},
		{
			name:  "полностью после",
			other: Interval{Start: 3000, End: 4000},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestInterval_OverlapsAny(t *testing.T) {
	candidate := Interval{Start: 1000, End: 2000}

	busy := []Interval{
		{Start: 0, End: 1000},    // встык - не мешает
		{Start: 2000, End: 3000}, // встык - не мешает
	}
	assert.False(t, candidate.OverlapsAny(busy))

	busy = append(busy, Interval{Start: 1999, End: 2001})
	assert.True(t, candidate.OverlapsAny(busy))

	assert.False(t, candidate.OverlapsAny(nil))
}

func TestNewInterval(t *testing.T) {
	iv := NewInterval(5000, 1500)
	assert.Equal(t, int64(5000), iv.Start)
	assert.Equal(t, int64(6500), iv.End)
	assert.True(t, iv.IsValid())

	assert.False(t, NewInterval(5000, 0).IsValid())
}

func TestMidnightUTC(t *testing.T) {
	// 2025-06-02 14:35:17.250 UTC
	ts := time.Date(2025, 6, 2, 14, 35, 17, 250_000_000, time.UTC).UnixMilli()
	midnight := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC).UnixMilli()

	assert.Equal(t, midnight, MidnightUTC(ts))
	// Полночь - неподвижная точка
	assert.Equal(t, midnight, MidnightUTC(midnight))
	// Последняя миллисекунда дня принадлежит тому же дню
	assert.Equal(t, midnight, MidnightUTC(midnight+24*60*60*1000-1))
}

func TestWeekdayUTC(t *testing.T) {
	// 2025-06-02 - понедельник
	ts := time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, time.Monday, WeekdayUTC(ts))

	// 2025-06-01 - воскресенье
	ts = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, time.Sunday, WeekdayUTC(ts))
}

func TestStaffSchedule_WorkingWindow(t *testing.T) {
	midnight := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC).UnixMilli()

	sched := &StaffSchedule{
		StaffID:         1,
		StartMin:        540, // 09:00
		EndMin:          600, // 10:00
		SlotIntervalMin: 30,
	}

	window := sched.WorkingWindow(midnight)
	assert.Equal(t, midnight+540*MillisPerMinute, window.Start)
	assert.Equal(t, midnight+600*MillisPerMinute, window.End)
	assert.True(t, window.IsValid())
	assert.Equal(t, int64(30)*MillisPerMinute, sched.IntervalMillis())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	confirmed := &Booking{Status: StatusConfirmed}
	assert.True(t, confirmed.CanBeCancelled())
	assert.True(t, confirmed.IsConfirmed())

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.CanBeCancelled())
	assert.False(t, cancelled.IsConfirmed())
}

func TestBlackout_AppliesTo(t *testing.T) {
	staffID := int64(7)

	personal := &Blackout{StaffID: &staffID}
	assert.False(t, personal.IsGlobal())
	assert.True(t, personal.AppliesTo(7))
	assert.False(t, personal.AppliesTo(8))

	global := &Blackout{}
	assert.True(t, global.IsGlobal())
	assert.True(t, global.AppliesTo(7))
	assert.True(t, global.AppliesTo(8))
}
