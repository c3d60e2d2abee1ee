package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowline/salon-booking-service/internal/domain"
	serviceRepo "github.com/glowline/salon-booking-service/internal/infra/storage/service"
	"github.com/glowline/salon-booking-service/pkg/ptr"
	"github.com/glowline/salon-booking-service/pkg/types"
)

// Тестовый день: понедельник 2025-06-02 UTC
var testMidnight = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC).UnixMilli()

// msAt возвращает момент тестового дня в миллисекундах
func msAt(hour, min int) int64 {
	return testMidnight + int64(hour*60+min)*domain.MillisPerMinute
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	nowMs int64
}

func (f *fixedTime) Now() time.Time {
	return time.UnixMilli(f.nowMs).UTC()
}

// Фейковые репозитории повторяют контракты хранилища:
// те же сигнатуры, те же sentinel-ошибки, та же полуоткрытая семантика

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeScheduleRepo struct {
	schedules []*domain.StaffSchedule
}

func (f *fakeScheduleRepo) ListForWeekday(_ context.Context, weekday time.Weekday, staffID *int64) ([]*domain.StaffSchedule, error) {
	result := make([]*domain.StaffSchedule, 0)
	for _, s := range f.schedules {
		// Строки с нечитаемым weekdays исключаются из генерации
		if s.Weekdays == nil || !s.Weekdays.Contains(weekday) {
			continue
		}
		if staffID != nil && s.StaffID != *staffID {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListConfirmedOverlapping(_ context.Context, staffID int64, startTs, endTs int64) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.StaffID != staffID || !b.IsConfirmed() {
			continue
		}
		if b.StartTs < endTs && b.EndTs > startTs {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeBlackoutRepo struct {
	blackouts []*domain.Blackout
}

func (f *fakeBlackoutRepo) ListOverlapping(_ context.Context, staffID *int64, startTs, endTs int64) ([]*domain.Blackout, error) {
	result := make([]*domain.Blackout, 0)
	for _, b := range f.blackouts {
		if staffID != nil && !b.AppliesTo(*staffID) {
			continue
		}
		if b.StartTs < endTs && b.EndTs > startTs {
			result = append(result, b)
		}
	}
	return result, nil
}

// окно 09:00-10:00 с шагом 30 минут
func mondaySchedule(staffID int64) *domain.StaffSchedule {
	return &domain.StaffSchedule{
		ID:              staffID,
		StaffID:         staffID,
		Weekdays:        types.Weekdays{1},
		StartMin:        540,
		EndMin:          600,
		SlotIntervalMin: 30,
	}
}

func newTestUseCase(
	services map[int64]*domain.Service,
	schedules []*domain.StaffSchedule,
	bookings []*domain.Booking,
	blackouts []*domain.Blackout,
	nowMs int64,
) *UseCase {
	uc := NewUseCase(
		&fakeServiceRepo{services: services},
		&fakeScheduleRepo{schedules: schedules},
		&fakeBookingRepo{bookings: bookings},
		&fakeBlackoutRepo{blackouts: blackouts},
		30,
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{nowMs: nowMs}
	return uc
}

func TestExecute_GeneratesSlotsForEmptyDay(t *testing.T) {
	uc := newTestUseCase(nil, []*domain.StaffSchedule{mondaySchedule(1)}, nil, nil, msAt(0, 0))

	resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
	require.NoError(t, err)

	// Окно 09:00-10:00, шаг 30, длительность 30: кандидаты 09:00 и 09:30,
	// кандидат 10:00 не влезает (10:30 > конец окна)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, domain.Slot{StartTs: msAt(9, 0), EndTs: msAt(9, 30), StaffID: 1}, resp.Slots[0])
	assert.Equal(t, domain.Slot{StartTs: msAt(9, 30), EndTs: msAt(10, 0), StaffID: 1}, resp.Slots[1])
}

func TestExecute_ServiceDurationNarrowsSlots(t *testing.T) {
	services := map[int64]*domain.Service{
		5: {ID: 5, Name: "Окрашивание", DurationMin: 45, Active: true},
	}
	uc := newTestUseCase(services, []*domain.StaffSchedule{mondaySchedule(1)}, nil, nil, msAt(0, 0))

	resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0), ServiceID: ptr.Ptr(int64(5))})
	require.NoError(t, err)

	// 45-минутная услуга: влезает только кандидат 09:00 (09:30+45 > 10:00)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, msAt(9, 0), resp.Slots[0].StartTs)
	assert.Equal(t, msAt(9, 45), resp.Slots[0].EndTs)
}

func TestExecute_Idempotent(t *testing.T) {
	uc := newTestUseCase(nil, []*domain.StaffSchedule{mondaySchedule(1)}, nil, nil, msAt(0, 0))
	req := &Request{DateTs: msAt(12, 0)}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Без изменений данных выдача байт-в-байт та же: значения и порядок
	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_ExcludesPastSlots(t *testing.T) {
	schedules := []*domain.StaffSchedule{mondaySchedule(1)}

	t.Run("сейчас внутри дня", func(t *testing.T) {
		uc := newTestUseCase(nil, schedules, nil, nil, msAt(9, 10))

		resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 1)
		assert.Equal(t, msAt(9, 30), resp.Slots[0].StartTs)
	})

	t.Run("слот ровно сейчас не проходит - строго будущее", func(t *testing.T) {
		uc := newTestUseCase(nil, schedules, nil, nil, msAt(9, 30))

		resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("день целиком в прошлом - пустая выдача", func(t *testing.T) {
		uc := newTestUseCase(nil, schedules, nil, nil, msAt(23, 0))

		resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})
}

func TestExecute_ExcludesBookedSlots(t *testing.T) {
	schedules := []*domain.StaffSchedule{mondaySchedule(1)}

	t.Run("confirmed бронирование закрывает слот", func(t *testing.T) {
		bookings := []*domain.Booking{
			{StaffID: 1, StartTs: msAt(9, 0), EndTs: msAt(9, 30), Status: domain.StatusConfirmed},
		}
		uc := newTestUseCase(nil, schedules, bookings, nil, msAt(0, 0))

		resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 1)
		assert.Equal(t, msAt(9, 30), resp.Slots[0].StartTs)
	})

	t.Run("отменённое бронирование слот не закрывает", func(t *testing.T) {
		bookings := []*domain.Booking{
			{StaffID: 1, StartTs: msAt(9, 0), EndTs: msAt(9, 30), Status: domain.StatusCancelled},
		}
		uc := newTestUseCase(nil, schedules, bookings, nil, msAt(0, 0))

		resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
		require.NoError(t, err)
		assert.Len(t, resp.Slots, 2)
	})

	t.Run("бронирование встык не мешает - интервалы полуоткрытые", func(t *testing.T) {
		bookings := []*domain.Booking{
			{StaffID: 1, StartTs: msAt(8, 0), EndTs: msAt(9, 0), Status: domain.StatusConfirmed},
		}
		uc := newTestUseCase(nil, schedules, bookings, nil, msAt(0, 0))

		resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
		require.NoError(t, err)
		assert.Len(t, resp.Slots, 2)
	})

	t.Run("бронирование чужого мастера не влияет", func(t *testing.T) {
		bookings := []*domain.Booking{
			{StaffID: 2, StartTs: msAt(9, 0), EndTs: msAt(9, 30), Status: domain.StatusConfirmed},
		}
		uc := newTestUseCase(nil, schedules, bookings, nil, msAt(0, 0))

		resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
		require.NoError(t, err)
		assert.Len(t, resp.Slots, 2)
	})
}

func TestExecute_ExcludesBlackouts(t *testing.T) {
	schedules := []*domain.StaffSchedule{mondaySchedule(1)}

	t.Run("персональный blackout закрывает слот", func(t *testing.T) {
		blackouts := []*domain.Blackout{
			{StaffID: ptr.Ptr(int64(1)), StartTs: msAt(9, 15), EndTs: msAt(9, 45)},
		}
		uc := newTestUseCase(nil, schedules, nil, blackouts, msAt(0, 0))

		resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
		require.NoError(t, err)

		// Blackout 09:15-09:45 пересекает оба кандидата
		assert.Empty(t, resp.Slots)
	})

	t.Run("глобальный blackout действует на всех", func(t *testing.T) {
		blackouts := []*domain.Blackout{
			{StartTs: msAt(9, 0), EndTs: msAt(9, 30)},
		}
		uc := newTestUseCase(nil, schedules, nil, blackouts, msAt(0, 0))

		resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 1)
		assert.Equal(t, msAt(9, 30), resp.Slots[0].StartTs)
	})

	t.Run("чужой blackout не влияет", func(t *testing.T) {
		blackouts := []*domain.Blackout{
			{StaffID: ptr.Ptr(int64(2)), StartTs: msAt(9, 0), EndTs: msAt(10, 0)},
		}
		uc := newTestUseCase(nil, schedules, nil, blackouts, msAt(0, 0))

		resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
		require.NoError(t, err)
		assert.Len(t, resp.Slots, 2)
	})
}

func TestExecute_MalformedScheduleRowIsolated(t *testing.T) {
	// Вторая строка с нечитаемым weekdays (nil после неудачного декодирования)
	// выпадает из генерации, не ломая выдачу первой
	broken := mondaySchedule(2)
	broken.Weekdays = nil

	uc := newTestUseCase(nil, []*domain.StaffSchedule{mondaySchedule(1), broken}, nil, nil, msAt(0, 0))

	resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	for _, s := range resp.Slots {
		assert.Equal(t, int64(1), s.StaffID)
	}
}

func TestExecute_DuplicateSchedulesDeduped(t *testing.T) {
	// Две одинаковые строки расписания одного мастера не удваивают слоты
	uc := newTestUseCase(nil, []*domain.StaffSchedule{mondaySchedule(1), mondaySchedule(1)}, nil, nil, msAt(0, 0))

	resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
}

func TestExecute_SortOrderAndTieBreak(t *testing.T) {
	// Два мастера с одинаковым окном: совпадающие startTs упорядочены по staffId
	uc := newTestUseCase(nil, []*domain.StaffSchedule{mondaySchedule(2), mondaySchedule(1)}, nil, nil, msAt(0, 0))

	resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0)})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	assert.Equal(t, []domain.Slot{
		{StartTs: msAt(9, 0), EndTs: msAt(9, 30), StaffID: 1},
		{StartTs: msAt(9, 0), EndTs: msAt(9, 30), StaffID: 2},
		{StartTs: msAt(9, 30), EndTs: msAt(10, 0), StaffID: 1},
		{StartTs: msAt(9, 30), EndTs: msAt(10, 0), StaffID: 2},
	}, resp.Slots)
}

func TestExecute_StaffFilter(t *testing.T) {
	uc := newTestUseCase(nil, []*domain.StaffSchedule{mondaySchedule(1), mondaySchedule(2)}, nil, nil, msAt(0, 0))

	resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0), StaffID: ptr.Ptr(int64(2))})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	for _, s := range resp.Slots {
		assert.Equal(t, int64(2), s.StaffID)
	}
}

func TestExecute_NoScheduleForWeekday(t *testing.T) {
	uc := newTestUseCase(nil, []*domain.StaffSchedule{mondaySchedule(1)}, nil, nil, msAt(0, 0))

	// 2025-06-03 - вторник, расписание только на понедельник
	tuesday := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC).UnixMilli()
	resp, err := uc.Execute(context.Background(), &Request{DateTs: tuesday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFoundAbortsWholeRequest(t *testing.T) {
	uc := newTestUseCase(nil, []*domain.StaffSchedule{mondaySchedule(1)}, nil, nil, msAt(0, 0))

	resp, err := uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0), ServiceID: ptr.Ptr(int64(99))})
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Nil(t, resp)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, nil, msAt(0, 0))

	_, err := uc.Execute(context.Background(), &Request{DateTs: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0), ServiceID: ptr.Ptr(int64(-1))})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DateTs: msAt(12, 0), StaffID: ptr.Ptr(int64(0))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
