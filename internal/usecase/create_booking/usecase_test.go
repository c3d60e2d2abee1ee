package create_booking

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowline/salon-booking-service/internal/domain"
	bookingRepo "github.com/glowline/salon-booking-service/internal/infra/storage/booking"
	serviceRepo "github.com/glowline/salon-booking-service/internal/infra/storage/service"
	staffRepo "github.com/glowline/salon-booking-service/internal/infra/storage/staff"
	"github.com/glowline/salon-booking-service/pkg/ptr"
)

// Тестовый день: понедельник 2025-06-02 UTC
var testMidnight = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC).UnixMilli()

func msAt(hour, min int) int64 {
	return testMidnight + int64(hour*60+min)*domain.MillisPerMinute
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

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

type fakeStaffRepo struct {
	staff []*domain.Staff // отсортированы по ID по возрастанию
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id int64) (*domain.Staff, error) {
	for _, st := range f.staff {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, staffRepo.ErrStaffNotFound
}

func (f *fakeStaffRepo) ListActive(_ context.Context) ([]*domain.Staff, error) {
	result := make([]*domain.Staff, 0, len(f.staff))
	for _, st := range f.staff {
		if st.Active {
			result = append(result, st)
		}
	}
	return result, nil
}

// fakeBookingStore хранилище бронирований с атомарной вставкой:
// Create под локом проверяет пересечение и вставляет - это моделирует
// exclusion constraint базы (два конкурирующих коммита на один слот
// не проходят оба)
type fakeBookingStore struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{nextID: 1}
}

func (f *fakeBookingStore) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.bookings {
		if existing.StaffID != b.StaffID || !existing.IsConfirmed() {
			continue
		}
		if existing.StartTs < b.EndTs && existing.EndTs > b.StartTs {
			return nil, bookingRepo.ErrSlotTaken
		}
	}

	created := *b
	created.ID = f.nextID
	f.nextID++
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

func (f *fakeBookingStore) ListConfirmedOverlapping(_ context.Context, staffID int64, startTs, endTs int64) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

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

func (f *fakeBookingStore) confirmed() []*domain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.IsConfirmed() {
			result = append(result, b)
		}
	}
	return result
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func defaultServices() map[int64]*domain.Service {
	return map[int64]*domain.Service{
		1: {ID: 1, Name: "Стрижка", DurationMin: 30, Active: true},
	}
}

func defaultStaff() []*domain.Staff {
	return []*domain.Staff{
		{ID: 1, Name: "Анна", Active: true},
		{ID: 2, Name: "Борис", Active: true},
		{ID: 3, Name: "Вера", Active: false},
	}
}

func newTestUseCase(store *fakeBookingStore) *UseCase {
	return NewUseCase(
		&fakeServiceRepo{services: defaultServices()},
		&fakeStaffRepo{staff: defaultStaff()},
		store,
		fakeTxManager{},
		nil,
		nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		ServiceID:    1,
		StaffID:      ptr.Ptr(int64(1)),
		StartTs:      msAt(9, 0),
		CustomerName: "Иван Петров",
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.StaffID)
	assert.Equal(t, msAt(9, 0), resp.StartTs)
	// Конец слота = начало + длительность услуги
	assert.Equal(t, msAt(9, 30), resp.EndTs)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Len(t, store.confirmed(), 1)
}

func TestExecute_RejectsConflictingSlot(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Тот же мастер, тот же слот
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Частичное пересечение тоже конфликт
	req := validRequest()
	req.StartTs = msAt(9, 15)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	assert.Len(t, store.confirmed(), 1)
}

func TestExecute_AdjacentSlotsDoNotConflict(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// [09:00, 09:30) и [09:30, 10:00) встык - оба проходят
	req := validRequest()
	req.StartTs = msAt(9, 30)
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, store.confirmed(), 2)
}

func TestExecute_SameSlotDifferentStaff(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.StaffID = ptr.Ptr(int64(2))
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, store.confirmed(), 2)
}

func TestExecute_AutoAssignLowestFreeStaffID(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store)

	// Без указания мастера назначается первый свободный по возрастанию ID
	req := validRequest()
	req.StaffID = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.StaffID)

	// Мастер 1 теперь занят, следующее бронирование уходит мастеру 2
	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.StaffID)

	// Неактивный мастер 3 в перебор не попадает: все заняты
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoAvailableStaff)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeBookingStore())

	req := validRequest()
	req.ServiceID = 42
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_StaffNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeBookingStore())

	req := validRequest()
	req.StaffID = ptr.Ptr(int64(42))
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(newFakeBookingStore())

	tests := []struct {
		name   string
		modify func(*Request)
	}{
		{"нулевой serviceId", func(r *Request) { r.ServiceID = 0 }},
		{"отрицательный staffId", func(r *Request) { r.StaffID = ptr.Ptr(int64(-1)) }},
		{"нулевой startTs", func(r *Request) { r.StartTs = 0 }},
		{"пустое имя клиента", func(r *Request) { r.CustomerName = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ConcurrentSameSlotExactlyOneWins(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store)

	const attempts = 16

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	// Ровно один коммит проходит, остальные получают отказ по занятости
	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrSlotNotAvailable)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Len(t, store.confirmed(), 1)
}

func TestExecute_RandomSequenceKeepsNoOverlapInvariant(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store)
	rng := rand.New(rand.NewSource(42))

	// Случайный поток запросов на день: часть проходит, часть отклоняется,
	// но инвариант отсутствия пересечений у мастера держится всегда
	for i := 0; i < 200; i++ {
		req := &Request{
			ServiceID:    1,
			StartTs:      msAt(9, 0) + int64(rng.Intn(96))*5*domain.MillisPerMinute,
			CustomerName: "Клиент",
		}
		if rng.Intn(2) == 0 {
			req.StaffID = ptr.Ptr(int64(1 + rng.Intn(2)))
		}

		_, err := uc.Execute(context.Background(), req)
		if err != nil {
			require.True(t,
				errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrNoAvailableStaff),
				"unexpected error: %v", err)
		}
	}

	confirmed := store.confirmed()
	require.NotEmpty(t, confirmed)

	for i := 0; i < len(confirmed); i++ {
		for j := i + 1; j < len(confirmed); j++ {
			a, b := confirmed[i], confirmed[j]
			if a.StaffID != b.StaffID {
				continue
			}
			assert.False(t, a.Interval().Overlaps(b.Interval()),
				"bookings %d and %d overlap for staff %d", a.ID, b.ID, a.StaffID)
		}
	}
}

type countingMetrics struct {
	mu        sync.Mutex
	created   map[string]int
	conflicts map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{
		created:   make(map[string]int),
		conflicts: make(map[string]int),
	}
}

func (m *countingMetrics) RecordBookingCreated(assignment string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created[assignment]++
}

func (m *countingMetrics) RecordBookingConflict(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflicts[reason]++
}

func TestExecute_RecordsBookingMetrics(t *testing.T) {
	store := newFakeBookingStore()
	recorder := newCountingMetrics()
	uc := NewUseCase(
		&fakeServiceRepo{services: defaultServices()},
		&fakeStaffRepo{staff: defaultStaff()},
		store,
		fakeTxManager{},
		recorder,
		nopLogger{},
	)

	// Явный выбор мастера
	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Автоназначение на другой слот
	autoReq := &Request{
		ServiceID:    1,
		StartTs:      msAt(12, 0),
		CustomerName: "Иван Петров",
	}
	_, err = uc.Execute(context.Background(), autoReq)
	require.NoError(t, err)

	// Повтор занятого слота того же мастера
	_, err = uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	// Оба активных мастера заняты - автоназначение не находит свободного
	_, err = uc.Execute(context.Background(), &Request{
		ServiceID:    1,
		StaffID:      ptr.Ptr(int64(2)),
		StartTs:      msAt(9, 0),
		CustomerName: "Иван Петров",
	})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), &Request{
		ServiceID:    1,
		StartTs:      msAt(9, 0),
		CustomerName: "Иван Петров",
	})
	require.ErrorIs(t, err, ErrNoAvailableStaff)

	assert.Equal(t, 2, recorder.created["pinned"])
	assert.Equal(t, 1, recorder.created["auto"])
	assert.Equal(t, 1, recorder.conflicts["slot_taken"])
	assert.Equal(t, 1, recorder.conflicts["no_staff"])
}
