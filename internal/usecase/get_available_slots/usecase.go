package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowline/salon-booking-service/internal/domain"
	serviceRepo "github.com/glowline/salon-booking-service/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	serviceRepo        ServiceRepository
	scheduleRepo       ScheduleRepository
	bookingRepo        BookingRepository
	blackoutRepo       BlackoutRepository
	timeProvider       TimeProvider
	logger             Logger
	defaultDurationMin int
}

// NewUseCase создает новый экземпляр use case
// defaultDurationMin - длительность слота, когда услуга в запросе не указана
// (секция [booking] в config.toml)
func NewUseCase(
	serviceRepo ServiceRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	blackoutRepo BlackoutRepository,
	defaultDurationMin int,
	logger Logger,
) *UseCase {
	if defaultDurationMin <= 0 {
		defaultDurationMin = domain.DefaultServiceDurationMin
	}
	return &UseCase{
		serviceRepo:        serviceRepo,
		scheduleRepo:       scheduleRepo,
		bookingRepo:        bookingRepo,
		blackoutRepo:       blackoutRepo,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
		defaultDurationMin: defaultDurationMin,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Повторный вызов без изменений данных возвращает ту же последовательность
// (тот же порядок, те же значения). Пустой список - корректный результат,
// означающий "слотов нет", а не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: dateTs=%d, service=%v, staff=%v",
		req.DateTs, ptrVal(req.ServiceID), ptrVal(req.StaffID))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем длительность слота
	durationMs := int64(uc.defaultDurationMin) * domain.MillisPerMinute
	if req.ServiceID != nil {
		svc, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		durationMs = svc.DurationMillis()
	}

	// 3. Граница дня и день недели считаются по UTC
	midnight := domain.MidnightUTC(req.DateTs)
	weekday := domain.WeekdayUTC(req.DateTs)

	// 4. Получаем расписания на этот день недели (с фильтром по мастеру, если задан)
	schedules, err := uc.scheduleRepo.ListForWeekday(ctx, weekday, req.StaffID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	// 5. Для каждого расписания собираем занятые интервалы и обходим кандидатов
	allSlots := make([]domain.Slot, 0)
	for _, sched := range schedules {
		window := sched.WorkingWindow(midnight)
		if !window.IsValid() {
			continue
		}

		bookings, err := uc.bookingRepo.ListConfirmedOverlapping(ctx, sched.StaffID, window.Start, window.End)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get bookings for staff=%d: %v", sched.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		blackouts, err := uc.blackoutRepo.ListOverlapping(ctx, &sched.StaffID, window.Start, window.End)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get blackouts for staff=%d: %v", sched.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get blackouts: %v", ErrInternal, err)
		}

		allSlots = append(allSlots, walkSchedule(sched, midnight, durationMs, busyIntervals(bookings, blackouts))...)
	}

	// 6. Прошедшие слоты отбрасываются; "сейчас" берём в момент вызова
	now := uc.timeProvider.Now().UnixMilli()
	slots := dedupeAndSort(filterFuture(allSlots, now))

	uc.logger.Info("GetAvailableSlots: generated %d slots from %d schedules", len(slots), len(schedules))

	return &Response{Slots: slots}, nil
}

func ptrVal(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
