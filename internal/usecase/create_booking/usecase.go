package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowline/salon-booking-service/internal/domain"
	bookingRepo "github.com/glowline/salon-booking-service/internal/infra/storage/booking"
	serviceRepo "github.com/glowline/salon-booking-service/internal/infra/storage/service"
	staffRepo "github.com/glowline/salon-booking-service/internal/infra/storage/staff"
)

// UseCase use case для создания бронирования
type UseCase struct {
	serviceRepo ServiceRepository
	staffRepo   StaffRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil, если сбор метрик выключен
func NewUseCase(
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

func (uc *UseCase) recordCreated(assignment string) {
	if uc.metrics != nil {
		uc.metrics.RecordBookingCreated(assignment)
	}
}

func (uc *UseCase) recordConflict(reason string) {
	if uc.metrics != nil {
		uc.metrics.RecordBookingConflict(reason)
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка пересечений и вставка - логически одна read-modify-write операция.
// Выполняется в SERIALIZABLE транзакции с блокировкой строк мастера
// (FOR UPDATE в репозитории), поэтому два конкурирующих запроса на один
// слот одного мастера сериализуются: второй получит ErrSlotNotAvailable.
// Коммиты на разных мастеров друг с другом не конкурируют - глобальной
// блокировки нет. Exclusion constraint в схеме БД страхует инвариант
// структурно даже вне транзакционного пути.
//
// Любая ошибка до вставки оставляет хранилище без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, staff=%v, startTs=%d",
		req.ServiceID, req.StaffID, req.StartTs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу и вычисляем интервал бронирования
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateService(svc); err != nil {
		uc.logger.Warn("CreateBooking: service id=%d validation failed: %v", req.ServiceID, err)
		return nil, err
	}

	startTs := req.StartTs
	endTs := startTs + svc.DurationMillis()

	var result *domain.Booking

	// 3. Проверка пересечений и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Разрешаем мастера: указанный клиентом или первый свободный
		staffID, err := uc.resolveStaff(txCtx, req.StaffID, startTs, endTs)
		if err != nil {
			return err
		}

		// 3.2. Создаем бронирование со статусом confirmed
		booking := &domain.Booking{
			ServiceID:       req.ServiceID,
			StaffID:         staffID,
			StartTs:         startTs,
			EndTs:           endTs,
			CustomerName:    req.CustomerName,
			CustomerContact: req.CustomerContact,
			Status:          domain.StatusConfirmed,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурирующая вставка успела первой и сработал exclusion constraint
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot taken by concurrent commit, staff=%d, startTs=%d", staffID, startTs)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable):
			uc.recordConflict("slot_taken")
		case errors.Is(err, ErrNoAvailableStaff):
			uc.recordConflict("no_staff")
		}
		return nil, err
	}

	assignment := "auto"
	if req.StaffID != nil {
		assignment = "pinned"
	}
	uc.recordCreated(assignment)

	uc.logger.Info("CreateBooking: successfully created booking id=%d, staff=%d, [%d, %d)",
		result.ID, result.StaffID, result.StartTs, result.EndTs)

	return &Response{
		ID:              result.ID,
		ServiceID:       result.ServiceID,
		StaffID:         result.StaffID,
		StartTs:         result.StartTs,
		EndTs:           result.EndTs,
		Status:          string(result.Status),
		CustomerName:    result.CustomerName,
		CustomerContact: result.CustomerContact,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// resolveStaff определяет мастера для бронирования
//
// Если мастер указан клиентом - проверяем его существование и отсутствие
// пересечений; занятый слот означает ErrSlotNotAvailable.
//
// Если мастер не указан - перебираем активных мастеров строго по
// возрастанию ID и назначаем первого без пересечений. Порядок перебора -
// наблюдаемый контракт: именно он определяет, кому достанется
// неоднозначное бронирование. Если заняты все - ErrNoAvailableStaff
func (uc *UseCase) resolveStaff(ctx context.Context, pinned *int64, startTs, endTs int64) (int64, error) {
	if pinned != nil {
		if _, err := uc.staffRepo.GetByID(ctx, *pinned); err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				uc.logger.Warn("CreateBooking: staff id=%d not found", *pinned)
				return 0, ErrStaffNotFound
			}
			uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", *pinned, err)
			return 0, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}

		free, err := uc.staffIsFree(ctx, *pinned, startTs, endTs)
		if err != nil {
			return 0, err
		}
		if !free {
			uc.logger.Warn("CreateBooking: slot not available for staff=%d, startTs=%d", *pinned, startTs)
			return 0, ErrSlotNotAvailable
		}
		return *pinned, nil
	}

	staffList, err := uc.staffRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list active staff: %v", err)
		return 0, fmt.Errorf("%w: failed to list active staff: %v", ErrInternal, err)
	}

	for _, st := range staffList {
		free, err := uc.staffIsFree(ctx, st.ID, startTs, endTs)
		if err != nil {
			return 0, err
		}
		if free {
			uc.logger.Info("CreateBooking: auto-assigned staff=%d for startTs=%d", st.ID, startTs)
			return st.ID, nil
		}
	}

	uc.logger.Warn("CreateBooking: no available staff for startTs=%d", startTs)
	return 0, ErrNoAvailableStaff
}

// staffIsFree проверяет отсутствие confirmed-бронирований мастера,
// пересекающих [startTs, endTs). Предикат полуоткрытый: бронирование,
// заканчивающееся ровно в startTs, конфликтом не является
func (uc *UseCase) staffIsFree(ctx context.Context, staffID int64, startTs, endTs int64) (bool, error) {
	overlapping, err := uc.bookingRepo.ListConfirmedOverlapping(ctx, staffID, startTs, endTs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check overlaps for staff=%d: %v", staffID, err)
		return false, fmt.Errorf("%w: failed to check overlapping bookings: %v", ErrInternal, err)
	}
	return len(overlapping) == 0, nil
}
