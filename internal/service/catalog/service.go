package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glowline/salon-booking-service/internal/domain"
	blackoutRepo "github.com/glowline/salon-booking-service/internal/infra/storage/blackout"
	scheduleRepo "github.com/glowline/salon-booking-service/internal/infra/storage/schedule"
	serviceRepo "github.com/glowline/salon-booking-service/internal/infra/storage/service"
	staffRepo "github.com/glowline/salon-booking-service/internal/infra/storage/staff"
	"github.com/glowline/salon-booking-service/internal/service/catalog/models"
)

// Service сервис для управления каталогом: услуги, мастера,
// расписания и интервалы недоступности
type Service struct {
	serviceRepo  ServiceRepository
	staffRepo    StaffRepository
	scheduleRepo ScheduleRepository
	blackoutRepo BlackoutRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	scheduleRepo ScheduleRepository,
	blackoutRepo BlackoutRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		staffRepo:    staffRepo,
		scheduleRepo: scheduleRepo,
		blackoutRepo: blackoutRepo,
		logger:       logger,
	}
}

// ListServices получает список всех услуг
func (s *Service) ListServices(ctx context.Context) ([]*models.ServiceResponse, error) {
	s.logger.Info("ListServices: fetching services")

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ServiceResponse, 0, len(services))
	for _, svc := range services {
		result = append(result, models.FromDomainService(svc))
	}

	s.logger.Info("ListServices: successfully fetched %d services", len(result))
	return result, nil
}

// CreateService создает новую услугу
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: creating service name=%q", req.Name)

	if err := validateServiceFields(req.Name, req.DurationMin, req.PriceCents); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		Name:        strings.TrimSpace(req.Name),
		DurationMin: req.DurationMin,
		PriceCents:  req.PriceCents,
		Active:      active,
	})
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// UpdateService частично обновляет услугу
//
// Деактивация услуги (active=false) не трогает существующие
// бронирования - они остаются подтверждёнными
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: updating service id=%d", id)

	if req.Name == nil && req.DurationMin == nil && req.PriceCents == nil && req.Active == nil {
		return nil, fmt.Errorf("%w: UpdateService - no fields to update", ErrInvalidInput)
	}

	updates := domain.ServiceUpdates{
		DurationMin: req.DurationMin,
		PriceCents:  req.PriceCents,
		Active:      req.Active,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: UpdateService - name must not be empty", ErrInvalidInput)
		}
		updates.Name = &name
	}
	if req.DurationMin != nil {
		if *req.DurationMin < domain.MinServiceDurationMin || *req.DurationMin > domain.MaxServiceDurationMin {
			return nil, fmt.Errorf("%w: UpdateService - durationMin must be in [%d, %d]",
				ErrInvalidInput, domain.MinServiceDurationMin, domain.MaxServiceDurationMin)
		}
	}
	if req.PriceCents != nil && *req.PriceCents < 0 {
		return nil, fmt.Errorf("%w: UpdateService - priceCents must not be negative", ErrInvalidInput)
	}

	updated, err := s.serviceRepo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}

// ListStaff получает список всех мастеров
func (s *Service) ListStaff(ctx context.Context) ([]*models.StaffResponse, error) {
	s.logger.Info("ListStaff: fetching staff members")

	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.StaffResponse, 0, len(staff))
	for _, st := range staff {
		result = append(result, models.FromDomainStaff(st))
	}

	s.logger.Info("ListStaff: successfully fetched %d staff members", len(result))
	return result, nil
}

// CreateStaff создает нового мастера
func (s *Service) CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("CreateStaff: creating staff name=%q", req.Name)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: CreateStaff - name must not be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: CreateStaff - email must not be empty", ErrInvalidInput)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.staffRepo.Create(ctx, &domain.Staff{
		Name:   name,
		Email:  strings.TrimSpace(req.Email),
		Phone:  req.Phone,
		Role:   req.Role,
		Active: active,
	})
	if err != nil {
		s.logger.Error("CreateStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStaff: successfully created staff id=%d", created.ID)
	return models.FromDomainStaff(created), nil
}

// ListSchedules получает расписания, опционально отфильтрованные по мастеру
func (s *Service) ListSchedules(ctx context.Context, staffID *int64) ([]*models.ScheduleResponse, error) {
	s.logger.Info("ListSchedules: fetching schedules, staff=%v", staffID)

	schedules, err := s.scheduleRepo.List(ctx, staffID)
	if err != nil {
		s.logger.Error("ListSchedules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSchedules - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		result = append(result, models.FromDomainSchedule(sched))
	}

	s.logger.Info("ListSchedules: successfully fetched %d schedules", len(result))
	return result, nil
}

// CreateSchedule создает новое расписание мастера
//
// Мастер должен существовать. Пересечение окон разных расписаний одного
// мастера допустимо - генератор слотов дедуплицирует результат
func (s *Service) CreateSchedule(ctx context.Context, req *models.CreateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("CreateSchedule: creating schedule for staff id=%d", req.StaffID)

	if err := validateScheduleFields(req); err != nil {
		s.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("CreateSchedule: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("CreateSchedule: repository error for staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: CreateSchedule - repository error: %v", ErrInternal, err)
	}

	created, err := s.scheduleRepo.Create(ctx, &domain.StaffSchedule{
		StaffID:         req.StaffID,
		Weekdays:        req.Weekdays,
		StartMin:        req.StartMin,
		EndMin:          req.EndMin,
		SlotIntervalMin: req.SlotIntervalMin,
	})
	if err != nil {
		s.logger.Error("CreateSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSchedule: successfully created schedule id=%d", created.ID)
	return models.FromDomainSchedule(created), nil
}

// DeleteSchedule удаляет расписание
func (s *Service) DeleteSchedule(ctx context.Context, id int64) error {
	s.logger.Info("DeleteSchedule: deleting schedule id=%d", id)

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("DeleteSchedule: schedule id=%d not found", id)
			return ErrScheduleNotFound
		}
		s.logger.Error("DeleteSchedule: repository error for schedule id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSchedule: successfully deleted schedule id=%d", id)
	return nil
}

// ListBlackouts получает список всех интервалов недоступности
func (s *Service) ListBlackouts(ctx context.Context) ([]*models.BlackoutResponse, error) {
	s.logger.Info("ListBlackouts: fetching blackouts")

	blackouts, err := s.blackoutRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBlackouts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlackouts - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.BlackoutResponse, 0, len(blackouts))
	for _, b := range blackouts {
		result = append(result, models.FromDomainBlackout(b))
	}

	s.logger.Info("ListBlackouts: successfully fetched %d blackouts", len(result))
	return result, nil
}

// CreateBlackout создает интервал недоступности
//
// staffId == nil означает глобальный blackout, действующий на всех
// мастеров. Уже существующие бронирования внутри интервала не отменяются
func (s *Service) CreateBlackout(ctx context.Context, req *models.CreateBlackoutRequest) (*models.BlackoutResponse, error) {
	s.logger.Info("CreateBlackout: creating blackout, staff=%v", req.StaffID)

	if req.StartTs >= req.EndTs {
		return nil, fmt.Errorf("%w: CreateBlackout - startTs must be less than endTs", ErrInvalidInput)
	}

	if req.StaffID != nil {
		if _, err := s.staffRepo.GetByID(ctx, *req.StaffID); err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				s.logger.Warn("CreateBlackout: staff id=%d not found", *req.StaffID)
				return nil, ErrStaffNotFound
			}
			s.logger.Error("CreateBlackout: repository error for staff id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: CreateBlackout - repository error: %v", ErrInternal, err)
		}
	}

	created, err := s.blackoutRepo.Create(ctx, &domain.Blackout{
		StaffID: req.StaffID,
		StartTs: req.StartTs,
		EndTs:   req.EndTs,
		Reason:  req.Reason,
	})
	if err != nil {
		s.logger.Error("CreateBlackout: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlackout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlackout: successfully created blackout id=%d", created.ID)
	return models.FromDomainBlackout(created), nil
}

// DeleteBlackout удаляет интервал недоступности
func (s *Service) DeleteBlackout(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlackout: deleting blackout id=%d", id)

	if err := s.blackoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blackoutRepo.ErrBlackoutNotFound) {
			s.logger.Warn("DeleteBlackout: blackout id=%d not found", id)
			return ErrBlackoutNotFound
		}
		s.logger.Error("DeleteBlackout: repository error for blackout id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlackout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlackout: successfully deleted blackout id=%d", id)
	return nil
}

func validateServiceFields(name string, durationMin int, priceCents int64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if durationMin < domain.MinServiceDurationMin || durationMin > domain.MaxServiceDurationMin {
		return fmt.Errorf("%w: durationMin must be in [%d, %d]",
			ErrInvalidInput, domain.MinServiceDurationMin, domain.MaxServiceDurationMin)
	}
	if priceCents < 0 {
		return fmt.Errorf("%w: priceCents must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateScheduleFields(req *models.CreateScheduleRequest) error {
	if err := req.Weekdays.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Weekdays.IsEmpty() {
		return fmt.Errorf("%w: weekdays must not be empty", ErrInvalidInput)
	}
	if req.StartMin < 0 || req.EndMin > domain.MinutesPerDay || req.StartMin >= req.EndMin {
		return fmt.Errorf("%w: working window must satisfy 0 <= startMin < endMin <= %d",
			ErrInvalidInput, domain.MinutesPerDay)
	}
	if req.SlotIntervalMin < domain.MinSlotIntervalMin {
		return fmt.Errorf("%w: slotIntervalMin must be at least %d",
			ErrInvalidInput, domain.MinSlotIntervalMin)
	}
	return nil
}
