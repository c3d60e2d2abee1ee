package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/glowline/salon-booking-service/internal/domain"
	"github.com/glowline/salon-booking-service/pkg/dbmetrics"
	"github.com/glowline/salon-booking-service/pkg/psqlbuilder"
	"github.com/glowline/salon-booking-service/pkg/types"
)

var scheduleColumns = []string{
	"id",
	"staff_id",
	"weekdays",
	"start_min",
	"end_min",
	"slot_interval_min",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расписаниями мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListForWeekday получает расписания, действующие в указанный день недели
// Если staffID задан, выборка сужается до расписаний этого мастера.
//
// Наборы дней недели хранятся как JSON-текст, поэтому строки фильтруются
// после чтения. Строка с некорректной кодировкой weekdays пропускается -
// одна испорченная запись не должна ломать выдачу слотов для всех мастеров
func (r *Repository) ListForWeekday(ctx context.Context, weekday time.Weekday, staffID *int64) ([]*domain.StaffSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("staff_schedules").
		OrderBy("staff_id ASC, id ASC")

	if staffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *staffID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.StaffSchedule, 0)
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListForWeekday - scan row: %v", ErrScanRow, err)
		}
		// nil Weekdays - строка с нечитаемой кодировкой, пропущена при декодировании
		if sched.Weekdays == nil || !sched.Weekdays.Contains(weekday) {
			continue
		}
		schedules = append(schedules, sched)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForWeekday - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// List получает расписания, опционально только для одного мастера
func (r *Repository) List(ctx context.Context, staffID *int64) ([]*domain.StaffSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("staff_schedules").
		OrderBy("staff_id ASC, id ASC")

	if staffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *staffID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.StaffSchedule, 0)
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, sched)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// Create создает новое расписание
func (r *Repository) Create(ctx context.Context, sched *domain.StaffSchedule) (*domain.StaffSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_schedules").
		Columns("staff_id", "weekdays", "start_min", "end_min", "slot_interval_min").
		Values(sched.StaffID, sched.Weekdays, sched.StartMin, sched.EndMin, sched.SlotIntervalMin).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&sched.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sched.CreatedAt = createdAt.Time
	sched.UpdatedAt = updatedAt.Time
	return sched, nil
}

// Delete удаляет расписание
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// scanSchedule сканирует строку расписания
// Некорректная кодировка weekdays не считается ошибкой: поле остаётся nil,
// решение о пропуске строки принимает вызывающая сторона
func scanSchedule(rows *sql.Rows) (*domain.StaffSchedule, error) {
	var sched domain.StaffSchedule
	var rawWeekdays string
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&sched.ID,
		&sched.StaffID,
		&rawWeekdays,
		&sched.StartMin,
		&sched.EndMin,
		&sched.SlotIntervalMin,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if weekdays, err := types.ParseWeekdays(rawWeekdays); err == nil {
		sched.Weekdays = weekdays
	}

	sched.CreatedAt = createdAt.Time
	sched.UpdatedAt = updatedAt.Time
	return &sched, nil
}
