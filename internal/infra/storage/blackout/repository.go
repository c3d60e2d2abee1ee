package blackout

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glowline/salon-booking-service/internal/domain"
	"github.com/glowline/salon-booking-service/pkg/dbmetrics"
	"github.com/glowline/salon-booking-service/pkg/psqlbuilder"
)

var blackoutColumns = []string{
	"id",
	"staff_id",
	"start_ts",
	"end_ts",
	"reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с интервалами недоступности
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория blackout-интервалов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListOverlapping получает blackout-интервалы, пересекающие [startTs, endTs)
// Если staffID задан, возвращаются интервалы этого мастера ПЛЮС глобальные
// (staff_id IS NULL) - глобальный blackout действует на всех.
// Предикат пересечения тот же, что и у бронирований: start_ts < endTs AND end_ts > startTs
func (r *Repository) ListOverlapping(ctx context.Context, staffID *int64, startTs, endTs int64) ([]*domain.Blackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blackoutColumns...).
		From("blackouts").
		Where(squirrel.Lt{"start_ts": endTs}).
		Where(squirrel.Gt{"end_ts": startTs}).
		OrderBy("start_ts ASC")

	if staffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"staff_id": *staffID},
			squirrel.Eq{"staff_id": nil},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlackouts(rows)
}

// List получает все blackout-интервалы
func (r *Repository) List(ctx context.Context) ([]*domain.Blackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blackoutColumns...).
		From("blackouts").
		OrderBy("start_ts ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlackouts(rows)
}

// Create создает новый blackout-интервал
func (r *Repository) Create(ctx context.Context, b *domain.Blackout) (*domain.Blackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blackouts").
		Columns("staff_id", "start_ts", "end_ts", "reason").
		Values(b.StaffID, b.StartTs, b.EndTs, b.Reason).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return b, nil
}

// Delete удаляет blackout-интервал
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blackouts").
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
		return ErrBlackoutNotFound
	}

	return nil
}

func scanBlackouts(rows *sql.Rows) ([]*domain.Blackout, error) {
	blackouts := make([]*domain.Blackout, 0)

	for rows.Next() {
		var b domain.Blackout
		var staffID sql.NullInt64
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&staffID,
			&b.StartTs,
			&b.EndTs,
			&b.Reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlackouts - scan row: %v", ErrScanRow, err)
		}

		if staffID.Valid {
			id := staffID.Int64
			b.StaffID = &id
		}
		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		blackouts = append(blackouts, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlackouts - rows error: %v", ErrScanRow, err)
	}

	return blackouts, nil
}
