package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glowline/salon-booking-service/internal/domain"
	"github.com/glowline/salon-booking-service/pkg/dbmetrics"
	"github.com/glowline/salon-booking-service/pkg/psqlbuilder"
)

var staffColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"role",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с мастерами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	st, err := scanStaffRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %v", ErrScanRow, err)
	}

	return st, nil
}

// ListActive получает список активных мастеров по возрастанию ID
//
// Порядок ASC по id - наблюдаемый контракт: auto-assignment при создании
// бронирования перебирает мастеров именно в этом порядке и отдаёт слот
// первому свободному
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanStaffRows(rows)
}

// List получает всех мастеров по возрастанию ID
func (r *Repository) List(ctx context.Context) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanStaffRows(rows)
}

// Create создает нового мастера
func (r *Repository) Create(ctx context.Context, st *domain.Staff) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff").
		Columns("name", "email", "phone", "role", "active").
		Values(st.Name, st.Email, st.Phone, st.Role, st.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&st.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	st.CreatedAt = createdAt.Time
	st.UpdatedAt = updatedAt.Time
	return st, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStaffRow(row rowScanner) (*domain.Staff, error) {
	var st domain.Staff
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&st.ID,
		&st.Name,
		&st.Email,
		&st.Phone,
		&st.Role,
		&st.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	st.CreatedAt = createdAt.Time
	st.UpdatedAt = updatedAt.Time
	return &st, nil
}

func scanStaffRows(rows *sql.Rows) ([]*domain.Staff, error) {
	staff := make([]*domain.Staff, 0)

	for rows.Next() {
		st, err := scanStaffRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanStaffRows - scan row: %v", ErrScanRow, err)
		}
		staff = append(staff, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanStaffRows - rows error: %v", ErrScanRow, err)
	}

	return staff, nil
}
