package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий рабочих часов и выходных салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessHours получает все записи рабочих часов салона,
// упорядоченные по дню недели
func (r *Repository) GetBusinessHours(ctx context.Context, salonID int64) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"day_of_week",
		"open_time",
		"close_time",
		"is_closed",
		"created_at",
		"updated_at",
	).
		From("business_hours").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHours, 0)
	for rows.Next() {
		bh, err := scanBusinessHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBusinessHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, bh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetBusinessHoursForDay получает рабочие часы салона на день недели (0-6)
func (r *Repository) GetBusinessHoursForDay(ctx context.Context, salonID int64, dayOfWeek int) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"day_of_week",
		"open_time",
		"close_time",
		"is_closed",
		"created_at",
		"updated_at",
	).
		From("business_hours").
		Where(squirrel.Eq{"salon_id": salonID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHoursForDay - build select query: %v", ErrBuildQuery, err)
	}

	bh, err := scanBusinessHours(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBusinessHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHoursForDay - scan row: %v", ErrScanRow, err)
	}

	return bh, nil
}

// UpsertBusinessHours вставляет или обновляет запись рабочих часов
/// для (салон, день недели). Каждая строка обновляется независимо:
// массовое обновление расписания не является атомарным по дизайну.
func (r *Repository) UpsertBusinessHours(ctx context.Context, bh *domain.BusinessHours) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_hours").
		Columns(
			"salon_id",
			"day_of_week",
			"open_time",
			"close_time",
			"is_closed",
		).
		Values(
			bh.SalonID,
			bh.DayOfWeek,
			bh.OpenTime,
			bh.CloseTime,
			bh.IsClosed,
		).
		Suffix(`ON CONFLICT (salon_id, day_of_week) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			is_closed = EXCLUDED.is_closed,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertBusinessHours - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&bh.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertBusinessHours - execute upsert: %v", ErrExecQuery, err)
	}

	bh.CreatedAt = createdAt.Time
	bh.UpdatedAt = updatedAt.Time

	return bh, nil
}

// FindHoliday ищет выходной салона на конкретную дату.
// Возвращает ErrHolidayNotFound, если дата рабочая.
func (r *Repository) FindHoliday(ctx context.Context, salonID int64, date time.Time) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"holiday_date",
		"description",
		"created_at",
	).
		From("holidays").
		Where(squirrel.Eq{"salon_id": salonID, "holiday_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindHoliday - build select query: %v", ErrBuildQuery, err)
	}

	h, err := scanHoliday(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindHoliday - scan row: %v", ErrScanRow, err)
	}

	return h, nil
}

// GetHolidayByID получает выходной по ID
func (r *Repository) GetHolidayByID(ctx context.Context, id int64) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"holiday_date",
		"description",
		"created_at",
	).
		From("holidays").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidayByID - build select query: %v", ErrBuildQuery, err)
	}

	h, err := scanHoliday(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidayByID - scan row: %v", ErrScanRow, err)
	}

	return h, nil
}

// ListHolidays получает все выходные салона по возрастанию даты
func (r *Repository) ListHolidays(ctx context.Context, salonID int64) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"holiday_date",
		"description",
		"created_at",
	).
		From("holidays").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("holiday_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListHolidays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHolidays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListHolidays - scan row: %v", ErrScanRow, err)
		}
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}

// CreateHoliday добавляет выходной. Уникальность (салон, дата) обеспечивает
// индекс; дубликат транслируется в ErrHolidayExists.
func (r *Repository) CreateHoliday(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holidays").
		Columns("salon_id", "holiday_date", "description").
		Values(h.SalonID, h.Date, h.Description).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateHoliday - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrHolidayExists
		}
		return nil, fmt.Errorf("%w: CreateHoliday - execute insert: %v", ErrExecQuery, err)
	}

	h.CreatedAt = createdAt.Time

	return h, nil
}

// DeleteHoliday удаляет выходной по ID
func (r *Repository) DeleteHoliday(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("holidays").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHolidayNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBusinessHours(row rowScanner) (*domain.BusinessHours, error) {
	var bh domain.BusinessHours
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&bh.ID,
		&bh.SalonID,
		&bh.DayOfWeek,
		&bh.OpenTime,
		&bh.CloseTime,
		&bh.IsClosed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	bh.CreatedAt = createdAt.Time
	bh.UpdatedAt = updatedAt.Time

	return &bh, nil
}

func scanHoliday(row rowScanner) (*domain.Holiday, error) {
	var h domain.Holiday
	var date time.Time
	var createdAt sql.NullTime

	err := row.Scan(
		&h.ID,
		&h.SalonID,
		&date,
		&h.Description,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	h.Date = date
	h.CreatedAt = createdAt.Time

	return &h, nil
}
