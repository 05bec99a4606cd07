package visit

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
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	pqSerializationFailure = "40001"
	pqUniqueViolation      = "23505"
)

var columns = []string{
	"id",
	"client_id",
	"employee_id",
	"service_id",
	"hall_id",
	"visit_date",
	"start_time",
	"duration_minutes",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий визитов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория визитов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockDay берёт транзакционную advisory-блокировку на (зал, дата)
// Проверка пересечений, пересчёт занятости и запись выполняются под ней,
// поэтому параллельные записи в один зал на один день идут строго по очереди
// Ожидать блокировку нужно в READ COMMITTED: следующий запрос после неё
// видит строки, зафиксированные предыдущим владельцем
func (r *Repository) LockDay(ctx context.Context, hallID int64, date time.Time) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	key := fmt.Sprintf("visit-day:%d:%s", hallID, date.Format(domain.DateFormat))
	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return wrapExecErr("LockDay - acquire lock", err)
	}

	return nil
}

// Create создает визит
func (r *Repository) Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visits").
		Columns(
			"client_id",
			"employee_id",
			"service_id",
			"hall_id",
			"visit_date",
			"start_time",
			"duration_minutes",
			"status",
		).
		Values(
			v.ClientID,
			v.EmployeeID,
			v.ServiceID,
			v.HallID,
			v.VisitDate,
			v.StartTime,
			v.DurationMinutes,
			v.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&v.ID, &createdAt, &updatedAt); err != nil {
		return nil, wrapExecErr("Create - execute insert", err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// Update перезаписывает параметры запланированной записи (сотрудник, услуга, зал, дата, время)
// Статус не пишется: если визит уже завершён, возвращается ErrVisitCompleted
func (r *Repository) Update(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visits").
		Set("employee_id", v.EmployeeID).
		Set("service_id", v.ServiceID).
		Set("hall_id", v.HallID).
		Set("visit_date", v.VisitDate).
		Set("start_time", v.StartTime).
		Set("duration_minutes", v.DurationMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": v.ID, "status": domain.StatusPlanned}).
		Suffix("RETURNING status, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.Status, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, v.ID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrVisitCompleted
	}
	if err != nil {
		return nil, wrapExecErr("Update - execute update", err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает визит по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("visits").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	v, err := scanVisit(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan visit: %v", ErrScanRow, err)
	}

	return v, nil
}

// List возвращает визиты по фильтру
// Выборка на конкретную дату сортируется по времени (ASC), остальные - сначала новые
func (r *Repository) List(ctx context.Context, filter domain.VisitFilter) ([]*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(columns...).From("visits"), filter)

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC", "id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("visit_date DESC", "start_time DESC", "id DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecErr("List - execute query", err)
	}
	defer rows.Close()

	visits := make([]*domain.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return visits, nil
}

// Count считает визиты по фильтру
func (r *Repository) Count(ctx context.Context, filter domain.VisitFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("visits"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapExecErr("Count - execute query", err)
	}

	return count, nil
}

// Delete удаляет визит
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("visits").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecErr("Delete - execute delete", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVisitNotFound
	}

	return nil
}

// CompletePast переводит в completed все запланированные визиты,
// чьи (дата, время) раньше (today, nowTime). Возвращает количество изменённых строк
func (r *Repository) CompletePast(ctx context.Context, today time.Time, nowTime types.TimeString) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visits").
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusPlanned}).
		Where(squirrel.Or{
			squirrel.Lt{"visit_date": today},
			squirrel.And{
				squirrel.Eq{"visit_date": today},
				squirrel.Lt{"start_time": nowTime},
			},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrapExecErr("CompletePast - execute update", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

func applyFilter(b squirrel.SelectBuilder, filter domain.VisitFilter) squirrel.SelectBuilder {
	if filter.HallID != nil {
		b = b.Where(squirrel.Eq{"hall_id": *filter.HallID})
	}
	if filter.EmployeeID != nil {
		b = b.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.ClientID != nil {
		b = b.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.ServiceID != nil {
		b = b.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}
	if filter.Date != nil {
		b = b.Where(squirrel.Eq{"visit_date": domain.DateOf(*filter.Date)})
	}
	if filter.StartTime != nil {
		b = b.Where(squirrel.Eq{"start_time": *filter.StartTime})
	}
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.ExcludeID != nil {
		b = b.Where(squirrel.NotEq{"id": *filter.ExcludeID})
	}
	return b
}

// wrapExecErr отделяет конфликты параллельных записей от прочих ошибок
func wrapExecErr(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqSerializationFailure, pqUniqueViolation:
			return fmt.Errorf("%w: %s: %v", ErrSlotConflict, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanVisit(row scanner) (*domain.Visit, error) {
	var v domain.Visit
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(
		&v.ID,
		&v.ClientID,
		&v.EmployeeID,
		&v.ServiceID,
		&v.HallID,
		&v.VisitDate,
		&v.StartTime,
		&v.DurationMinutes,
		&v.Status,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	v.VisitDate = domain.DateOf(v.VisitDate)
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}
