package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

var columns = []string{
	"e.id",
	"e.user_id",
	"e.full_name",
	"e.phone_number",
	"e.position",
	"ARRAY(SELECT eh.hall_id FROM employee_halls eh WHERE eh.employee_id = e.id ORDER BY eh.hall_id) AS hall_ids",
	"ARRAY(SELECT es.service_id FROM employee_services es WHERE es.employee_id = e.id ORDER BY es.service_id) AS service_ids",
	"e.created_at",
	"e.updated_at",
}

// Repository репозиторий сотрудников, их назначений и связей услуга-зал
//
// Назначения (employee_halls, employee_services) перезаписываются при каждом сохранении,
// таблица service_halls только пополняется
// Create и Update выполняют несколько запросов, вызывающий код оборачивает их в транзакцию
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает сотрудника вместе с назначениями
func (r *Repository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("employees").
		Columns("user_id", "full_name", "phone_number", "position").
		Values(e.UserID, e.FullName, e.PhoneNumber, e.Position).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&e.ID, &createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyEmployee
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	if err := r.replaceAssignments(ctx, executor, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Update обновляет сотрудника и перезаписывает назначения
func (r *Repository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("employees").
		Set("user_id", e.UserID).
		Set("full_name", e.FullName).
		Set("phone_number", e.PhoneNumber).
		Set("position", e.Position).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyEmployee
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	if err := r.replaceAssignments(ctx, executor, e); err != nil {
		return nil, err
	}

	return e, nil
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"e.id": id})
}

// GetByUserID получает сотрудника по ID пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Employee, error) {
	return r.getOne(ctx, "GetByUserID", squirrel.Eq{"e.user_id": userID})
}

// List возвращает всех сотрудников
func (r *Repository) List(ctx context.Context) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("employees e").
		OrderBy("e.full_name ASC", "e.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return employees, nil
}

// ListLinks возвращает связи услуга-зал сотрудника, упорядоченные по hall_id
// Если serviceID задан, только для этой услуги
func (r *Repository) ListLinks(ctx context.Context, employeeID int64, serviceID *int64) ([]*domain.ServiceHall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "employee_id", "service_id", "hall_id", "created_at").
		From("service_halls").
		Where(squirrel.Eq{"employee_id": employeeID})

	if serviceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_id": *serviceID})
	}

	query, args, err := selectBuilder.OrderBy("hall_id ASC", "service_id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLinks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLinks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	links := make([]*domain.ServiceHall, 0)
	for rows.Next() {
		var link domain.ServiceHall
		var createdAt sql.NullTime
		if err := rows.Scan(&link.ID, &link.EmployeeID, &link.ServiceID, &link.HallID, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListLinks - scan row: %v", ErrScanRow, err)
		}
		link.CreatedAt = createdAt.Time
		links = append(links, &link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLinks - rows error: %v", ErrScanRow, err)
	}

	return links, nil
}

// CreateLink добавляет связь, если её ещё нет
// Возвращает false, если связь уже существовала
func (r *Repository) CreateLink(ctx context.Context, link *domain.ServiceHall) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_halls").
		Columns("employee_id", "service_id", "hall_id").
		Values(link.EmployeeID, link.ServiceID, link.HallID).
		Suffix("ON CONFLICT (employee_id, service_id, hall_id) DO NOTHING RETURNING id, created_at").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CreateLink - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&link.ID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: CreateLink - execute insert: %v", ErrExecQuery, err)
	}

	link.CreatedAt = createdAt.Time
	return true, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("employees e").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	e, err := scanEmployee(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan employee: %v", ErrScanRow, op, err)
	}

	return e, nil
}

// replaceAssignments перезаписывает залы и услуги сотрудника
func (r *Repository) replaceAssignments(ctx context.Context, executor DBExecutor, e *domain.Employee) error {
	tables := []struct {
		table  string
		column string
		ids    []int64
	}{
		{table: "employee_halls", column: "hall_id", ids: e.HallIDs},
		{table: "employee_services", column: "service_id", ids: e.ServiceIDs},
	}

	for _, t := range tables {
		query, args, err := psqlbuilder.Delete(t.table).
			Where(squirrel.Eq{"employee_id": e.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: replaceAssignments - build delete %s: %v", ErrBuildQuery, t.table, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: replaceAssignments - delete %s: %v", ErrExecQuery, t.table, err)
		}

		if len(t.ids) == 0 {
			continue
		}

		insert := psqlbuilder.Insert(t.table).
			Columns("employee_id", t.column).
			Suffix("ON CONFLICT DO NOTHING")
		for _, id := range t.ids {
			insert = insert.Values(e.ID, id)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: replaceAssignments - build insert %s: %v", ErrBuildQuery, t.table, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: replaceAssignments - insert %s: %v", ErrExecQuery, t.table, err)
		}
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row scanner) (*domain.Employee, error) {
	var e domain.Employee
	var createdAt, updatedAt sql.NullTime
	var hallIDs, serviceIDs pq.Int64Array

	if err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.FullName,
		&e.PhoneNumber,
		&e.Position,
		&hallIDs,
		&serviceIDs,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	e.HallIDs = []int64(hallIDs)
	e.ServiceIDs = []int64(serviceIDs)
	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return &e, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
