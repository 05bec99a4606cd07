package hall

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"name",
	"description",
	"location",
	"capacity",
	"open_time",
	"close_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий залов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает зал
func (r *Repository) Create(ctx context.Context, h *domain.Hall) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("halls").
		Columns("name", "description", "location", "capacity", "open_time", "close_time").
		Values(h.Name, h.Description, h.Location, h.Capacity, h.OpenTime, h.CloseTime).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return h, nil
}

// Update обновляет все редактируемые поля зала
func (r *Repository) Update(ctx context.Context, h *domain.Hall) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("halls").
		Set("name", h.Name).
		Set("description", h.Description).
		Set("location", h.Location).
		Set("capacity", h.Capacity).
		Set("open_time", h.OpenTime).
		Set("close_time", h.CloseTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": h.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return h, nil
}

// GetByID получает зал по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("halls").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	h, err := scanHall(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hall: %v", ErrScanRow, err)
	}

	return h, nil
}

// List возвращает все залы по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("halls").
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	halls := make([]*domain.Hall, 0)
	for rows.Next() {
		h, err := scanHall(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		halls = append(halls, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return halls, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanHall(row scanner) (*domain.Hall, error) {
	var h domain.Hall
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Description,
		&h.Location,
		&h.Capacity,
		&h.OpenTime,
		&h.CloseTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return &h, nil
}
