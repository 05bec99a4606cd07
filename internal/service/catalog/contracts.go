package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// HallRepository интерфейс репозитория залов
type HallRepository interface {
	Create(ctx context.Context, h *domain.Hall) (*domain.Hall, error)
	Update(ctx context.Context, h *domain.Hall) (*domain.Hall, error)
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
	List(ctx context.Context) ([]*domain.Hall, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}

// VisitRepository нужен, чтобы узнать, есть ли визиты на услугу
type VisitRepository interface {
	Count(ctx context.Context, filter domain.VisitFilter) (int, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
