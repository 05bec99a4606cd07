package employees

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников и их связей
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	ListLinks(ctx context.Context, employeeID int64, serviceID *int64) ([]*domain.ServiceHall, error)
	CreateLink(ctx context.Context, link *domain.ServiceHall) (bool, error)
}

// HallRepository проверка существования залов
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

// ServiceRepository проверка существования услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
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
