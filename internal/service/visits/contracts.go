package visits

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
	List(ctx context.Context, filter domain.VisitFilter) ([]*domain.Visit, error)
	Delete(ctx context.Context, id int64) error
}

// EmployeeRepository нужен, чтобы найти сотрудника по пользователю
type EmployeeRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Employee, error)
}

// Sweeper переводит прошедшие визиты в completed
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
