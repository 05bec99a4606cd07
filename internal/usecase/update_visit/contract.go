package update_visit

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/resolver"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Resolver определяет зал для пары (сотрудник, услуга)
type Resolver interface {
	Resolve(ctx context.Context, employeeID, serviceID int64) (*resolver.Resolution, error)
}

// CapacityGuard проверка занятости зала на окно записи
type CapacityGuard interface {
	Admit(ctx context.Context, hall *domain.Hall, date time.Time, start types.TimeString, durationMinutes int, excludeVisitID int64) error
}

// Sweeper переводит прошедшие визиты в completed
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) (int64, error)
}

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
	Update(ctx context.Context, visit *domain.Visit) (*domain.Visit, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
