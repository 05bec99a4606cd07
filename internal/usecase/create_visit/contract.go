package create_visit

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

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	Create(ctx context.Context, visit *domain.Visit) (*domain.Visit, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные счётчики записи
type Metrics interface {
	IncVisitsCreated()
	IncVisitsRejected(reason string)
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
