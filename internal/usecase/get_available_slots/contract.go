package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/resolver"
)

// Resolver определяет зал для пары (сотрудник, услуга)
type Resolver interface {
	Resolve(ctx context.Context, employeeID, serviceID int64) (*resolver.Resolution, error)
}

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	List(ctx context.Context, filter domain.VisitFilter) ([]*domain.Visit, error)
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
