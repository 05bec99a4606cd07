package capacity

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	LockDay(ctx context.Context, hallID int64, date time.Time) error
	List(ctx context.Context, filter domain.VisitFilter) ([]*domain.Visit, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
