package transitioner

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	CompletePast(ctx context.Context, today time.Time, nowTime types.TimeString) (int64, error)
}

// Metrics счётчик завершённых визитов
type Metrics interface {
	AddVisitsCompleted(n int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
