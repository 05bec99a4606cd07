package transitioner

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Transitioner переводит прошедшие визиты в статус completed
//
// Отдельного планировщика нет: Sweep вызывается перед чтением списков и перед изменением визитов
// Повторный вызов с тем же now ничего не меняет
type Transitioner struct {
	visits  VisitRepository
	metrics Metrics
	logger  Logger
}

func NewTransitioner(visits VisitRepository, metrics Metrics, logger Logger) *Transitioner {
	return &Transitioner{
		visits:  visits,
		metrics: metrics,
		logger:  logger,
	}
}

// Sweep помечает completed все planned визиты, у которых (дата, время) раньше now
func (t *Transitioner) Sweep(ctx context.Context, now time.Time) (int64, error) {
	affected, err := t.visits.CompletePast(ctx, domain.DateOf(now), types.NewTimeString(now))
	if err != nil {
		t.logger.Error("Sweep: failed to complete past visits: %v", err)
		return 0, fmt.Errorf("%w: complete past: %v", ErrInternal, err)
	}

	if affected == 0 {
		t.logger.Debug("Sweep: nothing to complete before %s", now.Format(time.RFC3339))
		return 0, nil
	}

	if t.metrics != nil {
		t.metrics.AddVisitsCompleted(affected)
	}
	t.logger.Info("Sweep: %d visits marked as completed", affected)

	return affected, nil
}
