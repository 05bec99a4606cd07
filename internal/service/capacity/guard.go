package capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	visitRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/visit"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Guard проверяет занятость зала в момент записи
//
// Визиты с тем же временем начала делят слот, пока их меньше вместимости зала
// Окно, пересекающееся с визитом, начатым в другое время, не допускается
// Admit вызывается внутри той же транзакции, что и последующая запись
type Guard struct {
	visits VisitRepository
	logger Logger
}

func NewGuard(visits VisitRepository, logger Logger) *Guard {
	return &Guard{
		visits: visits,
		logger: logger,
	}
}

// Admit возвращает nil, если окно [start, start+durationMinutes) можно занять
// excludeVisitID исключает редактируемый визит из проверки (0 - ничего не исключать)
func (g *Guard) Admit(ctx context.Context, hall *domain.Hall, date time.Time, start types.TimeString, durationMinutes int, excludeVisitID int64) error {
	day := date.Format(domain.DateFormat)

	if err := g.visits.LockDay(ctx, hall.ID, date); err != nil {
		if errors.Is(err, visitRepo.ErrSlotConflict) {
			return fmt.Errorf("%w: lock day: %v", ErrOverbooked, err)
		}
		g.logger.Error("Admit: failed to lock hall=%d date=%s: %v", hall.ID, day, err)
		return fmt.Errorf("%w: lock day: %v", ErrInternal, err)
	}

	from, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInternal, err)
	}
	to := from + durationMinutes

	filter := domain.VisitFilter{
		HallID: ptr.Ptr(hall.ID),
		Date:   ptr.Ptr(date),
	}
	if excludeVisitID > 0 {
		filter.ExcludeID = ptr.Ptr(excludeVisitID)
	}

	visits, err := g.visits.List(ctx, filter)
	if err != nil {
		if errors.Is(err, visitRepo.ErrSlotConflict) {
			return fmt.Errorf("%w: list visits: %v", ErrOverbooked, err)
		}
		g.logger.Error("Admit: failed to list visits hall=%d date=%s: %v", hall.ID, day, err)
		return fmt.Errorf("%w: list visits: %v", ErrInternal, err)
	}

	taken := 0
	for _, v := range visits {
		if v.StartTime.Equal(start) {
			taken++
			continue
		}
		vFrom, vTo, err := v.Interval(durationMinutes)
		if err != nil {
			g.logger.Error("Admit: visit %d has invalid start time %q: %v", v.ID, v.StartTime, err)
			return fmt.Errorf("%w: visit interval: %v", ErrInternal, err)
		}
		if vFrom < to && from < vTo {
			g.logger.Warn("Admit: hall=%d date=%s time=%s overlaps visit %d at %s",
				hall.ID, day, start, v.ID, v.StartTime)
			return ErrOverbooked
		}
	}

	if taken >= hall.Capacity {
		g.logger.Warn("Admit: hall=%d date=%s time=%s is full, %d/%d taken",
			hall.ID, day, start, taken, hall.Capacity)
		return ErrOverbooked
	}

	g.logger.Info("Admit: hall=%d date=%s time=%s admitted, %d/%d taken",
		hall.ID, day, start, taken, hall.Capacity)
	return nil
}
