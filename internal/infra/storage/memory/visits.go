package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	visitRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/visit"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// VisitRepository визиты в памяти
type VisitRepository struct {
	s *Store
}

// LockDay в памяти все транзакции и так идут по одной
func (r *VisitRepository) LockDay(ctx context.Context, _ int64, _ time.Time) error {
	if ctx.Value(txKey{}) == nil {
		return visitRepo.ErrNotInTransaction
	}
	return nil
}

func (r *VisitRepository) Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	defer r.s.writeLock(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v.ID = r.s.id()
	v.VisitDate = domain.DateOf(v.VisitDate)
	v.CreatedAt = r.s.now()
	v.UpdatedAt = v.CreatedAt
	r.s.data.visits[v.ID] = *v

	return v, nil
}

// Update меняет только запланированный визит, статус остаётся тем, что хранится
func (r *VisitRepository) Update(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	defer r.s.writeLock(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.data.visits[v.ID]
	if !ok {
		return nil, visitRepo.ErrVisitNotFound
	}
	if existing.Status != domain.StatusPlanned {
		return nil, visitRepo.ErrVisitCompleted
	}

	v.ClientID = existing.ClientID
	v.Status = existing.Status
	v.VisitDate = domain.DateOf(v.VisitDate)
	v.CreatedAt = existing.CreatedAt
	v.UpdatedAt = r.s.now()
	r.s.data.visits[v.ID] = *v

	return v, nil
}

func (r *VisitRepository) GetByID(_ context.Context, id int64) (*domain.Visit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.data.visits[id]
	if !ok {
		return nil, visitRepo.ErrVisitNotFound
	}
	return &v, nil
}

func (r *VisitRepository) List(_ context.Context, filter domain.VisitFilter) ([]*domain.Visit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	visits := make([]*domain.Visit, 0)
	for _, v := range r.s.data.visits {
		v := v
		if filter.Match(&v) {
			visits = append(visits, &v)
		}
	}

	if filter.Date != nil {
		sort.Slice(visits, func(i, j int) bool {
			if !visits[i].StartTime.Equal(visits[j].StartTime) {
				return visits[i].StartTime.IsBefore(visits[j].StartTime)
			}
			return visits[i].ID < visits[j].ID
		})
	} else {
		sort.Slice(visits, func(i, j int) bool {
			a, b := visits[i], visits[j]
			if !a.VisitDate.Equal(b.VisitDate) {
				return a.VisitDate.After(b.VisitDate)
			}
			if !a.StartTime.Equal(b.StartTime) {
				return a.StartTime.IsAfter(b.StartTime)
			}
			return a.ID > b.ID
		})
	}

	return visits, nil
}

func (r *VisitRepository) Count(_ context.Context, filter domain.VisitFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, v := range r.s.data.visits {
		v := v
		if filter.Match(&v) {
			count++
		}
	}
	return count, nil
}

func (r *VisitRepository) Delete(ctx context.Context, id int64) error {
	defer r.s.writeLock(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.visits[id]; !ok {
		return visitRepo.ErrVisitNotFound
	}
	delete(r.s.data.visits, id)
	return nil
}

func (r *VisitRepository) CompletePast(ctx context.Context, today time.Time, nowTime types.TimeString) (int64, error) {
	defer r.s.writeLock(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var affected int64
	for id, v := range r.s.data.visits {
		if v.Status != domain.StatusPlanned {
			continue
		}
		if v.IsPast(today, nowTime) {
			v.Status = domain.StatusCompleted
			v.UpdatedAt = r.s.now()
			r.s.data.visits[id] = v
			affected++
		}
	}

	return affected, nil
}
