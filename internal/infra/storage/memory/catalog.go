package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	hallRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/hall"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
)

// HallRepository залы в памяти
type HallRepository struct {
	s *Store
}

func (r *HallRepository) Create(ctx context.Context, h *domain.Hall) (*domain.Hall, error) {
	defer r.s.writeLock(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	h.ID = r.s.id()
	h.CreatedAt = r.s.now()
	h.UpdatedAt = h.CreatedAt
	r.s.data.halls[h.ID] = *h

	return h, nil
}

func (r *HallRepository) Update(ctx context.Context, h *domain.Hall) (*domain.Hall, error) {
	defer r.s.writeLock(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.data.halls[h.ID]
	if !ok {
		return nil, hallRepo.ErrHallNotFound
	}

	h.CreatedAt = existing.CreatedAt
	h.UpdatedAt = r.s.now()
	r.s.data.halls[h.ID] = *h

	return h, nil
}

func (r *HallRepository) GetByID(_ context.Context, id int64) (*domain.Hall, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	h, ok := r.s.data.halls[id]
	if !ok {
		return nil, hallRepo.ErrHallNotFound
	}
	return &h, nil
}

func (r *HallRepository) List(_ context.Context) ([]*domain.Hall, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	halls := make([]*domain.Hall, 0, len(r.s.data.halls))
	for _, h := range r.s.data.halls {
		h := h
		halls = append(halls, &h)
	}

	sort.Slice(halls, func(i, j int) bool {
		if halls[i].Name != halls[j].Name {
			return halls[i].Name < halls[j].Name
		}
		return halls[i].ID < halls[j].ID
	})

	return halls, nil
}

// ServiceRepository услуги в памяти
type ServiceRepository struct {
	s *Store
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	defer r.s.writeLock(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc.ID = r.s.id()
	svc.CreatedAt = r.s.now()
	svc.UpdatedAt = svc.CreatedAt
	r.s.data.services[svc.ID] = *svc

	return svc, nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	defer r.s.writeLock(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.data.services[svc.ID]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}

	svc.CreatedAt = existing.CreatedAt
	svc.UpdatedAt = r.s.now()
	r.s.data.services[svc.ID] = *svc

	return svc, nil
}

func (r *ServiceRepository) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	svc, ok := r.s.data.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return &svc, nil
}

func (r *ServiceRepository) List(_ context.Context) ([]*domain.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	services := make([]*domain.Service, 0, len(r.s.data.services))
	for _, svc := range r.s.data.services {
		svc := svc
		services = append(services, &svc)
	}

	sort.Slice(services, func(i, j int) bool {
		if services[i].Name != services[j].Name {
			return services[i].Name < services[j].Name
		}
		return services[i].ID < services[j].ID
	})

	return services, nil
}
