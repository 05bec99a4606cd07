package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/employee"
)

// EmployeeRepository сотрудники и связи услуга-зал в памяти
type EmployeeRepository struct {
	s *Store
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	defer r.s.writeLock(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.userTaken(e.UserID, 0) {
		return nil, employeeRepo.ErrUserAlreadyEmployee
	}

	e.ID = r.s.id()
	e.CreatedAt = r.s.now()
	e.UpdatedAt = e.CreatedAt
	r.s.data.employees[e.ID] = copyEmployee(*e)

	return e, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	defer r.s.writeLock(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.data.employees[e.ID]
	if !ok {
		return nil, employeeRepo.ErrEmployeeNotFound
	}
	if r.userTaken(e.UserID, e.ID) {
		return nil, employeeRepo.ErrUserAlreadyEmployee
	}

	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = r.s.now()
	r.s.data.employees[e.ID] = copyEmployee(*e)

	return e, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.data.employees[id]
	if !ok {
		return nil, employeeRepo.ErrEmployeeNotFound
	}
	e = copyEmployee(e)
	return &e, nil
}

func (r *EmployeeRepository) GetByUserID(_ context.Context, userID int64) (*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.data.employees {
		if e.UserID == userID {
			e = copyEmployee(e)
			return &e, nil
		}
	}
	return nil, employeeRepo.ErrEmployeeNotFound
}

func (r *EmployeeRepository) List(_ context.Context) ([]*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	employees := make([]*domain.Employee, 0, len(r.s.data.employees))
	for _, e := range r.s.data.employees {
		e = copyEmployee(e)
		employees = append(employees, &e)
	}

	sort.Slice(employees, func(i, j int) bool {
		if employees[i].FullName != employees[j].FullName {
			return employees[i].FullName < employees[j].FullName
		}
		return employees[i].ID < employees[j].ID
	})

	return employees, nil
}

// ListLinks связи сотрудника, упорядоченные по залу
func (r *EmployeeRepository) ListLinks(_ context.Context, employeeID int64, serviceID *int64) ([]*domain.ServiceHall, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	links := make([]*domain.ServiceHall, 0)
	for _, link := range r.s.data.links {
		if link.EmployeeID != employeeID {
			continue
		}
		if serviceID != nil && link.ServiceID != *serviceID {
			continue
		}
		link := link
		links = append(links, &link)
	}

	sort.Slice(links, func(i, j int) bool {
		if links[i].HallID != links[j].HallID {
			return links[i].HallID < links[j].HallID
		}
		return links[i].ServiceID < links[j].ServiceID
	})

	return links, nil
}

// CreateLink добавляет связь, дубликаты игнорируются
func (r *EmployeeRepository) CreateLink(ctx context.Context, link *domain.ServiceHall) (bool, error) {
	defer r.s.writeLock(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.data.links {
		if existing.EmployeeID == link.EmployeeID &&
			existing.ServiceID == link.ServiceID &&
			existing.HallID == link.HallID {
			return false, nil
		}
	}

	link.ID = r.s.id()
	link.CreatedAt = r.s.now()
	r.s.data.links[link.ID] = *link

	return true, nil
}

// userTaken вызывается под s.mu
func (r *EmployeeRepository) userTaken(userID, exceptID int64) bool {
	for id, e := range r.s.data.employees {
		if id != exceptID && e.UserID == userID {
			return true
		}
	}
	return false
}

func copyEmployee(e domain.Employee) domain.Employee {
	e.HallIDs = append([]int64(nil), e.HallIDs...)
	e.ServiceIDs = append([]int64(nil), e.ServiceIDs...)
	return e
}
