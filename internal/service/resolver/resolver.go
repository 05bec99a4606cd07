package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/employee"
	hallRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/hall"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Resolution результат разрешения пары (сотрудник, услуга)
type Resolution struct {
	Employee *domain.Employee
	Service  *domain.Service
	Hall     *domain.Hall
	Link     *domain.ServiceHall
}

// Resolver определяет зал, в котором сотрудник оказывает услугу
// Только чтение, ничего не создаёт
type Resolver struct {
	employees EmployeeRepository
	services  ServiceRepository
	halls     HallRepository
}

func NewResolver(employees EmployeeRepository, services ServiceRepository, halls HallRepository) *Resolver {
	return &Resolver{
		employees: employees,
		services:  services,
		halls:     halls,
	}
}

// Resolve находит связь ServiceHall для пары. Если связей несколько, берётся зал с меньшим ID
func (r *Resolver) Resolve(ctx context.Context, employeeID, serviceID int64) (*Resolution, error) {
	employee, err := r.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("%w: get employee: %v", ErrInternal, err)
	}

	service, err := r.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}

	links, err := r.employees.ListLinks(ctx, employeeID, ptr.Ptr(serviceID))
	if err != nil {
		return nil, fmt.Errorf("%w: list links: %v", ErrInternal, err)
	}
	if len(links) == 0 {
		return nil, ErrNotConfigured
	}

	link := links[0]
	for _, l := range links[1:] {
		if l.HallID < link.HallID {
			link = l
		}
	}

	hall, err := r.halls.GetByID(ctx, link.HallID)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, fmt.Errorf("%w: get hall: %v", ErrInternal, err)
	}

	return &Resolution{
		Employee: employee,
		Service:  service,
		Hall:     hall,
		Link:     link,
	}, nil
}
