package employees

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/employee"
	hallRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/hall"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonService/internal/service/employees/models"
)

// Service сервис управления сотрудниками
//
// При сохранении сотрудника в той же транзакции достраиваются связи услуга-зал:
// добавляются недостающие пары из HallIDs x ServiceIDs, существующие связи не удаляются
type Service struct {
	employeeRepo EmployeeRepository
	hallRepo     HallRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(
	employeeRepo EmployeeRepository,
	hallRepo HallRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		hallRepo:     hallRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создаёт сотрудника и его связи
func (s *Service) Create(ctx context.Context, actor domain.Actor, req *models.EmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Create: user=%d creating employee for user=%d", actor.UserID, req.UserID)

	if !actor.IsAdmin() {
		s.logger.Warn("Create: access denied for user=%d", actor.UserID)
		return nil, ErrForbidden
	}

	if err := validateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	employee := req.ToDomain()

	var (
		created *domain.Employee
		links   []*domain.ServiceHall
	)
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.checkReferences(txCtx, employee); err != nil {
			return err
		}

		var err error
		created, err = s.employeeRepo.Create(txCtx, employee)
		if err != nil {
			return s.mapRepoError("Create", err)
		}

		links, err = s.reconcileLinks(txCtx, created)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: employee id=%d created with %d links", created.ID, len(links))
	return models.FromDomainEmployee(created, links), nil
}

// Update изменяет сотрудника и добавляет недостающие связи
func (s *Service) Update(ctx context.Context, actor domain.Actor, id int64, req *models.EmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Update: user=%d updating employee id=%d", actor.UserID, id)

	if !actor.IsAdmin() {
		s.logger.Warn("Update: access denied for user=%d", actor.UserID)
		return nil, ErrForbidden
	}

	if err := validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	employee := req.ToDomain()
	employee.ID = id

	var (
		updated *domain.Employee
		links   []*domain.ServiceHall
	)
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.checkReferences(txCtx, employee); err != nil {
			return err
		}

		var err error
		updated, err = s.employeeRepo.Update(txCtx, employee)
		if err != nil {
			return s.mapRepoError("Update", err)
		}

		links, err = s.reconcileLinks(txCtx, updated)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: employee id=%d updated, %d links", updated.ID, len(links))
	return models.FromDomainEmployee(updated, links), nil
}

// GetByID получает сотрудника со связями
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EmployeeResponse, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", err)
	}

	links, err := s.employeeRepo.ListLinks(ctx, id, nil)
	if err != nil {
		s.logger.Error("GetByID: failed to list links for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list links: %v", ErrInternal, err)
	}

	return models.FromDomainEmployee(employee, links), nil
}

// List возвращает всех сотрудников со связями
func (s *Service) List(ctx context.Context) (*models.EmployeeListResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := &models.EmployeeListResponse{
		Employees: make([]models.EmployeeResponse, 0, len(employees)),
		Total:     len(employees),
	}
	for _, e := range employees {
		links, err := s.employeeRepo.ListLinks(ctx, e.ID, nil)
		if err != nil {
			s.logger.Error("List: failed to list links for employee id=%d: %v", e.ID, err)
			return nil, fmt.Errorf("%w: List - list links: %v", ErrInternal, err)
		}
		result.Employees = append(result.Employees, *models.FromDomainEmployee(e, links))
	}

	s.logger.Info("List: fetched %d employees", len(employees))
	return result, nil
}

// reconcileLinks добавляет отсутствующие связи и возвращает полный список связей сотрудника
func (s *Service) reconcileLinks(ctx context.Context, e *domain.Employee) ([]*domain.ServiceHall, error) {
	existing, err := s.employeeRepo.ListLinks(ctx, e.ID, nil)
	if err != nil {
		s.logger.Error("reconcileLinks: failed to list links for employee id=%d: %v", e.ID, err)
		return nil, fmt.Errorf("%w: list links: %v", ErrInternal, err)
	}

	have := make(map[domain.LinkKey]struct{}, len(existing))
	for _, l := range existing {
		have[domain.LinkKey{ServiceID: l.ServiceID, HallID: l.HallID}] = struct{}{}
	}

	added := 0
	for _, key := range e.DesiredLinks() {
		if _, ok := have[key]; ok {
			continue
		}
		inserted, err := s.employeeRepo.CreateLink(ctx, &domain.ServiceHall{
			EmployeeID: e.ID,
			ServiceID:  key.ServiceID,
			HallID:     key.HallID,
		})
		if err != nil {
			s.logger.Error("reconcileLinks: failed to create link employee=%d service=%d hall=%d: %v",
				e.ID, key.ServiceID, key.HallID, err)
			return nil, fmt.Errorf("%w: create link: %v", ErrInternal, err)
		}
		if inserted {
			added++
		}
	}

	if added == 0 {
		return existing, nil
	}

	s.logger.Info("reconcileLinks: employee id=%d, %d links added", e.ID, added)

	links, err := s.employeeRepo.ListLinks(ctx, e.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: list links: %v", ErrInternal, err)
	}
	return links, nil
}

func (s *Service) checkReferences(ctx context.Context, e *domain.Employee) error {
	for _, id := range e.HallIDs {
		if _, err := s.hallRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, hallRepo.ErrHallNotFound) {
				s.logger.Warn("checkReferences: hall id=%d not found", id)
				return fmt.Errorf("%w: id=%d", ErrHallNotFound, id)
			}
			return fmt.Errorf("%w: get hall: %v", ErrInternal, err)
		}
	}
	for _, id := range e.ServiceIDs {
		if _, err := s.serviceRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				s.logger.Warn("checkReferences: service id=%d not found", id)
				return fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
			}
			return fmt.Errorf("%w: get service: %v", ErrInternal, err)
		}
	}
	return nil
}

func (s *Service) mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, employeeRepo.ErrEmployeeNotFound):
		s.logger.Warn("%s: employee not found", op)
		return ErrEmployeeNotFound
	case errors.Is(err, employeeRepo.ErrUserAlreadyEmployee):
		s.logger.Warn("%s: user is already an employee", op)
		return ErrUserAlreadyEmployee
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
