package visits

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/employee"
	visitRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/visit"
	"github.com/m04kA/SMC-SalonService/internal/service/visits/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Service сервис чтения и удаления визитов
type Service struct {
	visitRepo    VisitRepository
	employeeRepo EmployeeRepository
	sweeper      Sweeper
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса визитов
func NewService(
	visitRepo VisitRepository,
	employeeRepo EmployeeRepository,
	sweeper Sweeper,
	logger Logger,
) *Service {
	return &Service{
		visitRepo:    visitRepo,
		employeeRepo: employeeRepo,
		sweeper:      sweeper,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// List возвращает визиты, видимые пользователю
// Клиент видит свои визиты, сотрудник визиты к себе, администратор все
func (s *Service) List(ctx context.Context, actor domain.Actor, req *models.ListVisitsRequest) (*models.VisitListResponse, error) {
	s.logger.Info("List: fetching visits for user=%d, role=%s", actor.UserID, actor.Role)

	filter, err := toDomainFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid filter for user=%d: %v", actor.UserID, err)
		return nil, err
	}

	if err := s.sweep(ctx, "List"); err != nil {
		return nil, err
	}

	switch actor.Role {
	case domain.RoleAdmin:
		// без ограничений
	case domain.RoleEmployee:
		employee, err := s.employeeRepo.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
				s.logger.Warn("List: user=%d has employee role but no employee profile", actor.UserID)
				return models.FromDomainVisitList(nil), nil
			}
			s.logger.Error("List: failed to get employee for user=%d: %v", actor.UserID, err)
			return nil, fmt.Errorf("%w: List - get employee: %v", ErrInternal, err)
		}
		filter.EmployeeID = ptr.Ptr(employee.ID)
	default:
		filter.ClientID = ptr.Ptr(actor.UserID)
	}

	visits, err := s.visitRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d visits for user=%d", len(visits), actor.UserID)
	return models.FromDomainVisitList(visits), nil
}

// GetByID получает визит по ID
// Доступен владельцу, сотруднику, к которому записан визит, и администратору
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.VisitResponse, error) {
	s.logger.Info("GetByID: fetching visit id=%d for user=%d", id, actor.UserID)

	if err := s.sweep(ctx, "GetByID"); err != nil {
		return nil, err
	}

	visit, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !actor.CanManage(visit) {
		allowed, err := s.isAssignedEmployee(ctx, actor, visit)
		if err != nil {
			return nil, err
		}
		if !allowed {
			s.logger.Warn("GetByID: access denied for user=%d to visit id=%d", actor.UserID, id)
			return nil, ErrForbidden
		}
	}

	s.logger.Info("GetByID: successfully fetched visit id=%d", id)
	return models.FromDomainVisit(visit), nil
}

// Delete удаляет запланированный визит, доступно владельцу и администратору
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	s.logger.Info("Delete: user=%d deleting visit id=%d", actor.UserID, id)

	if err := s.sweep(ctx, "Delete"); err != nil {
		return err
	}

	visit, err := s.get(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if !actor.CanManage(visit) {
		s.logger.Warn("Delete: access denied for user=%d to visit id=%d", actor.UserID, id)
		return ErrForbidden
	}

	if !visit.CanBeChanged() {
		s.logger.Warn("Delete: visit id=%d is already completed", id)
		return ErrVisitCompleted
	}

	if err := s.visitRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			return ErrVisitNotFound
		}
		s.logger.Error("Delete: repository error for visit id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: visit id=%d deleted", id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Visit, error) {
	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("%s: visit id=%d not found", op, id)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("%s: repository error for visit id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return visit, nil
}

func (s *Service) sweep(ctx context.Context, op string) error {
	if _, err := s.sweeper.Sweep(ctx, s.timeProvider.Now()); err != nil {
		s.logger.Error("%s: status sweep failed: %v", op, err)
		return fmt.Errorf("%w: %s - status sweep: %v", ErrInternal, op, err)
	}
	return nil
}

func (s *Service) isAssignedEmployee(ctx context.Context, actor domain.Actor, visit *domain.Visit) (bool, error) {
	if !actor.IsEmployee() {
		return false, nil
	}
	employee, err := s.employeeRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			return false, nil
		}
		s.logger.Error("GetByID: failed to get employee for user=%d: %v", actor.UserID, err)
		return false, fmt.Errorf("%w: GetByID - get employee: %v", ErrInternal, err)
	}
	return employee.ID == visit.EmployeeID, nil
}

func toDomainFilter(req *models.ListVisitsRequest) (domain.VisitFilter, error) {
	filter := domain.VisitFilter{}
	if req == nil {
		return filter, nil
	}

	if req.Status != nil {
		status, err := models.ToDomainVisitStatus(*req.Status)
		if err != nil {
			return filter, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}
	if req.Date != nil {
		filter.Date = ptr.Ptr(domain.DateOf(*req.Date))
	}
	if req.HallID != nil {
		if *req.HallID <= 0 {
			return filter, fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
		}
		filter.HallID = req.HallID
	}

	return filter, nil
}
