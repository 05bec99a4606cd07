package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	hallRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/hall"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Service справочники салона: залы и услуги
type Service struct {
	hallRepo    HallRepository
	serviceRepo ServiceRepository
	visitRepo   VisitRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(
	hallRepo HallRepository,
	serviceRepo ServiceRepository,
	visitRepo VisitRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		hallRepo:    hallRepo,
		serviceRepo: serviceRepo,
		visitRepo:   visitRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (s *Service) CreateHall(ctx context.Context, actor domain.Actor, req *models.HallRequest) (*models.HallResponse, error) {
	s.logger.Info("CreateHall: user=%d creating hall name=%q", actor.UserID, req.Name)

	if !actor.IsAdmin() {
		s.logger.Warn("CreateHall: access denied for user=%d", actor.UserID)
		return nil, ErrForbidden
	}

	open, closeAt, err := validateHall(req)
	if err != nil {
		s.logger.Warn("CreateHall: validation failed: %v", err)
		return nil, err
	}

	hall, err := s.hallRepo.Create(ctx, req.ToDomain(open, closeAt))
	if err != nil {
		s.logger.Error("CreateHall: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateHall - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateHall: hall id=%d created", hall.ID)
	return models.FromDomainHall(hall), nil
}

func (s *Service) UpdateHall(ctx context.Context, actor domain.Actor, id int64, req *models.HallRequest) (*models.HallResponse, error) {
	s.logger.Info("UpdateHall: user=%d updating hall id=%d", actor.UserID, id)

	if !actor.IsAdmin() {
		s.logger.Warn("UpdateHall: access denied for user=%d", actor.UserID)
		return nil, ErrForbidden
	}

	open, closeAt, err := validateHall(req)
	if err != nil {
		s.logger.Warn("UpdateHall: validation failed: %v", err)
		return nil, err
	}

	hall := req.ToDomain(open, closeAt)
	hall.ID = id

	updated, err := s.hallRepo.Update(ctx, hall)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			s.logger.Warn("UpdateHall: hall id=%d not found", id)
			return nil, ErrHallNotFound
		}
		s.logger.Error("UpdateHall: repository error for hall id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateHall - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateHall: hall id=%d updated", id)
	return models.FromDomainHall(updated), nil
}

func (s *Service) GetHall(ctx context.Context, id int64) (*models.HallResponse, error) {
	hall, err := s.hallRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			return nil, ErrHallNotFound
		}
		s.logger.Error("GetHall: repository error for hall id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetHall - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainHall(hall), nil
}

func (s *Service) ListHalls(ctx context.Context) (*models.HallListResponse, error) {
	halls, err := s.hallRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListHalls: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHalls - repository error: %v", ErrInternal, err)
	}

	result := &models.HallListResponse{
		Halls: make([]models.HallResponse, 0, len(halls)),
		Total: len(halls),
	}
	for _, h := range halls {
		result.Halls = append(result.Halls, *models.FromDomainHall(h))
	}
	return result, nil
}

func (s *Service) CreateService(ctx context.Context, actor domain.Actor, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: user=%d creating service name=%q", actor.UserID, req.Name)

	if !actor.IsAdmin() {
		s.logger.Warn("CreateService: access denied for user=%d", actor.UserID)
		return nil, ErrForbidden
	}

	if err := validateService(req); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	service, err := s.serviceRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: service id=%d created", service.ID)
	return models.FromDomainService(service), nil
}

// UpdateService изменяет услугу
// Если на услугу уже есть визиты, допускается только смена цены
func (s *Service) UpdateService(ctx context.Context, actor domain.Actor, id int64, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: user=%d updating service id=%d", actor.UserID, id)

	if !actor.IsAdmin() {
		s.logger.Warn("UpdateService: access denied for user=%d", actor.UserID)
		return nil, ErrForbidden
	}

	if err := validateService(req); err != nil {
		s.logger.Warn("UpdateService: validation failed: %v", err)
		return nil, err
	}

	service := req.ToDomain()
	service.ID = id

	var updated *domain.Service
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.serviceRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if !current.SameExceptPrice(service) {
			used, err := s.visitRepo.Count(txCtx, domain.VisitFilter{ServiceID: ptr.Ptr(id)})
			if err != nil {
				return err
			}
			if used > 0 {
				s.logger.Warn("UpdateService: service id=%d has %d visits, only price can change", id, used)
				return ErrServiceInUse
			}
		}

		updated, err = s.serviceRepo.Update(txCtx, service)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceInUse):
			return nil, ErrServiceInUse
		case errors.Is(err, serviceRepo.ErrServiceNotFound):
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		default:
			s.logger.Error("UpdateService: failed to update service id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateService - transaction failed: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateService: service id=%d updated", id)
	return models.FromDomainService(updated), nil
}

func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainService(service), nil
}

func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	result := &models.ServiceListResponse{
		Services: make([]models.ServiceResponse, 0, len(services)),
		Total:    len(services),
	}
	for _, svc := range services {
		result.Services = append(result.Services, *models.FromDomainService(svc))
	}
	return result, nil
}
