package create_visit

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	visitRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/visit"
	"github.com/m04kA/SMC-SalonService/internal/service/capacity"
	"github.com/m04kA/SMC-SalonService/internal/service/resolver"
)

// UseCase use case для создания визита
type UseCase struct {
	resolver     Resolver
	guard        CapacityGuard
	visitRepo    VisitRepository
	txManager    TransactionManager
	metrics      Metrics
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resolver Resolver,
	guard CapacityGuard,
	visitRepo VisitRepository,
	txManager TransactionManager,
	metrics Metrics,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:     resolver,
		guard:        guard,
		visitRepo:    visitRepo,
		txManager:    txManager,
		metrics:      metrics,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания визита
// Проверка занятости и вставка выполняются в одной транзакции под блокировкой дня зала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	visit, err := uc.execute(ctx, req)
	if err != nil {
		if reason := rejectReason(err); reason != "" && uc.metrics != nil {
			uc.metrics.IncVisitsRejected(reason)
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncVisitsCreated()
	}
	return toResponse(visit), nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*domain.Visit, error) {
	uc.logger.Info("CreateVisit: user=%d, employee=%d, service=%d, date=%s, time=%s",
		req.Actor.UserID, req.EmployeeID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateVisit: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOf(req.Date)
	now := uc.timeProvider.Now()

	// 2. Определяем зал по связи сотрудник-услуга
	res, err := uc.resolver.Resolve(ctx, req.EmployeeID, req.ServiceID)
	if err != nil {
		return nil, uc.mapResolveError(req, err)
	}

	// 3. Дата в окне записи
	if !uc.policy.DateAllowed(date, now) {
		uc.logger.Warn("CreateVisit: date %s is outside of booking window (%d days)",
			date.Format(domain.DateFormat), uc.policy.HorizonDays)
		return nil, ErrInvalidDate
	}

	// 4. Время на сетке зала, в часах работы и не в прошлом
	if !res.Hall.OnGrid(req.StartTime, res.Service.DurationMinutes) {
		uc.logger.Warn("CreateVisit: time %s (+%d min) is off the grid of hall id=%d hours %s-%s",
			req.StartTime, res.Service.DurationMinutes, res.Hall.ID, res.Hall.OpenTime, res.Hall.CloseTime)
		return nil, ErrInvalidTime
	}
	if !uc.policy.TimeAllowed(date, req.StartTime, now) {
		uc.logger.Warn("CreateVisit: time %s on %s has already passed", req.StartTime, date.Format(domain.DateFormat))
		return nil, ErrInvalidTime
	}

	var result *domain.Visit

	// 5. Пересчёт занятости и вставка в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.guard.Admit(txCtx, res.Hall, date, req.StartTime, res.Service.DurationMinutes, 0); err != nil {
			return err
		}

		created, err := uc.visitRepo.Create(txCtx, &domain.Visit{
			ClientID:        clientOf(req),
			EmployeeID:      res.Employee.ID,
			ServiceID:       res.Service.ID,
			HallID:          res.Hall.ID,
			VisitDate:       date,
			StartTime:       req.StartTime,
			DurationMinutes: res.Service.DurationMinutes,
			Status:          domain.StatusPlanned,
		})
		if err != nil {
			return err
		}

		result = created
		return nil
	})
	if err != nil {
		if isConflict(err) {
			uc.logger.Warn("CreateVisit: hall id=%d is fully booked on %s at %s: %v",
				res.Hall.ID, date.Format(domain.DateFormat), req.StartTime, err)
			return nil, ErrOverbooked
		}
		uc.logger.Error("CreateVisit: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateVisit: visit id=%d created, hall=%d, date=%s, time=%s",
		result.ID, result.HallID, date.Format(domain.DateFormat), result.StartTime)

	return result, nil
}

func (uc *UseCase) mapResolveError(req *Request, err error) error {
	switch {
	case errors.Is(err, resolver.ErrNotConfigured):
		uc.logger.Warn("CreateVisit: service=%d is not configured for employee=%d", req.ServiceID, req.EmployeeID)
		return ErrNotConfigured
	case errors.Is(err, resolver.ErrEmployeeNotFound):
		uc.logger.Warn("CreateVisit: employee id=%d not found", req.EmployeeID)
		return ErrEmployeeNotFound
	case errors.Is(err, resolver.ErrServiceNotFound):
		uc.logger.Warn("CreateVisit: service id=%d not found", req.ServiceID)
		return ErrServiceNotFound
	default:
		uc.logger.Error("CreateVisit: failed to resolve hall: %v", err)
		return fmt.Errorf("%w: failed to resolve hall: %v", ErrInternal, err)
	}
}

// isConflict гонка за слот, проигравшая сторона получает ErrOverbooked
func isConflict(err error) bool {
	return errors.Is(err, capacity.ErrOverbooked) ||
		errors.Is(err, visitRepo.ErrSlotConflict)
}
