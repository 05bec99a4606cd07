package update_visit

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	visitRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/visit"
	"github.com/m04kA/SMC-SalonService/internal/service/capacity"
	"github.com/m04kA/SMC-SalonService/internal/service/resolver"
)

// UseCase use case для изменения запланированного визита
type UseCase struct {
	resolver     Resolver
	guard        CapacityGuard
	sweeper      Sweeper
	visitRepo    VisitRepository
	txManager    TransactionManager
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resolver Resolver,
	guard CapacityGuard,
	sweeper Sweeper,
	visitRepo VisitRepository,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:     resolver,
		guard:        guard,
		sweeper:      sweeper,
		visitRepo:    visitRepo,
		txManager:    txManager,
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

// Execute выполняет use case изменения визита
// Проверки те же, что при создании; сам визит из проверки занятости исключается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateVisit: user=%d, visit=%d, employee=%d, service=%d, date=%s, time=%s",
		req.Actor.UserID, req.VisitID, req.EmployeeID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateVisit: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOf(req.Date)
	now := uc.timeProvider.Now()

	// 2. Актуализируем статусы визитов
	if _, err := uc.sweeper.Sweep(ctx, now); err != nil {
		uc.logger.Error("UpdateVisit: status sweep failed: %v", err)
		return nil, fmt.Errorf("%w: status sweep failed: %v", ErrInternal, err)
	}

	// 3. Получаем визит и проверяем права
	visit, err := uc.visitRepo.GetByID(ctx, req.VisitID)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			uc.logger.Warn("UpdateVisit: visit id=%d not found", req.VisitID)
			return nil, ErrVisitNotFound
		}
		uc.logger.Error("UpdateVisit: failed to get visit id=%d: %v", req.VisitID, err)
		return nil, fmt.Errorf("%w: failed to get visit: %v", ErrInternal, err)
	}

	if !req.Actor.CanManage(visit) {
		uc.logger.Warn("UpdateVisit: user=%d is not allowed to change visit id=%d", req.Actor.UserID, visit.ID)
		return nil, ErrForbidden
	}

	if !visit.CanBeChanged() {
		uc.logger.Warn("UpdateVisit: visit id=%d is already completed", visit.ID)
		return nil, ErrVisitCompleted
	}

	// 4. Повторно определяем зал
	res, err := uc.resolver.Resolve(ctx, req.EmployeeID, req.ServiceID)
	if err != nil {
		return nil, uc.mapResolveError(req, err)
	}

	// 5. Дата и время по тем же правилам, что при создании
	if !uc.policy.DateAllowed(date, now) {
		uc.logger.Warn("UpdateVisit: date %s is outside of booking window (%d days)",
			date.Format(domain.DateFormat), uc.policy.HorizonDays)
		return nil, ErrInvalidDate
	}
	if !res.Hall.OnGrid(req.StartTime, res.Service.DurationMinutes) {
		uc.logger.Warn("UpdateVisit: time %s (+%d min) is off the grid of hall id=%d hours %s-%s",
			req.StartTime, res.Service.DurationMinutes, res.Hall.ID, res.Hall.OpenTime, res.Hall.CloseTime)
		return nil, ErrInvalidTime
	}
	if !uc.policy.TimeAllowed(date, req.StartTime, now) {
		uc.logger.Warn("UpdateVisit: time %s on %s has already passed", req.StartTime, date.Format(domain.DateFormat))
		return nil, ErrInvalidTime
	}

	visit.EmployeeID = res.Employee.ID
	visit.ServiceID = res.Service.ID
	visit.HallID = res.Hall.ID
	visit.VisitDate = date
	visit.StartTime = req.StartTime
	visit.DurationMinutes = res.Service.DurationMinutes

	var result *domain.Visit

	// 6. Проверка занятости без самого визита и запись
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.guard.Admit(txCtx, res.Hall, date, req.StartTime, res.Service.DurationMinutes, visit.ID); err != nil {
			return err
		}

		updated, err := uc.visitRepo.Update(txCtx, visit)
		if err != nil {
			return err
		}

		result = updated
		return nil
	})
	if err != nil {
		switch {
		case isConflict(err):
			uc.logger.Warn("UpdateVisit: hall id=%d is fully booked on %s at %s: %v",
				res.Hall.ID, date.Format(domain.DateFormat), req.StartTime, err)
			return nil, ErrOverbooked
		case errors.Is(err, visitRepo.ErrVisitNotFound):
			uc.logger.Warn("UpdateVisit: visit id=%d was deleted", visit.ID)
			return nil, ErrVisitNotFound
		case errors.Is(err, visitRepo.ErrVisitCompleted):
			uc.logger.Warn("UpdateVisit: visit id=%d was completed concurrently", visit.ID)
			return nil, ErrVisitCompleted
		default:
			uc.logger.Error("UpdateVisit: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdateVisit: visit id=%d updated, hall=%d, date=%s, time=%s",
		result.ID, result.HallID, date.Format(domain.DateFormat), result.StartTime)

	return toResponse(result), nil
}

func (uc *UseCase) mapResolveError(req *Request, err error) error {
	switch {
	case errors.Is(err, resolver.ErrNotConfigured):
		uc.logger.Warn("UpdateVisit: service=%d is not configured for employee=%d", req.ServiceID, req.EmployeeID)
		return ErrNotConfigured
	case errors.Is(err, resolver.ErrEmployeeNotFound):
		uc.logger.Warn("UpdateVisit: employee id=%d not found", req.EmployeeID)
		return ErrEmployeeNotFound
	case errors.Is(err, resolver.ErrServiceNotFound):
		uc.logger.Warn("UpdateVisit: service id=%d not found", req.ServiceID)
		return ErrServiceNotFound
	default:
		uc.logger.Error("UpdateVisit: failed to resolve hall: %v", err)
		return fmt.Errorf("%w: failed to resolve hall: %v", ErrInternal, err)
	}
}

func isConflict(err error) bool {
	return errors.Is(err, capacity.ErrOverbooked) ||
		errors.Is(err, visitRepo.ErrSlotConflict)
}
