package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/resolver"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase use case для получения свободного времени записи
type UseCase struct {
	resolver     Resolver
	visitRepo    VisitRepository
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resolver Resolver,
	visitRepo VisitRepository,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:     resolver,
		visitRepo:    visitRepo,
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

// Execute выполняет use case получения свободного времени
// Занятость пересчитывается при каждом вызове
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: employee=%d, service=%d, date=%s",
		req.EmployeeID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOf(req.Date)
	now := uc.timeProvider.Now()

	// 2. Определяем зал
	res, err := uc.resolver.Resolve(ctx, req.EmployeeID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, resolver.ErrNotConfigured):
			uc.logger.Warn("GetAvailableSlots: service=%d is not configured for employee=%d", req.ServiceID, req.EmployeeID)
			return nil, ErrNotConfigured
		case errors.Is(err, resolver.ErrEmployeeNotFound):
			uc.logger.Warn("GetAvailableSlots: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		case errors.Is(err, resolver.ErrServiceNotFound):
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		default:
			uc.logger.Error("GetAvailableSlots: failed to resolve hall: %v", err)
			return nil, fmt.Errorf("%w: failed to resolve hall: %v", ErrInternal, err)
		}
	}

	response := &Response{
		Date:            date,
		HallID:          res.Hall.ID,
		DurationMinutes: res.Service.DurationMinutes,
		Slots:           []types.TimeString{},
	}

	// 3. На прошедшую дату свободного времени нет
	if isDateInPast(date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return response, nil
	}

	// 4. Все визиты зала на дату, включая завершённые
	visits, err := uc.visitRepo.List(ctx, domain.VisitFilter{
		HallID: ptr.Ptr(res.Hall.ID),
		Date:   ptr.Ptr(date),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list visits: %v", err)
		return nil, fmt.Errorf("%w: failed to list visits: %v", ErrInternal, err)
	}

	occupied, err := occupiedIntervals(visits, res.Service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid visit time: %v", err)
		return nil, fmt.Errorf("%w: invalid visit time: %v", ErrInternal, err)
	}

	// 5. Генерируем окна
	slots, err := generateSlots(res.Hall, res.Service.DurationMinutes, occupied)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}
	response.Slots = dropBeforeNotice(slots, date, now, uc.policy.MinNoticeMinutes)

	uc.logger.Info("GetAvailableSlots: %d slots for employee=%d, service=%d, hall=%d, date=%s",
		len(response.Slots), req.EmployeeID, req.ServiceID, res.Hall.ID, date.Format(domain.DateFormat))

	return response, nil
}
