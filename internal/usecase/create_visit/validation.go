package create_visit

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// clientOf визит создаётся на самого пользователя, администратор может указать клиента
func clientOf(req *Request) int64 {
	if req.Actor.IsAdmin() && req.ClientID > 0 {
		return req.ClientID
	}
	return req.Actor.UserID
}

// rejectReason метка метрики для ошибки отказа
func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrOverbooked):
		return domain.RejectOverbooked
	case errors.Is(err, ErrNotConfigured):
		return domain.RejectNotConfigured
	case errors.Is(err, ErrInvalidDate):
		return domain.RejectInvalidDate
	case errors.Is(err, ErrInvalidTime):
		return domain.RejectInvalidTime
	default:
		return ""
	}
}
