package resolver

import "errors"

var (
	// ErrNotConfigured сотрудник не оказывает эту услугу ни в одном зале
	ErrNotConfigured = errors.New("resolver: service is not configured for this employee")

	ErrEmployeeNotFound = errors.New("resolver: employee not found")
	ErrServiceNotFound  = errors.New("resolver: service not found")
	ErrHallNotFound     = errors.New("resolver: hall not found")

	ErrInternal = errors.New("resolver: internal error")
)
