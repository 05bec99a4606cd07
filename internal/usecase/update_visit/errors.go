package update_visit

import "errors"

var (
	ErrVisitNotFound = errors.New("visit not found")

	// ErrForbidden изменять визит может только его владелец или администратор
	ErrForbidden = errors.New("access denied")

	// ErrVisitCompleted завершённый визит не редактируется
	ErrVisitCompleted = errors.New("visit is already completed")

	ErrNotConfigured    = errors.New("service is not configured for this employee")
	ErrOverbooked       = errors.New("hall is fully booked for the selected time")
	ErrInvalidDate      = errors.New("invalid visit date")
	ErrInvalidTime      = errors.New("invalid visit time")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrServiceNotFound  = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
