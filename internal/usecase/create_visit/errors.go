package create_visit

import "errors"

var (
	// ErrNotConfigured сотрудник не оказывает услугу ни в одном зале
	ErrNotConfigured = errors.New("service is not configured for this employee")

	// ErrOverbooked в выбранное время зал заполнен
	ErrOverbooked = errors.New("hall is fully booked for the selected time")

	// ErrInvalidDate дата вне окна записи
	ErrInvalidDate = errors.New("invalid visit date")

	// ErrInvalidTime время вне часов работы зала или уже прошло
	ErrInvalidTime = errors.New("invalid visit time")

	ErrEmployeeNotFound = errors.New("employee not found")
	ErrServiceNotFound  = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
