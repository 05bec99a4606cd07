package employees

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrHallNotFound     = errors.New("hall not found")
	ErrServiceNotFound  = errors.New("service not found")

	// ErrUserAlreadyEmployee пользователь уже привязан к другому сотруднику
	ErrUserAlreadyEmployee = errors.New("user is already an employee")

	// ErrForbidden управлять сотрудниками может только администратор
	ErrForbidden = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
