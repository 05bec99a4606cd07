package employee

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee.repository: employee not found")

	// ErrUserAlreadyEmployee возвращается, когда пользователь уже зарегистрирован как сотрудник
	ErrUserAlreadyEmployee = errors.New("employee.repository: user is already an employee")

	ErrBuildQuery = errors.New("employee.repository: failed to build query")
	ErrExecQuery  = errors.New("employee.repository: failed to execute query")
	ErrScanRow    = errors.New("employee.repository: failed to scan row")
)
