package catalog

import "errors"

var (
	ErrHallNotFound    = errors.New("hall not found")
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceInUse на услугу есть визиты, менять можно только цену
	ErrServiceInUse = errors.New("service has visits, only price can be changed")

	// ErrForbidden изменять справочники может только администратор
	ErrForbidden = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
