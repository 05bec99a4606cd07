package visits

import "errors"

var (
	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("visit not found")

	// ErrForbidden возвращается, когда у пользователя нет прав на визит
	ErrForbidden = errors.New("access denied")

	// ErrVisitCompleted завершённый визит нельзя удалить
	ErrVisitCompleted = errors.New("visit is already completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
