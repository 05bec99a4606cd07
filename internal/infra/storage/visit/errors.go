package visit

import "errors"

var (
	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("visit.repository: visit not found")

	// ErrVisitCompleted возвращается при попытке изменить уже завершённый визит
	ErrVisitCompleted = errors.New("visit.repository: visit is not planned")

	// ErrSlotConflict конкурентная запись в тот же слот (unique violation)
	ErrSlotConflict = errors.New("visit.repository: concurrent booking conflict")

	// ErrNotInTransaction блокировка слота вне транзакции не имеет смысла
	ErrNotInTransaction = errors.New("visit.repository: slot lock requires a transaction")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("visit.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("visit.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("visit.repository: failed to scan row")
)
