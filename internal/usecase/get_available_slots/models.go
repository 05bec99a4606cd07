package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на получение свободного времени
type Request struct {
	EmployeeID int64     // ID сотрудника
	ServiceID  int64     // ID услуги
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со списком свободного времени
type Response struct {
	Date            time.Time
	HallID          int64              // зал, определённый по связи сотрудник-услуга
	DurationMinutes int                // длительность услуги
	Slots           []types.TimeString // время начала свободных окон по возрастанию
}

// interval занятый промежуток в минутах от полуночи [start, end)
type interval struct {
	start int
	end   int
}
