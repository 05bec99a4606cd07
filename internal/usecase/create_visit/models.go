package create_visit

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание визита
type Request struct {
	Actor      domain.Actor
	ClientID   int64 // клиент, за которого записывает администратор; для остальных игнорируется
	EmployeeID int64
	ServiceID  int64
	Date       time.Time
	StartTime  types.TimeString
}

// Response модель ответа с созданным визитом
type Response struct {
	ID              int64
	ClientID        int64
	EmployeeID      int64
	ServiceID       int64
	HallID          int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          domain.VisitStatus
	CreatedAt       time.Time
}

func toResponse(v *domain.Visit) *Response {
	return &Response{
		ID:              v.ID,
		ClientID:        v.ClientID,
		EmployeeID:      v.EmployeeID,
		ServiceID:       v.ServiceID,
		HallID:          v.HallID,
		Date:            v.VisitDate,
		StartTime:       v.StartTime,
		DurationMinutes: v.DurationMinutes,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
	}
}
