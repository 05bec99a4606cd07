package update_visit

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на изменение визита, поля как при создании
type Request struct {
	Actor      domain.Actor
	VisitID    int64
	EmployeeID int64
	ServiceID  int64
	Date       time.Time
	StartTime  types.TimeString
}

// Response модель ответа с изменённым визитом
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
	UpdatedAt       time.Time
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
		UpdatedAt:       v.UpdatedAt,
	}
}
