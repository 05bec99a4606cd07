package update_visit

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	updateVisit "github.com/m04kA/SMC-SalonService/internal/usecase/update_visit"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// UpdateVisitRequest новые параметры визита, все поля обязательны
type UpdateVisitRequest struct {
	EmployeeID int64  `json:"employeeId"`
	ServiceID  int64  `json:"serviceId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
}

type VisitResponse struct {
	ID              int64  `json:"id"`
	ClientID        int64  `json:"clientId"`
	EmployeeID      int64  `json:"employeeId"`
	ServiceID       int64  `json:"serviceId"`
	HallID          int64  `json:"hallId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	UpdatedAt       string `json:"updatedAt"`
}

func (r *UpdateVisitRequest) ToUseCaseRequest(actor domain.Actor, visitID int64) (*updateVisit.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &updateVisit.Request{
		Actor:      actor,
		VisitID:    visitID,
		EmployeeID: r.EmployeeID,
		ServiceID:  r.ServiceID,
		Date:       date,
		StartTime:  startTime,
	}, nil
}

func FromUseCaseResponse(resp *updateVisit.Response) *VisitResponse {
	return &VisitResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		EmployeeID:      resp.EmployeeID,
		ServiceID:       resp.ServiceID,
		HallID:          resp.HallID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          string(resp.Status),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
