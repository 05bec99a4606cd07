package create_visit

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createVisit "github.com/m04kA/SMC-SalonService/internal/usecase/create_visit"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CreateVisitRequest HTTP request model
type CreateVisitRequest struct {
	ClientID   int64  `json:"clientId,omitempty"` // только для администратора
	EmployeeID int64  `json:"employeeId"`
	ServiceID  int64  `json:"serviceId"`
	Date       string `json:"date"`      // "2025-10-15"
	StartTime  string `json:"startTime"` // "10:00"
}

// VisitResponse HTTP response model
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
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateVisitRequest) ToUseCaseRequest(actor domain.Actor) (*createVisit.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createVisit.Request{
		Actor:      actor,
		ClientID:   r.ClientID,
		EmployeeID: r.EmployeeID,
		ServiceID:  r.ServiceID,
		Date:       date,
		StartTime:  startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createVisit.Response) *VisitResponse {
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
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
