package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid visit status")
)

// ListVisitsRequest фильтры списка визитов, видимость определяется ролью пользователя
type ListVisitsRequest struct {
	Status *string    `json:"status,omitempty"`
	Date   *time.Time `json:"date,omitempty"`
	HallID *int64     `json:"hallId,omitempty"`
}

// VisitResponse визит для ответа API
type VisitResponse struct {
	ID              int64     `json:"id"`
	ClientID        int64     `json:"clientId"`
	EmployeeID      int64     `json:"employeeId"`
	ServiceID       int64     `json:"serviceId"`
	HallID          int64     `json:"hallId"`
	Date            string    `json:"date"`      // YYYY-MM-DD
	StartTime       string    `json:"startTime"` // HH:MM
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// VisitListResponse список визитов
type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}

// FromDomainVisit конвертирует domain.Visit в VisitResponse
func FromDomainVisit(v *domain.Visit) *VisitResponse {
	return &VisitResponse{
		ID:              v.ID,
		ClientID:        v.ClientID,
		EmployeeID:      v.EmployeeID,
		ServiceID:       v.ServiceID,
		HallID:          v.HallID,
		Date:            v.VisitDate.Format(domain.DateFormat),
		StartTime:       v.StartTime.String(),
		DurationMinutes: v.DurationMinutes,
		Status:          string(v.Status),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// FromDomainVisitList конвертирует список визитов
func FromDomainVisitList(visits []*domain.Visit) *VisitListResponse {
	result := &VisitListResponse{
		Visits: make([]VisitResponse, 0, len(visits)),
		Total:  len(visits),
	}
	for _, v := range visits {
		result.Visits = append(result.Visits, *FromDomainVisit(v))
	}
	return result
}

// ToDomainVisitStatus конвертирует строку в domain.VisitStatus
func ToDomainVisitStatus(status string) (domain.VisitStatus, error) {
	switch domain.VisitStatus(status) {
	case domain.StatusPlanned, domain.StatusCompleted:
		return domain.VisitStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
