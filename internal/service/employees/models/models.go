package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// EmployeeRequest запрос на создание или изменение сотрудника
type EmployeeRequest struct {
	UserID      int64   `json:"userId"`
	FullName    string  `json:"fullName"`
	PhoneNumber string  `json:"phoneNumber"`
	Position    string  `json:"position"`
	HallIDs     []int64 `json:"hallIds"`
	ServiceIDs  []int64 `json:"serviceIds"`
}

// LinkResponse связь "услуга в зале"
type LinkResponse struct {
	ServiceID int64 `json:"serviceId"`
	HallID    int64 `json:"hallId"`
}

// EmployeeResponse сотрудник для ответа API
type EmployeeResponse struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"userId"`
	FullName    string         `json:"fullName"`
	PhoneNumber string         `json:"phoneNumber,omitempty"`
	Position    string         `json:"position,omitempty"`
	HallIDs     []int64        `json:"hallIds"`
	ServiceIDs  []int64        `json:"serviceIds"`
	Links       []LinkResponse `json:"links"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// EmployeeListResponse список сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}

// ToDomain конвертирует запрос в domain.Employee
func (r *EmployeeRequest) ToDomain() *domain.Employee {
	return &domain.Employee{
		UserID:      r.UserID,
		FullName:    strings.TrimSpace(r.FullName),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		Position:    strings.TrimSpace(r.Position),
		HallIDs:     uniqueIDs(r.HallIDs),
		ServiceIDs:  uniqueIDs(r.ServiceIDs),
	}
}

// FromDomainEmployee конвертирует domain.Employee и его связи в ответ
func FromDomainEmployee(e *domain.Employee, links []*domain.ServiceHall) *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		FullName:    e.FullName,
		PhoneNumber: e.PhoneNumber,
		Position:    e.Position,
		HallIDs:     nonNil(e.HallIDs),
		ServiceIDs:  nonNil(e.ServiceIDs),
		Links:       make([]LinkResponse, 0, len(links)),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	for _, l := range links {
		resp.Links = append(resp.Links, LinkResponse{ServiceID: l.ServiceID, HallID: l.HallID})
	}
	return resp
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
