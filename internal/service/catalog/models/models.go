package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// HallRequest запрос на создание или изменение зала
type HallRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	OpenTime    string `json:"openTime"`  // HH:MM
	CloseTime   string `json:"closeTime"` // HH:MM
}

// HallResponse зал для ответа API
type HallResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Capacity    int       `json:"capacity"`
	OpenTime    string    `json:"openTime"`
	CloseTime   string    `json:"closeTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HallListResponse список залов
type HallListResponse struct {
	Halls []HallResponse `json:"halls"`
	Total int            `json:"total"`
}

// ServiceRequest запрос на создание или изменение услуги
type ServiceRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"durationMinutes"`
}

// ServiceResponse услуга для ответа API
type ServiceResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"durationMinutes"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// ToDomain конвертирует запрос в domain.Hall, время уже проверено
func (r *HallRequest) ToDomain(open, closeAt types.TimeString) *domain.Hall {
	return &domain.Hall{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Location:    strings.TrimSpace(r.Location),
		Capacity:    r.Capacity,
		OpenTime:    open,
		CloseTime:   closeAt,
	}
}

// ToDomain конвертирует запрос в domain.Service
func (r *ServiceRequest) ToDomain() *domain.Service {
	return &domain.Service{
		Name:            strings.TrimSpace(r.Name),
		Description:     strings.TrimSpace(r.Description),
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
	}
}

// FromDomainHall конвертирует domain.Hall в HallResponse
func FromDomainHall(h *domain.Hall) *HallResponse {
	return &HallResponse{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Location:    h.Location,
		Capacity:    h.Capacity,
		OpenTime:    h.OpenTime.String(),
		CloseTime:   h.CloseTime.String(),
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

// FromDomainService конвертирует domain.Service в ServiceResponse
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
