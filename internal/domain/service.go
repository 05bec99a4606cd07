package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service услуга салона
type Service struct {
	ID              int64
	Name            string
	Description     string
	Price           decimal.Decimal
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SameExceptPrice сравнивает все поля, кроме цены и служебных
func (s *Service) SameExceptPrice(other *Service) bool {
	return s.Name == other.Name &&
		s.Description == other.Description &&
		s.DurationMinutes == other.DurationMinutes
}
