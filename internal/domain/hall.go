package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Hall зал: помещение с часами работы [OpenTime, CloseTime) и вместимостью
type Hall struct {
	ID          int64
	Name        string
	Description string
	Location    string
	Capacity    int // сколько визитов может одновременно начинаться в один слот
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Fits проверяет, что интервал [start, start+duration) целиком внутри часов работы
func (h *Hall) Fits(start types.TimeString, durationMinutes int) bool {
	if start.IsBefore(h.OpenTime) {
		return false
	}
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}
	return !end.IsAfter(h.CloseTime)
}

// OnGrid проверяет, что start лежит на сетке зала с шагом durationMinutes
// от открытия и окно целиком помещается в часы работы
func (h *Hall) OnGrid(start types.TimeString, durationMinutes int) bool {
	if durationMinutes <= 0 || !h.Fits(start, durationMinutes) {
		return false
	}
	open, err := h.OpenTime.Minutes()
	if err != nil {
		return false
	}
	at, err := start.Minutes()
	if err != nil {
		return false
	}
	return (at-open)%durationMinutes == 0
}
