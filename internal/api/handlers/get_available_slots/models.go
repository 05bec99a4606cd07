package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
// Ошибки не возвращаются: при любой проблеме список пустой
type AvailableSlotsResponse struct {
	Slots []string `json:"slots"`
}

func emptyResponse() *AvailableSlotsResponse {
	return &AvailableSlotsResponse{Slots: []string{}}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{Slots: make([]string, 0, len(resp.Slots))}
	for _, slot := range resp.Slots {
		result.Slots = append(result.Slots, slot.String())
	}
	return result
}
