package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// validateHall проверяет зал и возвращает разобранные часы работы
func validateHall(req *models.HallRequest) (types.TimeString, types.TimeString, error) {
	if err := validateName(req.Name, req.Description); err != nil {
		return "", "", err
	}

	if req.Capacity < domain.MinHallCapacity || req.Capacity > domain.MaxHallCapacity {
		return "", "", fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinHallCapacity, domain.MaxHallCapacity)
	}

	open, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: openTime: %v", ErrInvalidInput, err)
	}
	closeAt, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: closeTime: %v", ErrInvalidInput, err)
	}
	if !open.IsBefore(closeAt) {
		return "", "", fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	return open, closeAt, nil
}

func validateService(req *models.ServiceRequest) error {
	if err := validateName(req.Name, req.Description); err != nil {
		return err
	}

	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	return nil
}

func validateName(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if utf8.RuneCountInString(description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is longer than %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	return nil
}
