package employees

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/employees/models"
)

func validateRequest(req *models.EmployeeRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.FullName)
	if name == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: fullName is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if utf8.RuneCountInString(req.PhoneNumber) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phoneNumber is longer than %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}
	if utf8.RuneCountInString(req.Position) > domain.MaxNameLength {
		return fmt.Errorf("%w: position is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	for _, id := range req.HallIDs {
		if id <= 0 {
			return fmt.Errorf("%w: hallIds must be positive", ErrInvalidInput)
		}
	}
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceIds must be positive", ErrInvalidInput)
		}
	}

	return nil
}
