package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: employee (или provider), service, date (YYYY-MM-DD)
// Всегда 200: при некорректных параметрах или ошибке возвращается пустой список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	employeeStr := query.Get("employee")
	if employeeStr == "" {
		employeeStr = query.Get("provider")
	}

	employeeID, err := strconv.ParseInt(employeeStr, 10, 64)
	if err != nil || employeeID <= 0 {
		h.logger.Warn("GET /available-slots - Invalid employee: %q", employeeStr)
		handlers.RespondJSON(w, http.StatusOK, emptyResponse())
		return
	}

	serviceID, err := strconv.ParseInt(query.Get("service"), 10, 64)
	if err != nil || serviceID <= 0 {
		h.logger.Warn("GET /available-slots - Invalid service: %q", query.Get("service"))
		handlers.RespondJSON(w, http.StatusOK, emptyResponse())
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %q", query.Get("date"))
		handlers.RespondJSON(w, http.StatusOK, emptyResponse())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		EmployeeID: employeeID,
		ServiceID:  serviceID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrNotConfigured),
			errors.Is(err, getAvailableSlots.ErrEmployeeNotFound),
			errors.Is(err, getAvailableSlots.ErrServiceNotFound),
			errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - No slots: employee=%d, service=%d, reason=%v",
				employeeID, serviceID, err)
		default:
			h.logger.Error("GET /available-slots - Failed to get slots: employee=%d, service=%d, error=%v",
				employeeID, serviceID, err)
		}
		handlers.RespondJSON(w, http.StatusOK, emptyResponse())
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - %d slots: employee=%d, service=%d, date=%s",
		len(response.Slots), employeeID, serviceID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, response)
}
