package manage_employees

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/employees"
	"github.com/m04kA/SMC-SalonService/internal/service/employees/models"
)

const (
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные сотрудника"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgHallNotFound       = "указанный зал не найден"
	msgServiceNotFound    = "указанная услуга не найдена"
	msgUserAlreadyExists  = "пользователь уже зарегистрирован как сотрудник"
	msgForbidden          = "недостаточно прав"
)

type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/employees
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /employees - Failed to list employees: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/employees/{employeeId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.employeeID(w, r, "GET")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), employeeID)
	if err != nil {
		h.respondServiceError(w, "GET", employeeID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/employees
// Вместе с сотрудником создаются связи для всех пар (зал, услуга) из запроса
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /employees - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.EmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		h.respondServiceError(w, "POST", 0, err)
		return
	}

	h.logger.Info("POST /employees - Employee created: employee_id=%d, links=%d", result.ID, len(result.Links))
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/employees/{employeeId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /employees/{employeeId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	employeeID, ok := h.employeeID(w, r, "PUT")
	if !ok {
		return
	}

	var req models.EmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /employees/%d - Invalid request body: %v", employeeID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), actor, employeeID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT", employeeID, err)
		return
	}

	h.logger.Info("PUT /employees/%d - Employee updated: links=%d", employeeID, len(result.Links))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) employeeID(w http.ResponseWriter, r *http.Request, method string) (int64, bool) {
	raw := mux.Vars(r)["employeeId"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("%s /employees/{employeeId} - Invalid employee ID: %s", method, raw)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, method string, employeeID int64, err error) {
	switch {
	case errors.Is(err, employees.ErrEmployeeNotFound):
		h.logger.Warn("%s /employees/%d - Employee not found", method, employeeID)
		handlers.RespondNotFound(w, msgEmployeeNotFound)
	case errors.Is(err, employees.ErrHallNotFound):
		h.logger.Warn("%s /employees/%d - Hall not found: %v", method, employeeID, err)
		handlers.RespondBadRequest(w, msgHallNotFound)
	case errors.Is(err, employees.ErrServiceNotFound):
		h.logger.Warn("%s /employees/%d - Service not found: %v", method, employeeID, err)
		handlers.RespondBadRequest(w, msgServiceNotFound)
	case errors.Is(err, employees.ErrUserAlreadyEmployee):
		h.logger.Warn("%s /employees/%d - User already employee", method, employeeID)
		handlers.RespondConflict(w, msgUserAlreadyExists)
	case errors.Is(err, employees.ErrForbidden):
		h.logger.Warn("%s /employees/%d - Access denied", method, employeeID)
		handlers.RespondForbidden(w, msgForbidden)
	case errors.Is(err, employees.ErrInvalidInput):
		h.logger.Warn("%s /employees/%d - Invalid input: %v", method, employeeID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s /employees/%d - Internal error: %v", method, employeeID, err)
		handlers.RespondInternalError(w)
	}
}
