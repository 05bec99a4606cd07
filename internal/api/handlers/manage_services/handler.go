package manage_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные услуги"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceInUse       = "на услугу есть записи, можно изменить только цену"
	msgForbidden          = "недостаточно прав"
)

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// List GET /api/v1/services
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/services/{serviceId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceID(w, r, "GET")
	if !ok {
		return
	}

	result, err := h.catalog.GetService(r.Context(), serviceID)
	if err != nil {
		h.respondServiceError(w, "GET", serviceID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /services - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalog.CreateService(r.Context(), actor, &req)
	if err != nil {
		h.respondServiceError(w, "POST", 0, err)
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%d, duration=%d", result.ID, result.DurationMinutes)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/services/{serviceId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /services/{serviceId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceID, ok := h.serviceID(w, r, "PUT")
	if !ok {
		return
	}

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/%d - Invalid request body: %v", serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalog.UpdateService(r.Context(), actor, serviceID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT", serviceID, err)
		return
	}

	h.logger.Info("PUT /services/%d - Service updated", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) serviceID(w http.ResponseWriter, r *http.Request, method string) (int64, bool) {
	raw := mux.Vars(r)["serviceId"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("%s /services/{serviceId} - Invalid service ID: %s", method, raw)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, method string, serviceID int64, err error) {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("%s /services/%d - Service not found", method, serviceID)
		handlers.RespondNotFound(w, msgServiceNotFound)
	case errors.Is(err, catalog.ErrServiceInUse):
		h.logger.Warn("%s /services/%d - Service in use", method, serviceID)
		handlers.RespondConflict(w, msgServiceInUse)
	case errors.Is(err, catalog.ErrForbidden):
		h.logger.Warn("%s /services/%d - Access denied", method, serviceID)
		handlers.RespondForbidden(w, msgForbidden)
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s /services/%d - Invalid input: %v", method, serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s /services/%d - Internal error: %v", method, serviceID, err)
		handlers.RespondInternalError(w)
	}
}
