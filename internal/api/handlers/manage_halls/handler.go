package manage_halls

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
	msgInvalidHallID      = "некорректный ID зала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные зала"
	msgHallNotFound       = "зал не найден"
	msgForbidden          = "недостаточно прав"
)

type Handler struct {
	service HallService
	logger  Logger
}

func NewHandler(service HallService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/halls
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListHalls(r.Context())
	if err != nil {
		h.logger.Error("GET /halls - Failed to list halls: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/halls/{hallId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	hallID, ok := h.hallID(w, r, "GET")
	if !ok {
		return
	}

	result, err := h.service.GetHall(r.Context(), hallID)
	if err != nil {
		h.respondServiceError(w, "GET", hallID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/halls
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /halls - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.HallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /halls - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateHall(r.Context(), actor, &req)
	if err != nil {
		h.respondServiceError(w, "POST", 0, err)
		return
	}

	h.logger.Info("POST /halls - Hall created: hall_id=%d, capacity=%d", result.ID, result.Capacity)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/halls/{hallId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /halls/{hallId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	hallID, ok := h.hallID(w, r, "PUT")
	if !ok {
		return
	}

	var req models.HallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /halls/%d - Invalid request body: %v", hallID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateHall(r.Context(), actor, hallID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT", hallID, err)
		return
	}

	h.logger.Info("PUT /halls/%d - Hall updated", hallID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) hallID(w http.ResponseWriter, r *http.Request, method string) (int64, bool) {
	raw := mux.Vars(r)["hallId"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("%s /halls/{hallId} - Invalid hall ID: %s", method, raw)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, method string, hallID int64, err error) {
	switch {
	case errors.Is(err, catalog.ErrHallNotFound):
		h.logger.Warn("%s /halls/%d - Hall not found", method, hallID)
		handlers.RespondNotFound(w, msgHallNotFound)
	case errors.Is(err, catalog.ErrForbidden):
		h.logger.Warn("%s /halls/%d - Access denied", method, hallID)
		handlers.RespondForbidden(w, msgForbidden)
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s /halls/%d - Invalid input: %v", method, hallID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s /halls/%d - Internal error: %v", method, hallID, err)
		handlers.RespondInternalError(w)
	}
}
