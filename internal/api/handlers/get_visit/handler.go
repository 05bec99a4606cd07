package get_visit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/visits"
)

const (
	msgInvalidVisitID = "некорректный ID визита"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgVisitNotFound  = "визит не найден"
	msgForbidden      = "нет доступа к этому визиту"
)

type Handler struct {
	service VisitService
	logger  Logger
}

func NewHandler(service VisitService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/visits/{visitId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /visits/{visitId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	visitID, err := strconv.ParseInt(mux.Vars(r)["visitId"], 10, 64)
	if err != nil || visitID <= 0 {
		h.logger.Warn("GET /visits/{visitId} - Invalid visit ID: %s", mux.Vars(r)["visitId"])
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	visit, err := h.service.GetByID(r.Context(), actor, visitID)
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrVisitNotFound):
			h.logger.Warn("GET /visits/%d - Visit not found", visitID)
			handlers.RespondNotFound(w, msgVisitNotFound)
		case errors.Is(err, visits.ErrForbidden):
			h.logger.Warn("GET /visits/%d - Access denied: user_id=%d", visitID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("GET /visits/%d - Failed to get visit: %v", visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /visits/%d - Visit retrieved: user_id=%d", visitID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, visit)
}
