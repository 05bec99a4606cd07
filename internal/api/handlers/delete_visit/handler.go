package delete_visit

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
	msgVisitCompleted = "завершённый визит нельзя удалить"
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

// Handle POST /api/v1/visits/{visitId}/delete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /visits/{visitId}/delete - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	visitID, err := strconv.ParseInt(mux.Vars(r)["visitId"], 10, 64)
	if err != nil || visitID <= 0 {
		h.logger.Warn("POST /visits/{visitId}/delete - Invalid visit ID: %s", mux.Vars(r)["visitId"])
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	if err := h.service.Delete(r.Context(), actor, visitID); err != nil {
		switch {
		case errors.Is(err, visits.ErrVisitNotFound):
			h.logger.Warn("POST /visits/%d/delete - Visit not found", visitID)
			handlers.RespondNotFound(w, msgVisitNotFound)
		case errors.Is(err, visits.ErrForbidden):
			h.logger.Warn("POST /visits/%d/delete - Access denied: user_id=%d", visitID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, visits.ErrVisitCompleted):
			h.logger.Warn("POST /visits/%d/delete - Visit already completed", visitID)
			handlers.RespondConflict(w, msgVisitCompleted)
		default:
			h.logger.Error("POST /visits/%d/delete - Failed to delete visit: %v", visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visits/%d/delete - Visit deleted: user_id=%d", visitID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, DeleteVisitResponse{ID: visitID, Deleted: true})
}
