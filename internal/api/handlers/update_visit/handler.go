package update_visit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	updateVisit "github.com/m04kA/SMC-SalonService/internal/usecase/update_visit"
)

const (
	msgInvalidVisitID     = "некорректный ID визита"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные записи"
	msgVisitNotFound      = "визит не найден"
	msgForbidden          = "нет доступа к этому визиту"
	msgVisitCompleted     = "визит уже завершён и не может быть изменён"
	msgOverbooked         = "на выбранное время зал полностью занят"
	msgNotConfigured      = "сотрудник не оказывает эту услугу"
	msgInvalidDate        = "на выбранную дату запись недоступна"
	msgInvalidTime        = "выбранное время вне часов работы зала или уже прошло"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	useCase UpdateVisitUseCase
	logger  Logger
}

func NewHandler(useCase UpdateVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visits/{visitId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /visits/{visitId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	visitID, err := strconv.ParseInt(mux.Vars(r)["visitId"], 10, 64)
	if err != nil || visitID <= 0 {
		h.logger.Warn("POST /visits/{visitId} - Invalid visit ID: %s", mux.Vars(r)["visitId"])
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	var req UpdateVisitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visits/%d - Invalid request body: %v", visitID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, visitID)
	if err != nil {
		h.logger.Warn("POST /visits/%d - Failed to parse request: %v", visitID, err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDateFormat)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateVisit.ErrVisitNotFound):
			h.logger.Warn("POST /visits/%d - Visit not found", visitID)
			handlers.RespondNotFound(w, msgVisitNotFound)

		case errors.Is(err, updateVisit.ErrForbidden):
			h.logger.Warn("POST /visits/%d - Access denied: user_id=%d", visitID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateVisit.ErrVisitCompleted):
			h.logger.Warn("POST /visits/%d - Visit already completed", visitID)
			handlers.RespondConflict(w, msgVisitCompleted)

		case errors.Is(err, updateVisit.ErrOverbooked):
			h.logger.Warn("POST /visits/%d - Overbooked: date=%s, time=%s", visitID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgOverbooked)

		case errors.Is(err, updateVisit.ErrNotConfigured):
			h.logger.Warn("POST /visits/%d - Not configured: employee_id=%d, service_id=%d",
				visitID, req.EmployeeID, req.ServiceID)
			handlers.RespondUnprocessable(w, msgNotConfigured)

		case errors.Is(err, updateVisit.ErrInvalidDate):
			h.logger.Warn("POST /visits/%d - Invalid date: %s", visitID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, updateVisit.ErrInvalidTime):
			h.logger.Warn("POST /visits/%d - Invalid time: %s", visitID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, updateVisit.ErrEmployeeNotFound):
			h.logger.Warn("POST /visits/%d - Employee not found: employee_id=%d", visitID, req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, updateVisit.ErrServiceNotFound):
			h.logger.Warn("POST /visits/%d - Service not found: service_id=%d", visitID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateVisit.ErrInvalidInput):
			h.logger.Warn("POST /visits/%d - Invalid input: %v", visitID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /visits/%d - Failed to update visit: user_id=%d, error=%v", visitID, actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visits/%d - Visit updated successfully: user_id=%d, hall_id=%d",
		visitID, actor.UserID, result.HallID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
