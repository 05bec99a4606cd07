package create_visit

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	createVisit "github.com/m04kA/SMC-SalonService/internal/usecase/create_visit"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные записи"
	msgOverbooked         = "на выбранное время зал полностью занят"
	msgNotConfigured      = "сотрудник не оказывает эту услугу"
	msgInvalidDate        = "на выбранную дату запись недоступна"
	msgInvalidTime        = "выбранное время вне часов работы зала или уже прошло"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	useCase CreateVisitUseCase
	logger  Logger
}

func NewHandler(useCase CreateVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /visits - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateVisitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /visits - Failed to parse request: %v", err)
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
		case errors.Is(err, createVisit.ErrOverbooked):
			h.logger.Warn("POST /visits - Overbooked: user_id=%d, employee_id=%d, date=%s, time=%s",
				actor.UserID, req.EmployeeID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgOverbooked)

		case errors.Is(err, createVisit.ErrNotConfigured):
			h.logger.Warn("POST /visits - Not configured: employee_id=%d, service_id=%d", req.EmployeeID, req.ServiceID)
			handlers.RespondUnprocessable(w, msgNotConfigured)

		case errors.Is(err, createVisit.ErrInvalidDate):
			h.logger.Warn("POST /visits - Invalid date: user_id=%d, date=%s", actor.UserID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createVisit.ErrInvalidTime):
			h.logger.Warn("POST /visits - Invalid time: user_id=%d, time=%s", actor.UserID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createVisit.ErrEmployeeNotFound):
			h.logger.Warn("POST /visits - Employee not found: employee_id=%d", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, createVisit.ErrServiceNotFound):
			h.logger.Warn("POST /visits - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createVisit.ErrInvalidInput):
			h.logger.Warn("POST /visits - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /visits - Failed to create visit: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visits - Visit created successfully: visit_id=%d, user_id=%d, hall_id=%d",
		result.ID, actor.UserID, result.HallID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
