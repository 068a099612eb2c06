package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidTimezone      = "неизвестная таймзона"
	msgCustomerNotFound     = "клиент не найден"
	msgContactNotFound      = "контакт не найден"
	msgPastStartTime        = "время начала встречи уже прошло"
	msgOutsideBusinessHours = "встреча выходит за рамки рабочих часов"
	msgSchedulingConflict   = "встреча пересекается с существующей"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if _, dateErr := time.Parse(domain.DateFormat, req.Date); dateErr != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createAppointment.ConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /appointments - Scheduling conflict: user_id=%d, %s, conflicting_id=%d",
				userID, conflict.EntityKind, conflict.ConflictingID)
			handlers.RespondError(w, http.StatusConflict, msgSchedulingConflict)

		case errors.Is(err, createAppointment.ErrSchedulingConflict):
			h.logger.Warn("POST /appointments - Scheduling conflict: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgSchedulingConflict)

		case errors.Is(err, createAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createAppointment.ErrContactNotFound):
			h.logger.Warn("POST /appointments - Contact not found: contact_id=%d", req.ContactID)
			handlers.RespondNotFound(w, msgContactNotFound)

		case errors.Is(err, createAppointment.ErrInvalidTimezone):
			h.logger.Warn("POST /appointments - Invalid timezone: %q", req.Timezone)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, createAppointment.ErrPastStartTime):
			h.logger.Warn("POST /appointments - Start time in the past: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgPastStartTime)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, req.Timezone))
}
