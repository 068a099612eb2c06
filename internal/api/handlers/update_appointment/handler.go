package update_appointment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID встречи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidTimezone      = "неизвестная таймзона"
	msgNotFound             = "встреча не найдена"
	msgCustomerNotFound     = "клиент не найден"
	msgContactNotFound      = "контакт не найден"
	msgPastStartTime        = "время начала встречи уже прошло"
	msgOutsideBusinessHours = "встреча выходит за рамки рабочих часов"
	msgSchedulingConflict   = "встреча пересекается с существующей"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, userID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Failed to parse request: %v", err)
		if _, dateErr := time.Parse(domain.DateFormat, req.Date); dateErr != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *updateAppointment.ConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("PUT /appointments/{id} - Scheduling conflict: appointment_id=%d, %s, conflicting_id=%d",
				appointmentID, conflict.EntityKind, conflict.ConflictingID)
			handlers.RespondError(w, http.StatusConflict, msgSchedulingConflict)

		case errors.Is(err, updateAppointment.ErrSchedulingConflict):
			h.logger.Warn("PUT /appointments/{id} - Scheduling conflict: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgSchedulingConflict)

		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrCustomerNotFound):
			h.logger.Warn("PUT /appointments/{id} - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, updateAppointment.ErrContactNotFound):
			h.logger.Warn("PUT /appointments/{id} - Contact not found: contact_id=%d", req.ContactID)
			handlers.RespondNotFound(w, msgContactNotFound)

		case errors.Is(err, updateAppointment.ErrInvalidTimezone):
			h.logger.Warn("PUT /appointments/{id} - Invalid timezone: %q", req.Timezone)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, updateAppointment.ErrPastStartTime):
			h.logger.Warn("PUT /appointments/{id} - Start time in the past: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgPastStartTime)

		case errors.Is(err, updateAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("PUT /appointments/{id} - Outside business hours: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated successfully: appointment_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, req.Timezone))
}
