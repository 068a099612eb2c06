package get_contact_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/reports"
)

const (
	msgInvalidContactID = "некорректный ID контакта"
	msgNotFound         = "контакт не найден"
	msgInvalidTimezone  = "неизвестная таймзона"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/contacts/{contactId}/schedule?timezone=Europe/Moscow
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contactID, err := strconv.ParseInt(vars["contactId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reports/contacts/{id}/schedule - Invalid contact ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidContactID)
		return
	}

	timezone := r.URL.Query().Get("timezone")

	result, err := h.service.ContactSchedule(r.Context(), contactID, timezone)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrContactNotFound):
			h.logger.Warn("GET /reports/contacts/{id}/schedule - Contact not found: contact_id=%d", contactID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /reports/contacts/{id}/schedule - Invalid timezone: %q", timezone)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		default:
			h.logger.Error("GET /reports/contacts/{id}/schedule - Failed to build schedule: contact_id=%d, error=%v",
				contactID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/contacts/{id}/schedule - Schedule built: contact_id=%d, appointments=%d",
		contactID, len(result.Schedule))
	handlers.RespondJSON(w, http.StatusOK, result)
}
