package get_type_report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/reports"
)

const (
	msgMissingType  = "не указан тип встречи, ожидается ?type="
	msgInvalidMonth = "некорректный месяц, ожидается ?month=1..12"
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

// Handle GET /api/v1/reports/appointment-types?type=Scrum&month=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	apptType := query.Get("type")
	if apptType == "" {
		h.logger.Warn("GET /reports/appointment-types - Missing type parameter")
		handlers.RespondBadRequest(w, msgMissingType)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /reports/appointment-types - Invalid month: %q", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.service.CountByTypeAndMonth(r.Context(), apptType, time.Month(month))
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /reports/appointment-types - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /reports/appointment-types - Failed to build report: type=%q, month=%d, error=%v",
				apptType, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/appointment-types - Report built: type=%q, month=%d, count=%d",
		result.Type, result.Month, result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
