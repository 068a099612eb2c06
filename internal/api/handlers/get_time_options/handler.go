package get_time_options

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getTimeOptions "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_time_options"
)

const (
	msgMissingDate     = "не указана дата, ожидается ?date=YYYY-MM-DD"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimezone = "неизвестная таймзона"
)

type Handler struct {
	useCase GetTimeOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/time-options?timezone=Europe/Moscow&date=2025-10-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawDate := query.Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /schedule/time-options - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /schedule/time-options - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	timezone := query.Get("timezone")

	result, err := h.useCase.Execute(r.Context(), &getTimeOptions.Request{
		Timezone: timezone,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getTimeOptions.ErrInvalidTimezone):
			h.logger.Warn("GET /schedule/time-options - Invalid timezone: %q", timezone)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, getTimeOptions.ErrInvalidInput):
			h.logger.Warn("GET /schedule/time-options - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /schedule/time-options - Failed to build time options: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/time-options - Time options built: date=%s, timezone=%q, hours=%d, unscaled=%v",
		rawDate, timezone, len(result.Hours), result.Unscaled)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
