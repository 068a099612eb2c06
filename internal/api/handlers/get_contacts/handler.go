package get_contacts

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/contacts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /contacts - Failed to list contacts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /contacts - Contacts retrieved successfully: count=%d", len(result.Contacts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
