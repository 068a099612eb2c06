package get_contacts

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/contacts/models"
)

type ContactService interface {
	List(ctx context.Context) (*models.ContactListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
