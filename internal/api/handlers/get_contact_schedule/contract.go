package get_contact_schedule

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/reports/models"
)

type ReportService interface {
	ContactSchedule(ctx context.Context, contactID int64, timezone string) (*models.ContactScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
