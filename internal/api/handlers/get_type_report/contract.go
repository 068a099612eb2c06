package get_type_report

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/service/reports/models"
)

type ReportService interface {
	CountByTypeAndMonth(ctx context.Context, apptType string, month time.Month) (*models.TypeMonthReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
