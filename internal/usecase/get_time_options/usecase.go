package get_time_options

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/schedule"
)

// UseCase use case для получения опций выбора времени начала встречи
// Рабочие часы компании локализуются в таймзону клиента на указанную дату
type UseCase struct {
	companyHours domain.CompanyHours
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(companyHours domain.CompanyHours, logger Logger) *UseCase {
	return &UseCase{
		companyHours: companyHours,
		logger:       logger,
	}
}

// Execute выполняет use case получения опций времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeOptions: timezone=%s, date=%s", req.Timezone, req.Date.Format(domain.DateFormat))

	if req.Timezone == "" {
		return nil, fmt.Errorf("%w: timezone is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	viewerLoc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		uc.logger.Warn("GetTimeOptions: unknown timezone %q", req.Timezone)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, req.Timezone)
	}

	localized := schedule.Localize(uc.companyHours, viewerLoc, req.Date)
	options := schedule.BuildMinuteOptions(localized)

	hours := make([]HourOption, 0, len(localized.Hours))
	for _, hour := range localized.Hours {
		hours = append(hours, HourOption{
			Hour:    hour,
			Minutes: schedule.MinutesForHour(localized, options, hour),
		})
	}

	if localized.Unscaled {
		uc.logger.Info("GetTimeOptions: window crosses a calendar day in %s, falling back to unscaled hours", req.Timezone)
	}

	return &Response{
		Date:       req.Date,
		Timezone:   req.Timezone,
		Unscaled:   localized.Unscaled,
		LocalOpen:  localized.LocalOpen,
		LocalClose: localized.LocalClose,
		Hours:      hours,
	}, nil
}
