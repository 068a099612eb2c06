package get_time_options

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getTimeOptions "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_time_options"
)

// TimeOptionsResponse HTTP response model
type TimeOptionsResponse struct {
	Date       string       `json:"date"`
	Timezone   string       `json:"timezone"`
	Unscaled   bool         `json:"unscaled"`
	LocalOpen  string       `json:"localOpen"`  // "08:00"
	LocalClose string       `json:"localClose"` // "22:00"
	Hours      []HourOption `json:"hours"`
}

// HourOption час начала и допустимые минуты внутри него
type HourOption struct {
	Hour    int      `json:"hour"`
	Minutes []string `json:"minutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeOptions.Response) *TimeOptionsResponse {
	hours := make([]HourOption, 0, len(resp.Hours))
	for _, h := range resp.Hours {
		hours = append(hours, HourOption{
			Hour:    h.Hour,
			Minutes: h.Minutes,
		})
	}

	return &TimeOptionsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		Timezone:   resp.Timezone,
		Unscaled:   resp.Unscaled,
		LocalOpen:  resp.LocalOpen.Format(domain.TimeFormat),
		LocalClose: resp.LocalClose.Format(domain.TimeFormat),
		Hours:      hours,
	}
}
