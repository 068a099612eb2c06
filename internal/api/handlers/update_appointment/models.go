package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest HTTP request model
type UpdateAppointmentRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Location        string `json:"location,omitempty"`
	Type            string `json:"type"`
	CustomerID      int64  `json:"customerId"`
	ContactID       int64  `json:"contactId"`
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Timezone        string `json:"timezone"` // IANA, например "Europe/Moscow"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Location        string `json:"location,omitempty"`
	Type            string `json:"type"`
	CustomerID      int64  `json:"customerId"`
	ContactID       int64  `json:"contactId"`
	UserID          int64  `json:"userId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Timezone        string `json:"timezone"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID, userID int64) (*updateAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(domain.TimeFormat, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &updateAppointment.Request{
		ID:              appointmentID,
		UserID:          userID,
		Title:           r.Title,
		Description:     r.Description,
		Location:        r.Location,
		Type:            r.Type,
		CustomerID:      r.CustomerID,
		ContactID:       r.ContactID,
		Date:            date,
		Hour:            start.Hour(),
		Minute:          start.Minute(),
		DurationMinutes: r.DurationMinutes,
		Timezone:        r.Timezone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Моменты времени приводятся к таймзоне из запроса.
func FromUseCaseResponse(resp *updateAppointment.Response, timezone string) *AppointmentResponse {
	viewer, err := time.LoadLocation(timezone)
	if err != nil {
		viewer = time.UTC
	}

	start := resp.Start.In(viewer)
	end := resp.End.In(viewer)

	return &AppointmentResponse{
		ID:              resp.ID,
		Title:           resp.Title,
		Description:     resp.Description,
		Location:        resp.Location,
		Type:            resp.Type,
		CustomerID:      resp.CustomerID,
		ContactID:       resp.ContactID,
		UserID:          resp.UserID,
		Date:            start.Format(domain.DateFormat),
		StartTime:       start.Format(domain.TimeFormat),
		EndTime:         end.Format(domain.TimeFormat),
		DurationMinutes: resp.DurationMinutes,
		Timezone:        viewer.String(),
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
