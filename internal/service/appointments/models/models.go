package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AppointmentResponse ответ с данными встречи
type AppointmentResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type"`
	CustomerID  int64  `json:"customerId"`
	ContactID   int64  `json:"contactId"`
	UserID      int64  `json:"userId"`

	// Время в часовом поясе наблюдателя
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00"
	EndTime         string `json:"endTime"`   // "11:30"
	DurationMinutes int    `json:"durationMinutes"`
	Timezone        string `json:"timezone"`

	CreatedBy     string    `json:"createdBy"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком встреч
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO,
// переводя моменты времени в часовой пояс наблюдателя.
func FromDomainAppointment(a *domain.Appointment, viewer *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}

	start := a.Start.In(viewer)
	end := a.End.In(viewer)

	return &AppointmentResponse{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		Location:        a.Location,
		Type:            a.Type,
		CustomerID:      a.CustomerID,
		ContactID:       a.ContactID,
		UserID:          a.UserID,
		Date:            start.Format(domain.DateFormat),
		StartTime:       start.Format(domain.TimeFormat),
		EndTime:         end.Format(domain.TimeFormat),
		DurationMinutes: a.DurationMinutes(),
		Timezone:        viewer.String(),
		CreatedBy:       a.CreatedBy,
		LastUpdatedBy:   a.LastUpdatedBy,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointments конвертирует список domain моделей в DTO
func FromDomainAppointments(items []*domain.Appointment, viewer *time.Location) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(item, viewer))
	}
	return resp
}

// ParseMonth валидирует номер месяца из query-параметра
func ParseMonth(raw string) (time.Month, error) {
	m, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid month: %v", err)
	}
	if m < 1 || m > 12 {
		return 0, fmt.Errorf("month out of range: %d", m)
	}
	return time.Month(m), nil
}
