package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// TypeMonthReportResponse количество встреч заданного типа в заданном месяце
type TypeMonthReportResponse struct {
	Type  string `json:"type"`
	Month int    `json:"month"`
	Count int    `json:"count"`
}

// ScheduleEntry одна встреча в расписании контакта
type ScheduleEntry struct {
	AppointmentID int64  `json:"appointmentId"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	Description   string `json:"description,omitempty"`
	CustomerID    int64  `json:"customerId"`
	Date          string `json:"date"`      // "2025-10-15"
	StartTime     string `json:"startTime"` // "10:00"
	EndTime       string `json:"endTime"`   // "11:30"
}

// ContactScheduleResponse расписание встреч контакта
type ContactScheduleResponse struct {
	ContactID   int64           `json:"contactId"`
	ContactName string          `json:"contactName"`
	Timezone    string          `json:"timezone"`
	Schedule    []ScheduleEntry `json:"schedule"`
}

// ScheduleFromDomain строит расписание контакта из списка его встреч,
// приводя время к часовому поясу наблюдателя.
func ScheduleFromDomain(contact *domain.Contact, items []*domain.Appointment, viewer *time.Location) *ContactScheduleResponse {
	resp := &ContactScheduleResponse{
		ContactID:   contact.ID,
		ContactName: contact.Name,
		Timezone:    viewer.String(),
		Schedule:    make([]ScheduleEntry, 0, len(items)),
	}
	for _, item := range items {
		start := item.Start.In(viewer)
		end := item.End.In(viewer)
		resp.Schedule = append(resp.Schedule, ScheduleEntry{
			AppointmentID: item.ID,
			Title:         item.Title,
			Type:          item.Type,
			Description:   item.Description,
			CustomerID:    item.CustomerID,
			Date:          start.Format(domain.DateFormat),
			StartTime:     start.Format(domain.TimeFormat),
			EndTime:       end.Format(domain.TimeFormat),
		})
	}
	return resp
}
