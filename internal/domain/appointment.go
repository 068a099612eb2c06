package domain

import "time"

// Appointment represents a scheduled meeting between a customer and a contact.
// Start and End are absolute instants stored in UTC; End is strictly after Start.
// The interval is half-open [Start, End), so back-to-back appointments never conflict.
type Appointment struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Type        string
	CustomerID  int64
	ContactID   int64
	UserID      int64
	Start       time.Time
	End         time.Time

	CreatedBy     string
	LastUpdatedBy string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Duration returns the length of the appointment.
func (a *Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// DurationMinutes returns the length of the appointment in whole minutes.
func (a *Appointment) DurationMinutes() int {
	return int(a.End.Sub(a.Start) / time.Minute)
}

// Interval returns the half-open interval of the appointment.
func (a *Appointment) Interval() (start, end time.Time) {
	return a.Start, a.End
}

// AppointmentsFilter фильтр для получения списка встреч
type AppointmentsFilter struct {
	CustomerID *int64      // Фильтр по клиенту (опционально)
	ContactID  *int64      // Фильтр по контакту (опционально)
	Type       *string     // Фильтр по типу встречи (опционально)
	Month      *time.Month // Фильтр по месяцу начала (опционально)
}
