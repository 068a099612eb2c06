package domain

// Business validation constants
const (
	MinAppointmentDurationMinutes = 5
	MaxAppointmentDurationMinutes = 480 // 8 hours
	MaxOpenDurationMinutes        = 1440
	MaxTitleLength                = 100
	MaxDescriptionLength          = 500
	MaxLocationLength             = 100
	MaxTypeLength                 = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Hour range constants
const (
	MinutesPerHour = 60
	HoursPerDay    = 24
)
