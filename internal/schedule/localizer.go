package schedule

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Localize computes the company opening window on the calendar day of refDate
// as seen from the viewer's timezone.
//
// The open instant is built at (OpenHour:OpenMinute) company time on that day,
// the close instant is open plus DurationMinutes, and both are converted to
// the viewer zone preserving the absolute instant. Selectable hours are
// derived by stepping hour-by-hour across the localized span, so fractional
// timezone offsets are handled correctly.
//
// If the localized window crosses a calendar-day boundary in the viewer zone,
// the schedule falls back to the unscaled mode: the full 0-23 hour range with
// unrestricted minutes. A rolled-over day makes "first hour" and "last hour"
// ambiguous, so the safe universal range is used instead.
//
// Localize is pure and total: the company timezone is validated at startup,
// never here.
func Localize(hours domain.CompanyHours, viewer *time.Location, refDate time.Time) domain.LocalizedSchedule {
	year, month, day := refDate.Date()

	companyOpen := time.Date(year, month, day, hours.OpenHour, hours.OpenMinute, 0, 0, hours.Location)
	companyClose := companyOpen.Add(time.Duration(hours.DurationMinutes) * time.Minute)

	localOpen := companyOpen.In(viewer)
	localClose := companyClose.In(viewer)

	if crossesDate(localOpen, localClose) {
		return domain.LocalizedSchedule{
			Hours:             fullHourRange(),
			OpenMinuteOffset:  0,
			CloseMinuteOffset: domain.MinutesPerHour,
			LocalOpen:         localOpen,
			LocalClose:        localClose,
			Unscaled:          true,
		}
	}

	// Every distinct hour-of-day the window touches is a valid start hour.
	// Stepping from the top of the opening hour keeps fractional offsets
	// correct and picks up a partial closing hour: a close at 19:30 still
	// contributes hour 19, while a close exactly on the hour is excluded -
	// an appointment cannot start at the instant the company closes.
	hourStart := localOpen.Add(-time.Duration(localOpen.Minute()) * time.Minute)
	selectable := make([]int, 0, hours.DurationMinutes/domain.MinutesPerHour+2)
	for t := hourStart; t.Before(localClose); t = t.Add(time.Hour) {
		selectable = append(selectable, t.Hour())
	}

	closeOffset := localClose.Minute()
	if closeOffset == 0 {
		// Close on a minute-0 boundary: the whole prior hour is fully open.
		closeOffset = domain.MinutesPerHour
	}

	return domain.LocalizedSchedule{
		Hours:             selectable,
		OpenMinuteOffset:  localOpen.Minute(),
		CloseMinuteOffset: closeOffset,
		LocalOpen:         localOpen,
		LocalClose:        localClose,
	}
}

// crossesDate reports whether the two instants fall on different calendar
// days of their (shared) location.
func crossesDate(open, close time.Time) bool {
	y1, m1, d1 := open.Date()
	y2, m2, d2 := close.Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}

func fullHourRange() []int {
	hours := make([]int, domain.HoursPerDay)
	for i := range hours {
		hours[i] = i
	}
	return hours
}
