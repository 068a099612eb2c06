package domain

import "time"

// CompanyHours is the fixed daily opening window of the company, defined once
// in the company's own timezone. Loaded from configuration at startup and
// immutable afterwards.
type CompanyHours struct {
	Location        *time.Location // validated company timezone
	OpenHour        int            // local company hour, 0-23
	OpenMinute      int            // local company minute, 0-59
	DurationMinutes int            // open-to-close span, > 0
}

// LocalizedSchedule is the company opening window re-expressed in a viewer's
// timezone for a specific calendar day. Recomputed on demand, never persisted.
//
// Hours lists every selectable start hour-of-day in ascending order. When the
// localized window crosses a calendar-day boundary the schedule degrades to
// the unscaled mode: Hours becomes the full 0-23 range and minute selection
// is unrestricted.
type LocalizedSchedule struct {
	Hours             []int
	OpenMinuteOffset  int // minute within the first hour at which the window opens
	CloseMinuteOffset int // minute within the last hour at which the window closes; 60 = whole prior hour open
	LocalOpen         time.Time
	LocalClose        time.Time
	Unscaled          bool
}

// FirstHour returns the first selectable hour.
func (s *LocalizedSchedule) FirstHour() int {
	return s.Hours[0]
}

// LastHour returns the last selectable hour.
func (s *LocalizedSchedule) LastHour() int {
	return s.Hours[len(s.Hours)-1]
}

// OverlapPolicy controls which entity kinds are checked for conflicting
// appointments. Global configuration, read-only at request time.
type OverlapPolicy struct {
	CheckByCustomer bool
	CheckByContact  bool
}

// Disabled returns true if no overlap checking is configured at all.
func (p OverlapPolicy) Disabled() bool {
	return !p.CheckByCustomer && !p.CheckByContact
}
