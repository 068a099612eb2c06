package schedule

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// MinuteOptions holds the selectable minute sets for the hour selector,
// as zero-padded two-digit strings for display.
type MinuteOptions struct {
	Default     []string // full 00-59 range
	OpeningHour []string // [openMinuteOffset..59]
	ClosingHour []string // [00..closeMinuteOffset)
}

// BuildMinuteOptions derives the three minute sets from a localized schedule.
// Under the unscaled mode all three collapse to the default full range.
func BuildMinuteOptions(s domain.LocalizedSchedule) MinuteOptions {
	def := minuteRange(0, domain.MinutesPerHour)

	if s.Unscaled {
		return MinuteOptions{
			Default:     def,
			OpeningHour: def,
			ClosingHour: def,
		}
	}

	return MinuteOptions{
		Default:     def,
		OpeningHour: minuteRange(s.OpenMinuteOffset, domain.MinutesPerHour),
		ClosingHour: minuteRange(0, s.CloseMinuteOffset),
	}
}

// MinutesForHour returns the minute set to present for the selected hour:
// the opening set for the first selectable hour, the closing set for the
// last, the default set otherwise. Pure re-population, no side effects.
func MinutesForHour(s domain.LocalizedSchedule, opts MinuteOptions, hour int) []string {
	if s.Unscaled {
		return opts.Default
	}
	switch hour {
	case s.FirstHour():
		return opts.OpeningHour
	case s.LastHour():
		return opts.ClosingHour
	default:
		return opts.Default
	}
}

// minuteRange returns [from, to) as zero-padded two-digit strings.
func minuteRange(from, to int) []string {
	minutes := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		minutes = append(minutes, fmt.Sprintf("%02d", i))
	}
	return minutes
}
