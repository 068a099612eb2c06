package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

func TestBuildMinuteOptions(t *testing.T) {
	s := domain.LocalizedSchedule{
		Hours:             []int{9, 10, 11},
		OpenMinuteOffset:  30,
		CloseMinuteOffset: 45,
	}

	opts := BuildMinuteOptions(s)

	require.Len(t, opts.Default, 60)
	assert.Equal(t, "00", opts.Default[0])
	assert.Equal(t, "59", opts.Default[59])

	require.Len(t, opts.OpeningHour, 30)
	assert.Equal(t, "30", opts.OpeningHour[0])
	assert.Equal(t, "59", opts.OpeningHour[29])

	require.Len(t, opts.ClosingHour, 45)
	assert.Equal(t, "00", opts.ClosingHour[0])
	assert.Equal(t, "44", opts.ClosingHour[44])
}

func TestBuildMinuteOptions_WholeHourBounds(t *testing.T) {
	s := domain.LocalizedSchedule{
		Hours:             []int{8, 9},
		OpenMinuteOffset:  0,
		CloseMinuteOffset: 60,
	}

	opts := BuildMinuteOptions(s)

	// offsets at the hour boundaries: all three sets are the full range
	assert.Equal(t, opts.Default, opts.OpeningHour)
	assert.Equal(t, opts.Default, opts.ClosingHour)
}

func TestBuildMinuteOptions_Unscaled(t *testing.T) {
	s := domain.LocalizedSchedule{
		Hours:             []int{0, 1, 2},
		OpenMinuteOffset:  0,
		CloseMinuteOffset: 60,
		Unscaled:          true,
	}

	opts := BuildMinuteOptions(s)

	assert.Equal(t, opts.Default, opts.OpeningHour)
	assert.Equal(t, opts.Default, opts.ClosingHour)
}

func TestMinutesForHour(t *testing.T) {
	s := domain.LocalizedSchedule{
		Hours:             []int{9, 10, 11, 12},
		OpenMinuteOffset:  15,
		CloseMinuteOffset: 30,
	}
	opts := BuildMinuteOptions(s)

	assert.Equal(t, opts.OpeningHour, MinutesForHour(s, opts, 9))
	assert.Equal(t, opts.ClosingHour, MinutesForHour(s, opts, 12))
	assert.Equal(t, opts.Default, MinutesForHour(s, opts, 10))
	assert.Equal(t, opts.Default, MinutesForHour(s, opts, 11))
}

func TestMinutesForHour_SingleHourWindow(t *testing.T) {
	s := domain.LocalizedSchedule{
		Hours:             []int{8},
		OpenMinuteOffset:  15,
		CloseMinuteOffset: 45,
	}
	opts := BuildMinuteOptions(s)

	// first and last hour coincide: the opening set takes precedence
	assert.Equal(t, opts.OpeningHour, MinutesForHour(s, opts, 8))
}

func TestMinutesForHour_Unscaled(t *testing.T) {
	s := domain.LocalizedSchedule{
		Hours:    []int{0, 1, 2, 3},
		Unscaled: true,
	}
	opts := BuildMinuteOptions(s)

	assert.Equal(t, opts.Default, MinutesForHour(s, opts, 0))
	assert.Equal(t, opts.Default, MinutesForHour(s, opts, 3))
}
