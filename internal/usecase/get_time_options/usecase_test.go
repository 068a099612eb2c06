package get_time_options

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	return NewUseCase(domain.CompanyHours{
		Location:        ny,
		OpenHour:        8,
		OpenMinute:      0,
		DurationMinutes: 840, // 08:00 - 22:00
	}, fakeLogger{})
}

func TestExecute_SameZone(t *testing.T) {
	uc := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		Timezone: "America/New_York",
		Date:     time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.False(t, resp.Unscaled)
	require.Len(t, resp.Hours, 14)
	assert.Equal(t, 8, resp.Hours[0].Hour)
	assert.Equal(t, 21, resp.Hours[len(resp.Hours)-1].Hour)

	// whole-hour window: every hour offers the full minute range
	for _, h := range resp.Hours {
		assert.Len(t, h.Minutes, 60)
	}
}

func TestExecute_FractionalZoneOffsets(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	uc := NewUseCase(domain.CompanyHours{
		Location:        ny,
		OpenHour:        9,
		OpenMinute:      0,
		DurationMinutes: 240, // 09:00 - 13:00 EDT
	}, fakeLogger{})

	// 09:00 EDT = 18:30 IST, 13:00 EDT = 22:30 IST
	resp, err := uc.Execute(context.Background(), &Request{
		Timezone: "Asia/Kolkata",
		Date:     time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.False(t, resp.Unscaled)
	require.Len(t, resp.Hours, 5)

	first := resp.Hours[0]
	assert.Equal(t, 18, first.Hour)
	assert.Equal(t, "30", first.Minutes[0])

	// the hour before the partial closing hour stays fully open
	assert.Equal(t, 21, resp.Hours[3].Hour)
	assert.Len(t, resp.Hours[3].Minutes, 60)

	last := resp.Hours[len(resp.Hours)-1]
	assert.Equal(t, 22, last.Hour)
	assert.Len(t, last.Minutes, 30)
	assert.Equal(t, "29", last.Minutes[len(last.Minutes)-1])
}

func TestExecute_UnscaledFallback(t *testing.T) {
	uc := newTestUseCase(t)

	// 08:00 EDT = 13:00 in London, close rolls over to 03:00 next day
	resp, err := uc.Execute(context.Background(), &Request{
		Timezone: "Europe/London",
		Date:     time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, resp.Unscaled)
	require.Len(t, resp.Hours, 24)
	assert.Equal(t, 0, resp.Hours[0].Hour)
	assert.Equal(t, 23, resp.Hours[23].Hour)
	for _, h := range resp.Hours {
		assert.Len(t, h.Minutes, 60)
	}
}

func TestExecute_InvalidTimezone(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		Timezone: "Atlantis/Central",
		Date:     time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestExecute_MissingInput(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Timezone: "UTC"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
