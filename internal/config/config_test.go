package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTOML = `
[server]
http_port = 8083
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "scheduling"
password = "secret"
dbname = "scheduling"
sslmode = "disable"

[logs]
file = "logs/service.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "scheduling_service"

[company]
timezone = "America/New_York"
open_hour = 8
open_minute = 0
open_duration_minutes = 840

[overlap]
check_by_customer = true
check_by_contact = false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, "host=localhost port=5432 user=scheduling password=secret dbname=scheduling sslmode=disable",
		cfg.Database.DSN())

	hours := cfg.CompanyHours()
	require.NotNil(t, hours.Location)
	assert.Equal(t, "America/New_York", hours.Location.String())
	assert.Equal(t, 8, hours.OpenHour)
	assert.Equal(t, 840, hours.DurationMinutes)

	policy := cfg.OverlapPolicy()
	assert.True(t, policy.CheckByCustomer)
	assert.False(t, policy.CheckByContact)
	assert.False(t, policy.Disabled())
}

func TestLoad_InvalidTimezoneIsFatal(t *testing.T) {
	broken := validTOML
	broken = replaceLine(broken, `timezone = "America/New_York"`, `timezone = "Nowhere/Void"`)

	_, err := Load(writeConfig(t, broken))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_OutOfRangeHours(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"hour too large", "open_hour = 8", "open_hour = 24"},
		{"negative minute", "open_minute = 0", "open_minute = -1"},
		{"zero duration", "open_duration_minutes = 840", "open_duration_minutes = 0"},
		{"duration over a day", "open_duration_minutes = 840", "open_duration_minutes = 1441"},
		{"zero port", "http_port = 8083", "http_port = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, replaceLine(validTOML, tt.from, tt.to)))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func replaceLine(content, from, to string) string {
	return strings.Replace(content, from, to, 1)
}
