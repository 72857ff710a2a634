package utils_test

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"evman/src-cli/utils"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"EVENTS_FILE", "ATTENDEES_FILE", "STORAGE_BACKEND", "SQLITE_PATH",
		"LOG_LEVEL", "METRICS_TEXTFILE", "NATURAL_DATES", "TIMEZONE",
	} {
		t.Setenv(key, "")
	}

	c := utils.NewConfig()
	assert.Equal(t, "events_data.json", c.GetEventsFile())
	assert.Equal(t, "attendees_data.json", c.GetAttendeesFile())
	assert.Equal(t, utils.StorageBackendJSON, c.GetStorageBackend())
	assert.Equal(t, "evman.db", c.GetSQLitePath())
	assert.Equal(t, slog.LevelWarn, c.GetLogLevel())
	assert.Empty(t, c.GetMetricsTextfile())
	assert.False(t, c.GetNaturalDates())
	assert.Equal(t, time.Local, c.GetLocation())
}

func TestConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EVENTS_FILE", filepath.Join(dir, "e.json"))
	t.Setenv("ATTENDEES_FILE", filepath.Join(dir, "a.json"))
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "x.db"))
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_TEXTFILE", filepath.Join(dir, "evman.prom"))
	t.Setenv("NATURAL_DATES", "true")
	t.Setenv("TIMEZONE", "UTC")

	c := utils.NewConfig()
	assert.Equal(t, filepath.Join(dir, "e.json"), c.GetEventsFile())
	assert.Equal(t, filepath.Join(dir, "a.json"), c.GetAttendeesFile())
	assert.Equal(t, utils.StorageBackendSQLite, c.GetStorageBackend())
	assert.Equal(t, filepath.Join(dir, "x.db"), c.GetSQLitePath())
	assert.Equal(t, slog.LevelDebug, c.GetLogLevel())
	assert.Equal(t, filepath.Join(dir, "evman.prom"), c.GetMetricsTextfile())
	assert.True(t, c.GetNaturalDates())
	assert.Equal(t, time.UTC, c.GetLocation())
}
