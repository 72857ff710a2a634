package utils

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type StorageBackend string

const (
	StorageBackendJSON   StorageBackend = "json"
	StorageBackendSQLite StorageBackend = "sqlite"
)

type Config struct {
	eventsFile    string
	attendeesFile string

	storageBackend StorageBackend
	sqlitePath     string

	logLevel        slog.Level
	metricsTextfile string

	naturalDates bool
	location     *time.Location
}

func NewConfig() *Config {
	return &Config{
		eventsFile: func() string {
			eventsFile := os.Getenv("EVENTS_FILE")
			if eventsFile == "" {
				eventsFile = "events_data.json"
			}
			slog.Debug("env", "EVENTS_FILE", eventsFile)
			return filepath.Clean(eventsFile)
		}(),
		attendeesFile: func() string {
			attendeesFile := os.Getenv("ATTENDEES_FILE")
			if attendeesFile == "" {
				attendeesFile = "attendees_data.json"
			}
			slog.Debug("env", "ATTENDEES_FILE", attendeesFile)
			return filepath.Clean(attendeesFile)
		}(),

		storageBackend: func() StorageBackend {
			backend := StorageBackend(strings.ToLower(os.Getenv("STORAGE_BACKEND")))
			switch backend {
			case "":
				backend = StorageBackendJSON
			case StorageBackendJSON, StorageBackendSQLite:
			default:
				slog.Error("invalid STORAGE_BACKEND", "value", backend)
				os.Exit(1)
			}
			slog.Debug("env", "STORAGE_BACKEND", backend)
			return backend
		}(),
		sqlitePath: func() string {
			sqlitePath := os.Getenv("SQLITE_PATH")
			if sqlitePath == "" {
				sqlitePath = "./evman.db"
			}
			slog.Debug("env", "SQLITE_PATH", sqlitePath)
			return filepath.Clean(sqlitePath)
		}(),

		logLevel: func() slog.Level {
			logLevelStr := os.Getenv("LOG_LEVEL")
			if logLevelStr == "" {
				return slog.LevelWarn
			}
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevelStr)); err != nil {
				slog.Error("invalid LOG_LEVEL", "value", logLevelStr, "error", err)
				os.Exit(1)
			}
			return level
		}(),
		metricsTextfile: func() string {
			metricsTextfile := os.Getenv("METRICS_TEXTFILE")
			if metricsTextfile != "" {
				slog.Debug("env", "METRICS_TEXTFILE", metricsTextfile)
			}
			return metricsTextfile
		}(),

		naturalDates: func() bool {
			naturalDatesStr := os.Getenv("NATURAL_DATES")
			if naturalDatesStr == "" {
				return false
			}
			naturalDates, err := strconv.ParseBool(naturalDatesStr)
			if err != nil {
				slog.Error("invalid NATURAL_DATES", "value", naturalDatesStr, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "NATURAL_DATES", naturalDates)
			return naturalDates
		}(),
		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				loc = time.Local
			case "UTC":
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),
	}
}

// Get EVENTS_FILE env, default to events_data.json
func (c *Config) GetEventsFile() string {
	return c.eventsFile
}

// Get ATTENDEES_FILE env, default to attendees_data.json
func (c *Config) GetAttendeesFile() string {
	return c.attendeesFile
}

// Get STORAGE_BACKEND env, default to json
func (c *Config) GetStorageBackend() StorageBackend {
	return c.storageBackend
}

// Get SQLITE_PATH env, default to ./evman.db
func (c *Config) GetSQLitePath() string {
	return c.sqlitePath
}

// Get LOG_LEVEL env, default to warn
func (c *Config) GetLogLevel() slog.Level {
	return c.logLevel
}

// Get METRICS_TEXTFILE env, empty means disabled
func (c *Config) GetMetricsTextfile() string {
	return c.metricsTextfile
}

// Get NATURAL_DATES env
func (c *Config) GetNaturalDates() bool {
	return c.naturalDates
}

// Get TIMEZONE env
func (c *Config) GetLocation() *time.Location {
	return c.location
}
