package utils

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"evman/src-cli/crud"
	"evman/src-cli/metric"
	"evman/src-cli/persist"
	"evman/src-cli/store"

	"github.com/google/uuid"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// AppState is everything a session needs, passed explicitly to the shell.
type AppState struct {
	Config    *Config
	SessionID string

	Store     *store.Store
	Backend   persist.Backend
	Events    *crud.Events
	Attendees *crud.Attendees
	Metric    *metric.Metric

	// nil unless NATURAL_DATES is on
	When *when.Parser
}

func NewAppState(config *Config) (*AppState, error) {
	as := &AppState{
		Config:    config,
		SessionID: uuid.NewString(),
		Store:     store.Seed(),
		Metric:    metric.New(),
	}
	as.Events = crud.NewEvents(as.Store, as.Metric)
	as.Attendees = crud.NewAttendees(as.Store, as.Metric)

	switch config.GetStorageBackend() {
	case StorageBackendSQLite:
		backend, err := persist.OpenSQLite(config.GetSQLitePath())
		if err != nil {
			return nil, fmt.Errorf("NewAppState: %w", err)
		}
		as.Backend = backend
	default:
		as.Backend = persist.NewJSONFiles(config.GetEventsFile(), config.GetAttendeesFile())
	}

	if config.GetNaturalDates() {
		as.When = when.New(nil)
		as.When.Add(en.All...)
		as.When.Add(common.All...)
	}

	return as, nil
}

func (as *AppState) Load(ctx context.Context) error {
	start := time.Now()
	if err := as.Backend.Load(ctx, as.Store); err != nil {
		return fmt.Errorf("(*AppState).Load: %w", err)
	}
	as.Metric.ObserveLoad(time.Since(start))
	as.Metric.SetCollectionSize(as.Store.Len())
	return nil
}

func (as *AppState) Save(ctx context.Context) error {
	start := time.Now()
	if err := as.Backend.Save(ctx, as.Store); err != nil {
		return fmt.Errorf("(*AppState).Save: %w", err)
	}
	as.Metric.ObserveSave(time.Since(start))
	as.Metric.SetCollectionSize(as.Store.Len())
	return nil
}

// Close flushes metrics and releases the backend.
func (as *AppState) Close() error {
	if path := as.Config.GetMetricsTextfile(); path != "" {
		as.Metric.SetCollectionSize(as.Store.Len())
		if err := as.Metric.WriteTextfile(path); err != nil {
			slog.Warn("can't write metrics", "error", err)
		}
	}
	if closer, ok := as.Backend.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("(*AppState).Close: %w", err)
		}
	}
	return nil
}
