// Package metric counts what a session did. Nothing is served over the
// network; the registry is dumped to a node_exporter textfile on exit.
package metric

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"evman/src-cli/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metric struct {
	registry *prometheus.Registry

	operations  *prometheus.CounterVec
	events      prometheus.Gauge
	attendees   prometheus.Gauge
	loadLatency prometheus.Gauge
	saveLatency prometheus.Gauge
}

func New() *Metric {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metric{
		registry: registry,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "evman_operations_total",
			Help: "Create/edit/delete operations by entity and outcome",
		}, []string{"entity", "op", "result"}),
		events: factory.NewGauge(prometheus.GaugeOpts{
			Name: "evman_events",
			Help: "Number of events in the store",
		}),
		attendees: factory.NewGauge(prometheus.GaugeOpts{
			Name: "evman_attendees",
			Help: "Number of attendees in the store",
		}),
		loadLatency: factory.NewGauge(prometheus.GaugeOpts{
			Name: "evman_load_microsec",
			Help: "The latency of the last load in microseconds",
		}),
		saveLatency: factory.NewGauge(prometheus.GaugeOpts{
			Name: "evman_save_microsec",
			Help: "The latency of the last save in microseconds",
		}),
	}
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, model.ErrValidation):
		return "validation"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	case errors.Is(err, model.ErrInvalidChoice):
		return "invalid_choice"
	default:
		return "error"
	}
}

func (m *Metric) ObserveOperation(entity string, op string, err error) {
	m.operations.WithLabelValues(entity, op, result(err)).Inc()
}

func (m *Metric) SetCollectionSize(events int, attendees int) {
	m.events.Set(float64(events))
	m.attendees.Set(float64(attendees))
}

func (m *Metric) ObserveLoad(latency time.Duration) {
	m.loadLatency.Set(float64(latency.Microseconds()))
}

func (m *Metric) ObserveSave(latency time.Duration) {
	m.saveLatency.Set(float64(latency.Microseconds()))
}

// WriteTextfile dumps every metric in the text exposition format.
func (m *Metric) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("(*Metric).WriteTextfile: %w", err)
	}
	slog.Debug("metrics written", "path", path)
	return nil
}
