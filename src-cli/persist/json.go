package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"evman/src-cli/model"
	"evman/src-cli/store"
)

// JSONFiles keeps events and attendees in two independent JSON documents,
// each an object keyed by the entity number.
type JSONFiles struct {
	EventsPath    string
	AttendeesPath string
}

func NewJSONFiles(eventsPath string, attendeesPath string) *JSONFiles {
	return &JSONFiles{EventsPath: eventsPath, AttendeesPath: attendeesPath}
}

// Load reads both files before touching s, so a bad file leaves s as it was.
func (j *JSONFiles) Load(ctx context.Context, s *store.Store) error {
	events := make(map[int]*model.Event)
	eventsFound, err := readOptionalJSON(j.EventsPath, &events)
	if err != nil {
		return fmt.Errorf("(*JSONFiles).Load: %w", err)
	}
	if !eventsFound {
		slog.Info("events data file not found, keeping current events", "path", j.EventsPath)
	}

	attendees := make(map[int]*model.Attendee)
	attendeesFound, err := readOptionalJSON(j.AttendeesPath, &attendees)
	if err != nil {
		return fmt.Errorf("(*JSONFiles).Load: %w", err)
	}
	if !attendeesFound {
		slog.Info("attendees data file not found, keeping current attendees", "path", j.AttendeesPath)
	}

	if eventsFound {
		s.ResetEvents(rekeyEvents(events))
	}
	if attendeesFound {
		s.ResetAttendees(rekeyAttendees(attendees))
	}
	return nil
}

func (j *JSONFiles) Save(ctx context.Context, s *store.Store) error {
	events := make(map[int]*model.Event)
	for _, e := range s.Events() {
		if e.AttendeeIDs == nil {
			e.AttendeeIDs = []int{}
		}
		events[e.No] = e
	}
	if err := writeJSON(j.EventsPath, events); err != nil {
		return fmt.Errorf("(*JSONFiles).Save: %w", err)
	}

	attendees := make(map[int]*model.Attendee)
	for _, a := range s.Attendees() {
		attendees[a.No] = a
	}
	if err := writeJSON(j.AttendeesPath, attendees); err != nil {
		return fmt.Errorf("(*JSONFiles).Save: %w", err)
	}

	slog.Debug("data saved", "events", j.EventsPath, "attendees", j.AttendeesPath)
	return nil
}

// readOptionalJSON reports false without error when path does not exist.
func readOptionalJSON(path string, v any) (bool, error) {
	err := readJSON(path, v)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// writeJSON replaces path atomically through a temp file in the same dir.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// The record's own number wins over the object key when the two disagree.
func rekeyEvents(in map[int]*model.Event) map[int]*model.Event {
	out := make(map[int]*model.Event, len(in))
	for key, e := range in {
		if e == nil {
			continue
		}
		if key != e.No {
			slog.Warn("event key does not match event_no", "key", key, "event_no", e.No)
		}
		if e.AttendeeIDs == nil {
			e.AttendeeIDs = []int{}
		}
		out[e.No] = e
	}
	return out
}

func rekeyAttendees(in map[int]*model.Attendee) map[int]*model.Attendee {
	out := make(map[int]*model.Attendee, len(in))
	for key, a := range in {
		if a == nil {
			continue
		}
		if key != a.No {
			slog.Warn("attendee key does not match attendee_no", "key", key, "attendee_no", a.No)
		}
		out[a.No] = a
	}
	return out
}
