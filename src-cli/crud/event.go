package crud

import (
	"fmt"
	"log/slog"

	"evman/src-cli/model"
	"evman/src-cli/store"
)

// CreateEventInput holds raw values as collected from the user; No and Date
// are validated by Create.
type CreateEventInput struct {
	No    string
	Name  string
	Date  string
	Venue model.Venue
}

type Events struct {
	store    *store.Store
	observer Observer
}

func NewEvents(s *store.Store, o Observer) *Events {
	return &Events{store: s, observer: observerOrNoop(o)}
}

func (m *Events) Create(input CreateEventInput) (_ *model.Event, err error) {
	defer func() { m.observer.ObserveOperation("event", "create", err) }()

	eventNo, err := model.ParseID(input.No)
	if err != nil {
		return nil, fmt.Errorf("(*Events).Create: event no: %w", err)
	}
	date, err := model.ParseDate(input.Date)
	if err != nil {
		return nil, fmt.Errorf("(*Events).Create: date: %w", err)
	}

	event := model.NewEvent(eventNo, input.Name, date, input.Venue)
	m.store.PutEvent(event)
	slog.Debug("event created", "event_no", eventNo, "name", input.Name)
	return event, nil
}

func (m *Events) Edit(eventNo int, edit model.EventEdit) (_ *model.Event, err error) {
	defer func() { m.observer.ObserveOperation("event", "edit", err) }()

	event, ok := m.store.GetEvent(eventNo)
	if !ok {
		return nil, fmt.Errorf("(*Events).Edit: event %d: %w", eventNo, model.ErrNotFound)
	}

	switch edit := edit.(type) {
	case model.EventNameEdit:
		event.Name = edit.Name
	case model.EventDateEdit:
		date, err := model.ParseDate(edit.Date)
		if err != nil {
			return nil, fmt.Errorf("(*Events).Edit: date: %w", err)
		}
		event.Date = date
	case model.EventVenueNameEdit:
		event.Venue.Name = edit.VenueName
	case model.EventAllEdit:
		event.Name = edit.Name
		event.Date = edit.Date
		event.Venue = edit.Venue
	default:
		return nil, fmt.Errorf("(*Events).Edit: unsupported edit %T: %w", edit, model.ErrInvalidChoice)
	}

	slog.Debug("event edited", "event_no", eventNo, "field", edit.Field())
	return event, nil
}

// Delete removes the event and every attendee whose EventNo points at it.
func (m *Events) Delete(eventNo int) (err error) {
	defer func() { m.observer.ObserveOperation("event", "delete", err) }()

	if !m.store.RemoveEvent(eventNo) {
		return fmt.Errorf("(*Events).Delete: event %d: %w", eventNo, model.ErrNotFound)
	}

	cascaded := 0
	for _, attendee := range m.store.Attendees() {
		if attendee.EventNo == eventNo {
			m.store.RemoveAttendee(attendee.No)
			cascaded++
		}
	}
	slog.Debug("event deleted", "event_no", eventNo, "cascaded_attendees", cascaded)
	return nil
}
