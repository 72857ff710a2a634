package crud

import (
	"fmt"
	"log/slog"

	"evman/src-cli/model"
	"evman/src-cli/store"
)

// CreateAttendeeInput holds raw values as collected from the user; No is
// validated by Create.
type CreateAttendeeInput struct {
	EventNo int
	No      string
	Name    string
	Phone   string
	Email   string
}

type Attendees struct {
	store    *store.Store
	observer Observer
}

func NewAttendees(s *store.Store, o Observer) *Attendees {
	return &Attendees{store: s, observer: observerOrNoop(o)}
}

// Create registers a new attendee against an existing event. An existing
// attendee with the same number is overwritten.
func (m *Attendees) Create(input CreateAttendeeInput) (_ *model.Attendee, err error) {
	defer func() { m.observer.ObserveOperation("attendee", "create", err) }()

	event, ok := m.store.GetEvent(input.EventNo)
	if !ok {
		return nil, fmt.Errorf("(*Attendees).Create: event %d: %w", input.EventNo, model.ErrNotFound)
	}
	attendeeNo, err := model.ParseID(input.No)
	if err != nil {
		return nil, fmt.Errorf("(*Attendees).Create: attendee no: %w", err)
	}

	attendee := &model.Attendee{
		No:      attendeeNo,
		EventNo: event.No,
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
	}
	m.store.PutAttendee(attendee)
	event.AddAttendee(attendeeNo)
	slog.Debug("attendee created", "attendee_no", attendeeNo, "event_no", event.No)
	return attendee, nil
}

func (m *Attendees) Edit(attendeeNo int, edit model.AttendeeEdit) (_ *model.Attendee, err error) {
	defer func() { m.observer.ObserveOperation("attendee", "edit", err) }()

	attendee, ok := m.store.GetAttendee(attendeeNo)
	if !ok {
		return nil, fmt.Errorf("(*Attendees).Edit: attendee %d: %w", attendeeNo, model.ErrNotFound)
	}

	switch edit := edit.(type) {
	case model.AttendeeNameEdit:
		attendee.Name = edit.Name
	case model.AttendeePhoneEdit:
		attendee.Phone = edit.Phone
	case model.AttendeeEmailEdit:
		attendee.Email = edit.Email
	case model.AttendeeMoveEdit:
		if err := m.move(attendee, edit.EventNo); err != nil {
			return nil, fmt.Errorf("(*Attendees).Edit: %w", err)
		}
	case model.AttendeeAllEdit:
		// membership lists are deliberately left alone here
		attendee.Name = edit.Name
		attendee.Phone = edit.Phone
		attendee.Email = edit.Email
		attendee.EventNo = edit.EventNo
	default:
		return nil, fmt.Errorf("(*Attendees).Edit: unsupported edit %T: %w", edit, model.ErrInvalidChoice)
	}

	slog.Debug("attendee edited", "attendee_no", attendeeNo, "field", edit.Field())
	return attendee, nil
}

// move checks everything before touching either membership list.
func (m *Attendees) move(attendee *model.Attendee, newEventNo int) error {
	newEvent, ok := m.store.GetEvent(newEventNo)
	if !ok {
		return fmt.Errorf("move: event %d: %w", newEventNo, model.ErrNotFound)
	}
	oldEvent, ok := m.store.GetEvent(attendee.EventNo)
	if !ok {
		return fmt.Errorf("move: current event %d: %w", attendee.EventNo, model.ErrNotFound)
	}
	if !oldEvent.HasAttendee(attendee.No) {
		return fmt.Errorf("move: attendee %d not in event %d: %w", attendee.No, oldEvent.No, model.ErrNotFound)
	}

	oldEvent.RemoveAttendee(attendee.No)
	newEvent.AddAttendee(attendee.No)
	attendee.EventNo = newEventNo
	return nil
}

// Delete removes the attendee from the store only. The owning event's
// membership list keeps the id.
func (m *Attendees) Delete(attendeeNo int) (err error) {
	defer func() { m.observer.ObserveOperation("attendee", "delete", err) }()

	if !m.store.RemoveAttendee(attendeeNo) {
		return fmt.Errorf("(*Attendees).Delete: attendee %d: %w", attendeeNo, model.ErrNotFound)
	}
	slog.Debug("attendee deleted", "attendee_no", attendeeNo)
	return nil
}
