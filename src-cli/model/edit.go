package model

import (
	"fmt"
	"strings"
)

// #region | event edits

type EventField string

const (
	EventFieldName  EventField = "name"
	EventFieldDate  EventField = "date"
	EventFieldVenue EventField = "venue"
	EventFieldAll   EventField = "all"
)

// ParseEventField maps a case-insensitive selector to an EventField.
func ParseEventField(s string) (EventField, error) {
	switch field := EventField(strings.ToLower(strings.TrimSpace(s))); field {
	case EventFieldName, EventFieldDate, EventFieldVenue, EventFieldAll:
		return field, nil
	default:
		return "", fmt.Errorf("ParseEventField: %q: %w", s, ErrInvalidChoice)
	}
}

// EventEdit is one of EventNameEdit, EventDateEdit, EventVenueNameEdit or
// EventAllEdit.
type EventEdit interface {
	Field() EventField
	isEventEdit()
}

type EventNameEdit struct{ Name string }

// EventDateEdit carries raw input; it is validated like a newly created event.
type EventDateEdit struct{ Date string }

// EventVenueNameEdit only renames the venue, capacity and location are kept.
type EventVenueNameEdit struct{ VenueName string }

// EventAllEdit replaces every editable field verbatim. Date is not validated.
type EventAllEdit struct {
	Name  string
	Date  string
	Venue Venue
}

func (EventNameEdit) Field() EventField      { return EventFieldName }
func (EventDateEdit) Field() EventField      { return EventFieldDate }
func (EventVenueNameEdit) Field() EventField { return EventFieldVenue }
func (EventAllEdit) Field() EventField       { return EventFieldAll }

func (EventNameEdit) isEventEdit()      {}
func (EventDateEdit) isEventEdit()      {}
func (EventVenueNameEdit) isEventEdit() {}
func (EventAllEdit) isEventEdit()       {}

// #endregion

// #region | attendee edits

type AttendeeField string

const (
	AttendeeFieldName  AttendeeField = "name"
	AttendeeFieldPhone AttendeeField = "phone"
	AttendeeFieldEmail AttendeeField = "email"
	AttendeeFieldEvent AttendeeField = "event"
	AttendeeFieldAll   AttendeeField = "all"
)

// ParseAttendeeField maps a case-insensitive selector to an AttendeeField.
func ParseAttendeeField(s string) (AttendeeField, error) {
	switch field := AttendeeField(strings.ToLower(strings.TrimSpace(s))); field {
	case AttendeeFieldName, AttendeeFieldPhone, AttendeeFieldEmail, AttendeeFieldEvent, AttendeeFieldAll:
		return field, nil
	default:
		return "", fmt.Errorf("ParseAttendeeField: %q: %w", s, ErrInvalidChoice)
	}
}

// AttendeeEdit is one of AttendeeNameEdit, AttendeePhoneEdit,
// AttendeeEmailEdit, AttendeeMoveEdit or AttendeeAllEdit.
type AttendeeEdit interface {
	Field() AttendeeField
	isAttendeeEdit()
}

type AttendeeNameEdit struct{ Name string }

type AttendeePhoneEdit struct{ Phone string }

type AttendeeEmailEdit struct{ Email string }

// AttendeeMoveEdit re-homes the attendee, updating both membership lists.
type AttendeeMoveEdit struct{ EventNo int }

// AttendeeAllEdit overwrites every field including EventNo. Membership lists
// are NOT relinked.
type AttendeeAllEdit struct {
	Name    string
	Phone   string
	Email   string
	EventNo int
}

func (AttendeeNameEdit) Field() AttendeeField  { return AttendeeFieldName }
func (AttendeePhoneEdit) Field() AttendeeField { return AttendeeFieldPhone }
func (AttendeeEmailEdit) Field() AttendeeField { return AttendeeFieldEmail }
func (AttendeeMoveEdit) Field() AttendeeField  { return AttendeeFieldEvent }
func (AttendeeAllEdit) Field() AttendeeField   { return AttendeeFieldAll }

func (AttendeeNameEdit) isAttendeeEdit()  {}
func (AttendeePhoneEdit) isAttendeeEdit() {}
func (AttendeeEmailEdit) isAttendeeEdit() {}
func (AttendeeMoveEdit) isAttendeeEdit()  {}
func (AttendeeAllEdit) isAttendeeEdit()   {}

// #endregion
