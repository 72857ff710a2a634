// Package store is the in-memory source of truth for events and attendees.
// It enforces nothing; the rules live in the crud package.
package store

import (
	"sort"

	"evman/src-cli/model"
)

type Store struct {
	events    map[int]*model.Event
	attendees map[int]*model.Attendee
}

func New() *Store {
	return &Store{
		events:    make(map[int]*model.Event),
		attendees: make(map[int]*model.Attendee),
	}
}

func (s *Store) GetEvent(eventNo int) (*model.Event, bool) {
	e, ok := s.events[eventNo]
	return e, ok
}

func (s *Store) GetAttendee(attendeeNo int) (*model.Attendee, bool) {
	a, ok := s.attendees[attendeeNo]
	return a, ok
}

// PutEvent inserts or silently overwrites by event number.
func (s *Store) PutEvent(e *model.Event) {
	s.events[e.No] = e
}

// PutAttendee inserts or silently overwrites by attendee number.
func (s *Store) PutAttendee(a *model.Attendee) {
	s.attendees[a.No] = a
}

func (s *Store) RemoveEvent(eventNo int) bool {
	if _, ok := s.events[eventNo]; !ok {
		return false
	}
	delete(s.events, eventNo)
	return true
}

func (s *Store) RemoveAttendee(attendeeNo int) bool {
	if _, ok := s.attendees[attendeeNo]; !ok {
		return false
	}
	delete(s.attendees, attendeeNo)
	return true
}

// Events returns every event ordered by event number.
func (s *Store) Events() []*model.Event {
	events := make([]*model.Event, 0, len(s.events))
	for _, e := range s.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].No < events[j].No
	})
	return events
}

// Attendees returns every attendee ordered by attendee number.
func (s *Store) Attendees() []*model.Attendee {
	attendees := make([]*model.Attendee, 0, len(s.attendees))
	for _, a := range s.attendees {
		attendees = append(attendees, a)
	}
	sort.Slice(attendees, func(i, j int) bool {
		return attendees[i].No < attendees[j].No
	})
	return attendees
}

// AttendeesOf filters by the attendee's back-reference, not by the event's
// membership list.
func (s *Store) AttendeesOf(eventNo int) []*model.Attendee {
	attendees := make([]*model.Attendee, 0)
	for _, a := range s.Attendees() {
		if a.EventNo == eventNo {
			attendees = append(attendees, a)
		}
	}
	return attendees
}

func (s *Store) Len() (events int, attendees int) {
	return len(s.events), len(s.attendees)
}

// ResetEvents replaces the whole event collection.
func (s *Store) ResetEvents(events map[int]*model.Event) {
	if events == nil {
		events = make(map[int]*model.Event)
	}
	s.events = events
}

// ResetAttendees replaces the whole attendee collection.
func (s *Store) ResetAttendees(attendees map[int]*model.Attendee) {
	if attendees == nil {
		attendees = make(map[int]*model.Attendee)
	}
	s.attendees = attendees
}
