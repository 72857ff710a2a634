package store_test

import (
	"testing"

	"evman/src-cli/model"
	"evman/src-cli/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := store.New()

	// case: missing keys are a signal, not a failure
	_, ok := s.GetEvent(1)
	assert.False(t, ok)
	_, ok = s.GetAttendee(1)
	assert.False(t, ok)
	assert.False(t, s.RemoveEvent(1))
	assert.False(t, s.RemoveAttendee(1))

	// case: put then overwrite
	s.PutEvent(model.NewEvent(1, "Party", "2023-08-01", model.Venue{}))
	s.PutEvent(model.NewEvent(1, "Overwritten", "2023-08-02", model.Venue{}))
	e, ok := s.GetEvent(1)
	require.True(t, ok)
	assert.Equal(t, "Overwritten", e.Name)

	s.PutAttendee(&model.Attendee{No: 7, EventNo: 1, Name: "John Doe"})
	a, ok := s.GetAttendee(7)
	require.True(t, ok)
	assert.Equal(t, "John Doe", a.Name)

	events, attendees := s.Len()
	assert.Equal(t, 1, events)
	assert.Equal(t, 1, attendees)

	assert.True(t, s.RemoveAttendee(7))
	assert.True(t, s.RemoveEvent(1))
	events, attendees = s.Len()
	assert.Zero(t, events)
	assert.Zero(t, attendees)
}

func TestSeedListing(t *testing.T) {
	s := store.Seed()

	var eventNos []int
	for _, e := range s.Events() {
		eventNos = append(eventNos, e.No)
	}
	assert.Equal(t, []int{1, 2, 3}, eventNos)

	var names []string
	for _, a := range s.AttendeesOf(1) {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"John Doe", "Jane Smith"}, names)
	assert.Empty(t, s.AttendeesOf(3))

	// membership lists agree with back-references
	for _, e := range s.Events() {
		for _, id := range e.AttendeeIDs {
			a, ok := s.GetAttendee(id)
			require.True(t, ok)
			assert.Equal(t, e.No, a.EventNo)
		}
	}
}

func TestReset(t *testing.T) {
	s := store.Seed()
	s.ResetEvents(nil)
	s.ResetAttendees(map[int]*model.Attendee{9: {No: 9, EventNo: 4}})

	events, attendees := s.Len()
	assert.Zero(t, events)
	assert.Equal(t, 1, attendees)
	s.PutEvent(model.NewEvent(4, "Meetup", "2024-01-01", model.Venue{}))
	_, ok := s.GetEvent(4)
	assert.True(t, ok)
}
