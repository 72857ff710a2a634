package shell_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"evman/src-cli/model"
	"evman/src-cli/shell"
	"evman/src-cli/store"
	"evman/src-cli/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppState(t *testing.T, naturalDates bool) *utils.AppState {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("EVENTS_FILE", filepath.Join(dir, "events_data.json"))
	t.Setenv("ATTENDEES_FILE", filepath.Join(dir, "attendees_data.json"))
	t.Setenv("STORAGE_BACKEND", "json")
	t.Setenv("METRICS_TEXTFILE", "")
	t.Setenv("TIMEZONE", "UTC")
	if naturalDates {
		t.Setenv("NATURAL_DATES", "true")
	} else {
		t.Setenv("NATURAL_DATES", "false")
	}

	as, err := utils.NewAppState(utils.NewConfig())
	require.NoError(t, err)
	require.NoError(t, as.Load(context.Background()))
	t.Cleanup(func() { as.Close() })
	return as
}

func run(t *testing.T, as *utils.AppState, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, shell.Run(context.Background(), as, in, &out))
	return out.String()
}

// reload reads back what the session saved.
func reload(t *testing.T, as *utils.AppState) *store.Store {
	t.Helper()
	s := store.New()
	require.NoError(t, as.Backend.Load(context.Background(), s))
	return s
}

func TestCreateAndListEvents(t *testing.T) {
	as := newAppState(t, false)

	out := run(t, as,
		"2", "c",
		"10", "Conference", "2024-13-01", "Hall", "1200", "Uptown", // bad month, starts over
		"10", "Conference", "2024-3-9", "Hall", "lots", "1200", "Uptown",
		"1", "a",
		"e",
	)

	assert.Contains(t, out, "Invalid input. Please enter valid values.")
	assert.Contains(t, out, "Invalid input. Please enter a valid integer.")
	assert.Contains(t, out, "Event 10 created: Conference")
	assert.Contains(t, out, "Event 10: Conference, Venue Name: Hall, Capacity: 1,200, Location: Uptown,  Date: 2024-03-09")
	assert.Contains(t, out, "Goodbye!")

	saved := reload(t, as)
	e, ok := saved.GetEvent(10)
	require.True(t, ok)
	assert.Equal(t, "2024-03-09", e.Date)
	assert.Equal(t, model.Venue{Name: "Hall", Capacity: 1200, Location: "Uptown"}, e.Venue)
}

func TestDeleteEventCascades(t *testing.T) {
	as := newAppState(t, false)

	out := run(t, as,
		"2", "d", "1",
		"3", "1", "2",
		"1", "e", "1",
		"exit",
	)

	assert.Contains(t, out, "Event 1: Party deleted.")
	assert.Contains(t, out, "Event not found. Please enter a valid event number: ")
	assert.Contains(t, out, "Attendees for Event 2:\nAttendee 3: Alice Johnson\n")
	assert.Contains(t, out, "Event not found.\n")

	saved := reload(t, as)
	_, ok := saved.GetEvent(1)
	assert.False(t, ok)
	_, ok = saved.GetAttendee(1)
	assert.False(t, ok)
	_, ok = saved.GetAttendee(3)
	assert.True(t, ok)
}

func TestEditEvent(t *testing.T) {
	as := newAppState(t, false)

	out := run(t, as,
		"2", "e", "x", "2", "venue", "Cathedral",
		"2", "e", "2", "location",
		"2", "e", "3", "date", "not a date",
		"e",
	)

	assert.Contains(t, out, "Event venue updated.")
	assert.Contains(t, out, "Invalid option.")
	assert.Contains(t, out, "Invalid input. Please enter valid values.")

	e, _ := as.Store.GetEvent(2)
	assert.Equal(t, model.Venue{Name: "Cathedral", Capacity: 150, Location: "Downtown"}, e.Venue)
	e3, _ := as.Store.GetEvent(3)
	assert.Equal(t, "2023-10-31", e3.Date)
}

func TestAttendeeLifecycle(t *testing.T) {
	as := newAppState(t, false)

	out := run(t, as,
		"4", "a", "99",
		"4", "a", "3", "4", "Bob", "111", "bob@example.com",
		"4", "e", "1", "event", "2",
		"4", "e", "4", "phone", "222",
		"4", "d", "2",
		"3", "1",
		"e",
	)

	assert.Contains(t, out, "Event not found")
	assert.Contains(t, out, "Attendee 4 added to Event 3: Halloween Party")
	assert.Contains(t, out, "Attendee moved to Event 2: Wedding")
	assert.Contains(t, out, "Enter updated Phone (111): ")
	assert.Contains(t, out, "Attendee deleted.")
	assert.Contains(t, out, "Attendees for Event 1:\n\n---------------------------")

	saved := reload(t, as)
	e1, _ := saved.GetEvent(1)
	e2, _ := saved.GetEvent(2)
	e3, _ := saved.GetEvent(3)
	assert.Equal(t, []int{2}, e1.AttendeeIDs)
	assert.Equal(t, []int{3, 1}, e2.AttendeeIDs)
	assert.Equal(t, []int{4}, e3.AttendeeIDs)
	a, _ := saved.GetAttendee(4)
	assert.Equal(t, "222", a.Phone)
}

func TestMoveAttendeeRejected(t *testing.T) {
	as := newAppState(t, false)

	out := run(t, as,
		"4", "e", "1", "event", "42",
		"e",
	)
	assert.Contains(t, out, "Event not found.")
	a, _ := as.Store.GetAttendee(1)
	assert.Equal(t, 1, a.EventNo)
}

func TestEndOfInputSaves(t *testing.T) {
	as := newAppState(t, false)

	out := run(t, as, "9", "s", "2", "d")
	assert.Contains(t, out, "Invalid choice.")
	assert.Contains(t, out, "Data saved.")
	assert.Contains(t, out, "Goodbye!")

	events, _ := reload(t, as).Len()
	assert.Equal(t, 3, events)
}

func TestNaturalDates(t *testing.T) {
	as := newAppState(t, true)

	out := run(t, as,
		"2", "c", "20", "Standup", "tomorrow", "Room", "8", "Office",
		"e",
	)
	assert.Contains(t, out, "Interpreted \"tomorrow\" as ")

	e, ok := as.Store.GetEvent(20)
	require.True(t, ok)
	_, err := model.ParseDate(e.Date)
	assert.NoError(t, err)
}

func TestListAttendeesEndOfInput(t *testing.T) {
	as := newAppState(t, false)

	out := run(t, as, "3", "42")
	assert.Contains(t, out, "Event not found. Please enter a valid event number: ")
	assert.Contains(t, out, "Goodbye!")
}

func TestLongInputLine(t *testing.T) {
	as := newAppState(t, false)
	name := strings.Repeat("x", 70000)

	out := run(t, as,
		"2", "c", "30", name, "2024-01-02", "Hall", "10", "Uptown",
		"e",
	)
	assert.Contains(t, out, "Event 30 created: ")
	assert.Contains(t, out, "Goodbye!")

	e, ok := reload(t, as).GetEvent(30)
	require.True(t, ok)
	assert.Equal(t, name, e.Name)
}

func TestLastLineWithoutNewline(t *testing.T) {
	as := newAppState(t, false)

	var out bytes.Buffer
	in := strings.NewReader("2\nd\n3")
	require.NoError(t, shell.Run(context.Background(), as, in, &out))
	assert.Contains(t, out.String(), "Event 3: Halloween Party deleted.")

	_, ok := reload(t, as).GetEvent(3)
	assert.False(t, ok)
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReadErrorSaves(t *testing.T) {
	as := newAppState(t, false)

	var out bytes.Buffer
	in := &failingReader{data: []byte("2\nd\n1\n"), err: errors.New("device gone")}
	require.NoError(t, shell.Run(context.Background(), as, in, &out))
	assert.Contains(t, out.String(), "Can't read input: device gone")
	assert.Contains(t, out.String(), "Goodbye!")

	_, ok := reload(t, as).GetEvent(1)
	assert.False(t, ok)
}
