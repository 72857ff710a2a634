package store

import "evman/src-cli/model"

// Seed returns a store holding the default data used when nothing has been
// persisted yet.
func Seed() *Store {
	s := New()
	for _, e := range []*model.Event{
		{No: 1, Name: "Party", Date: "2023-08-01", Venue: model.Venue{Name: "Park", Capacity: 100, Location: "Downtown"}, AttendeeIDs: []int{1, 2}},
		{No: 2, Name: "Wedding", Date: "2023-08-15", Venue: model.Venue{Name: "Random Church", Capacity: 150, Location: "Downtown"}, AttendeeIDs: []int{3}},
		{No: 3, Name: "Halloween Party", Date: "2023-10-31", Venue: model.Venue{Name: "Warehouse", Capacity: 150, Location: "Downtown"}, AttendeeIDs: []int{}},
	} {
		s.PutEvent(e)
	}
	for _, a := range []*model.Attendee{
		{No: 1, EventNo: 1, Name: "John Doe", Phone: "1234567890", Email: "john@example.com"},
		{No: 2, EventNo: 1, Name: "Jane Smith", Phone: "9876543210", Email: "jane@example.com"},
		{No: 3, EventNo: 2, Name: "Alice Johnson", Phone: "5555555555", Email: "alice@example.com"},
	} {
		s.PutAttendee(a)
	}
	return s
}
