package model

type Event struct {
	No    int    `json:"event_no"`   // required
	Name  string `json:"event_name"` // required
	Date  string `json:"date"`       // yyyy-mm-dd unless replaced by an "all" edit
	Venue Venue  `json:"event_venue"`

	// membership list, kept in lock-step with Attendee.EventNo
	AttendeeIDs []int `json:"attendees"`
}

func NewEvent(no int, name string, date string, venue Venue) *Event {
	return &Event{
		No:          no,
		Name:        name,
		Date:        date,
		Venue:       venue,
		AttendeeIDs: []int{},
	}
}

func (e *Event) HasAttendee(attendeeNo int) bool {
	for _, id := range e.AttendeeIDs {
		if id == attendeeNo {
			return true
		}
	}
	return false
}

func (e *Event) AddAttendee(attendeeNo int) {
	e.AttendeeIDs = append(e.AttendeeIDs, attendeeNo)
}

// RemoveAttendee drops the first occurrence of attendeeNo from the
// membership list and reports whether it was there.
func (e *Event) RemoveAttendee(attendeeNo int) bool {
	for i, id := range e.AttendeeIDs {
		if id == attendeeNo {
			e.AttendeeIDs = append(e.AttendeeIDs[:i], e.AttendeeIDs[i+1:]...)
			return true
		}
	}
	return false
}
