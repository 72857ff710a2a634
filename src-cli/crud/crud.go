// Package crud holds the business rules for creating, editing and deleting
// events and attendees on top of a store.Store.
package crud

import "evman/src-cli/model"

// Manager is the lifecycle every identified entity supports.
type Manager[T any, C any, E any] interface {
	Create(input C) (*T, error)
	Edit(id int, edit E) (*T, error)
	Delete(id int) error
}

var (
	_ Manager[model.Event, CreateEventInput, model.EventEdit]          = (*Events)(nil)
	_ Manager[model.Attendee, CreateAttendeeInput, model.AttendeeEdit] = (*Attendees)(nil)
)

// Observer is told about the outcome of every operation. A nil error means
// the operation succeeded.
type Observer interface {
	ObserveOperation(entity string, op string, err error)
}

type noopObserver struct{}

func (noopObserver) ObserveOperation(string, string, error) {}

func observerOrNoop(o Observer) Observer {
	if o == nil {
		return noopObserver{}
	}
	return o
}
