package shell

import (
	"errors"
	"fmt"
	"strings"

	"evman/src-cli/crud"
	"evman/src-cli/model"
)

// listAttendees asks again until the event exists.
func (s *session) listAttendees() error {
	eventNo, err := s.promptInt("\nEnter Event no. to list attendees: ")
	if err != nil {
		return err
	}
	for {
		if _, ok := s.as.Store.GetEvent(eventNo); ok {
			break
		}
		eventNo, err = s.promptInt("Event not found. Please enter a valid event number: ")
		if err != nil {
			return err
		}
	}
	s.printf("Attendees for Event %d:\n", eventNo)
	for _, a := range s.as.Store.AttendeesOf(eventNo) {
		s.printf("Attendee %d: %s\n", a.No, a.Name)
	}
	return nil
}

func (s *session) manageAttendees() error {
	choice, err := s.prompt("Do you wish to [A]dd, [D]elete, or [E]dit an attendee from an event?\n")
	if err != nil {
		return err
	}
	switch strings.ToLower(choice) {
	case "a", "add":
		return s.addAttendee()
	case "e", "edit":
		return s.editAttendee()
	case "d", "delete":
		return s.deleteAttendee()
	default:
		s.printf("Invalid choice.\n")
		return nil
	}
}

func (s *session) addAttendee() error {
	eventNo, err := s.promptInt("Enter Event No. to add attendee: ")
	if err != nil {
		return err
	}
	for {
		event, ok := s.as.Store.GetEvent(eventNo)
		if !ok {
			s.printf("Event not found\n")
			return nil
		}

		input := crud.CreateAttendeeInput{EventNo: eventNo}
		if input.No, err = s.prompt("\nEnter Attendee No.: "); err != nil {
			return err
		}
		if input.Name, err = s.prompt("Enter Attendee name: "); err != nil {
			return err
		}
		if input.Phone, err = s.prompt("Enter phone number: "); err != nil {
			return err
		}
		if input.Email, err = s.prompt("Enter email: "); err != nil {
			return err
		}

		attendee, err := s.as.Attendees.Create(input)
		if errors.Is(err, model.ErrValidation) {
			s.printf("Invalid input. Please enter valid values.\n")
			continue
		}
		if err != nil {
			s.report(err)
			return nil
		}
		s.printf("\nAttendee %d added to Event %d: %s\n", attendee.No, eventNo, event.Name)
		return nil
	}
}

func (s *session) editAttendee() error {
	attendeeNo, err := s.promptInt("Enter Attendee No. you wish to edit: ")
	if err != nil {
		return err
	}
	attendee, ok := s.as.Store.GetAttendee(attendeeNo)
	if !ok {
		s.printf("Attendee not found.\n")
		return nil
	}

	s.printf("Editing Attendee %d:\n", attendee.No)
	choice, err := s.prompt("What would you like to edit? (Name, Phone, Email, Event, All?)")
	if err != nil {
		return err
	}
	field, err := model.ParseAttendeeField(choice)
	if err != nil {
		s.report(err)
		return nil
	}

	var edit model.AttendeeEdit
	switch field {
	case model.AttendeeFieldName, model.AttendeeFieldPhone, model.AttendeeFieldEmail:
		current := map[model.AttendeeField]string{
			model.AttendeeFieldName:  attendee.Name,
			model.AttendeeFieldPhone: attendee.Phone,
			model.AttendeeFieldEmail: attendee.Email,
		}[field]
		value, err := s.prompt("Enter updated " + s.title.String(string(field)) + " (" + current + "): ")
		if err != nil {
			return err
		}
		switch field {
		case model.AttendeeFieldName:
			edit = model.AttendeeNameEdit{Name: value}
		case model.AttendeeFieldPhone:
			edit = model.AttendeePhoneEdit{Phone: value}
		default:
			edit = model.AttendeeEmailEdit{Email: value}
		}
	case model.AttendeeFieldEvent:
		eventNo, err := s.promptInt(fmt.Sprintf("Updating event no from (%d) to: ", attendee.EventNo))
		if err != nil {
			return err
		}
		edit = model.AttendeeMoveEdit{EventNo: eventNo}
	case model.AttendeeFieldAll:
		all := model.AttendeeAllEdit{}
		if all.Name, err = s.prompt("\nUpdating attendee name from (" + attendee.Name + ") to: "); err != nil {
			return err
		}
		if all.Phone, err = s.prompt("Updating phone from (" + attendee.Phone + ") to: "); err != nil {
			return err
		}
		if all.Email, err = s.prompt("Updating email from (" + attendee.Email + ") to: "); err != nil {
			return err
		}
		if all.EventNo, err = s.promptInt(fmt.Sprintf("Updating event no from (%d) to: ", attendee.EventNo)); err != nil {
			return err
		}
		edit = all
	}

	if _, err := s.as.Attendees.Edit(attendeeNo, edit); err != nil {
		if move, ok := edit.(model.AttendeeMoveEdit); ok && errors.Is(err, model.ErrNotFound) {
			if _, ok := s.as.Store.GetEvent(move.EventNo); !ok {
				s.printf("Event not found.\n")
			} else {
				s.printf("Attendee not found in the current event.\n")
			}
			return nil
		}
		s.report(err)
		return nil
	}

	if move, ok := edit.(model.AttendeeMoveEdit); ok {
		event, _ := s.as.Store.GetEvent(move.EventNo)
		s.printf("Attendee moved to Event %d: %s\n", event.No, event.Name)
		return nil
	}
	s.printf("\nAttendee details updated.\n")
	return nil
}

func (s *session) deleteAttendee() error {
	attendeeNo, err := s.promptInt("Enter Attendee No. you wish to delete from event: ")
	if err != nil {
		return err
	}
	attendee, ok := s.as.Store.GetAttendee(attendeeNo)
	if !ok {
		s.printf("Attendee not found.\n")
		return nil
	}
	s.printf("Deleting Attendee %d: %s\n", attendee.No, attendee.Name)
	if err := s.as.Attendees.Delete(attendeeNo); err != nil {
		s.report(err)
		return nil
	}
	s.printf("Attendee deleted.\n")
	return nil
}
