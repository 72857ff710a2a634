package shell

import (
	"errors"
	"strings"

	"evman/src-cli/crud"
	"evman/src-cli/model"
)

func (s *session) listEvents() error {
	for {
		choice, err := s.prompt("\nDo you wish to view [E]vent or [A]ll events?\n ")
		if err != nil {
			return err
		}
		switch strings.ToLower(choice) {
		case "a", "all":
			for _, e := range s.as.Store.Events() {
				s.printf("-------------------------------------------------------------------------------------------------\n")
				s.printf("Event %d: %s, Venue Name: %s, Capacity: %s, Location: %s,  Date: %s\n",
					e.No, e.Name, e.Venue.Name, s.numbers.Sprintf("%d", e.Venue.Capacity), e.Venue.Location, e.Date)
			}
			return nil
		case "e", "event":
			eventNo, err := s.promptInt("\nEnter Event No. to list: ")
			if err != nil {
				return err
			}
			if e, ok := s.as.Store.GetEvent(eventNo); ok {
				s.printf("Event %d: %s\n", e.No, e.Name)
			} else {
				s.printf("Event not found.\n")
			}
			return nil
		default:
			s.printf("Invalid choice.\n")
		}
	}
}

func (s *session) manageEvents() error {
	for {
		choice, err := s.prompt("\nDo you wish to [C]reate, [E]dit, or [D]elete an event?\n")
		if err != nil {
			return err
		}
		switch strings.ToLower(choice) {
		case "c", "create":
			return s.createEvent()
		case "e", "edit":
			return s.editEvent()
		case "d", "delete":
			return s.deleteEvent()
		default:
			s.printf("Invalid choice.\n")
		}
	}
}

// createEvent starts over until the values pass validation.
func (s *session) createEvent() error {
	for {
		var input crud.CreateEventInput
		var err error
		if input.No, err = s.prompt("\nEnter Event No. : "); err != nil {
			return err
		}
		if input.Name, err = s.prompt("Enter Event name: "); err != nil {
			return err
		}
		if input.Date, err = s.promptDate("Enter Event date (yyyy-mm-dd): "); err != nil {
			return err
		}
		if input.Venue, err = s.promptVenue(); err != nil {
			return err
		}

		event, err := s.as.Events.Create(input)
		if errors.Is(err, model.ErrValidation) {
			s.printf("Invalid input. Please enter valid values.\n")
			continue
		}
		if err != nil {
			s.report(err)
			return nil
		}
		s.printf("\nEvent %d created: %s\n", event.No, event.Name)
		return nil
	}
}

func (s *session) editEvent() error {
	eventNo, err := s.promptInt("\nEnter Event No. to edit: ")
	if err != nil {
		return err
	}
	event, ok := s.as.Store.GetEvent(eventNo)
	if !ok {
		s.printf("Event not found.\n")
		return nil
	}

	s.printf("\nEditing Event No.: %d, Event Name: %s, Event Date: %s, Event Venue: %s, Venue Capacity: %s, Venue Location: %s\n",
		event.No, event.Name, event.Date, event.Venue.Name, s.numbers.Sprintf("%d", event.Venue.Capacity), event.Venue.Location)
	choice, err := s.prompt("What would you like to edit? (Name, Date, Venue, All?)")
	if err != nil {
		return err
	}
	field, err := model.ParseEventField(choice)
	if err != nil {
		s.report(err)
		return nil
	}

	var edit model.EventEdit
	switch field {
	case model.EventFieldName:
		name, err := s.prompt("Enter updated " + s.title.String(string(field)) + " (" + event.Name + "): ")
		if err != nil {
			return err
		}
		edit = model.EventNameEdit{Name: name}
	case model.EventFieldDate:
		date, err := s.promptDate("Enter updated " + s.title.String(string(field)) + " (" + event.Date + "): ")
		if err != nil {
			return err
		}
		edit = model.EventDateEdit{Date: date}
	case model.EventFieldVenue:
		venueName, err := s.prompt("Enter updated venue name (" + event.Venue.Name + "): ")
		if err != nil {
			return err
		}
		edit = model.EventVenueNameEdit{VenueName: venueName}
	case model.EventFieldAll:
		all := model.EventAllEdit{}
		if all.Name, err = s.prompt("Updating event name from (" + event.Name + ") to: "); err != nil {
			return err
		}
		if all.Date, err = s.prompt("Updating event date from (" + event.Date + ") to: "); err != nil {
			return err
		}
		if all.Venue, err = s.promptVenue(); err != nil {
			return err
		}
		edit = all
	}

	if _, err := s.as.Events.Edit(eventNo, edit); err != nil {
		s.report(err)
		return nil
	}
	if field == model.EventFieldVenue {
		s.printf("\nEvent venue updated.\n")
	} else {
		s.printf("\nEvent details updated.\n")
	}
	return nil
}

func (s *session) deleteEvent() error {
	eventNo, err := s.promptInt("\nEnter Event No. to delete: ")
	if err != nil {
		return err
	}
	event, ok := s.as.Store.GetEvent(eventNo)
	if !ok {
		s.printf("Event not found.\n")
		return nil
	}
	name := event.Name
	if err := s.as.Events.Delete(eventNo); err != nil {
		s.report(err)
		return nil
	}
	s.printf("\nEvent %d: %s deleted.\n", eventNo, name)
	return nil
}
