// Package shell is the interactive text menu. It owns no state: it collects
// raw values, calls into utils.AppState and prints the outcome.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"evman/src-cli/model"
	"evman/src-cli/utils"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type session struct {
	ctx context.Context
	as  *utils.AppState
	in  *bufio.Reader
	out io.Writer

	// number formatting for capacities, field names in prompts
	numbers *message.Printer
	title   cases.Caser
}

// Run drives the menu until the user exits or input ends; both save.
func Run(ctx context.Context, as *utils.AppState, in io.Reader, out io.Writer) error {
	s := &session{
		ctx:     ctx,
		as:      as,
		in:      bufio.NewReader(in),
		out:     out,
		numbers: message.NewPrinter(language.English),
		title:   cases.Title(language.English),
	}
	slog.Debug("session started")

	for {
		s.printf("\n---------------------------\n")
		s.printf("| Event Management System |\n")
		s.printf("---------------------------\n")
		s.printf("\n[1] List event(s)\n")
		s.printf("[2] Create/Edit/Delete an event\n")
		s.printf("[3] List attendees of an event\n")
		s.printf("[4] Add/Delete/Edit an attendee from an event\n")
		s.printf("[S]ave\n")
		s.printf("[E]xit\n")

		choice, err := s.prompt("\nPlease select one of the options:\n ")
		if err != nil {
			return s.stop(err)
		}

		switch strings.ToLower(choice) {
		case "e", "exit":
			return s.exit()
		case "s", "save":
			s.save()
		case "1":
			err = s.listEvents()
		case "2":
			err = s.manageEvents()
		case "3":
			err = s.listAttendees()
		case "4":
			err = s.manageAttendees()
		default:
			s.printf("\nInvalid choice.\n")
		}
		if err != nil {
			return s.stop(err)
		}
	}
}

// stop ends the session on unreadable input; whatever was entered so far is
// still saved.
func (s *session) stop(err error) error {
	if !errors.Is(err, io.EOF) {
		slog.Error("can't read input", "error", err)
		s.printf("\nCan't read input: %v\n", err)
	}
	return s.exit()
}

func (s *session) exit() error {
	s.printf("Goodbye!\n")
	if err := s.as.Save(s.ctx); err != nil {
		s.printf("Can't save data: %v\n", err)
		return err
	}
	return nil
}

func (s *session) save() {
	if err := s.as.Save(s.ctx); err != nil {
		slog.Error("save failed", "error", err)
		s.printf("Can't save data: %v\n", err)
		return
	}
	s.printf("Data saved.\n")
}

func (s *session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// prompt returns the next trimmed line, or io.EOF once input is exhausted.
// Lines have no length limit.
func (s *session) prompt(label string) (string, error) {
	s.printf("%s", label)
	line, err := s.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line != "":
		// last line without a trailing newline
	case err != nil:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt asks again until the answer is an integer.
func (s *session) promptInt(label string) (int, error) {
	for {
		raw, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := model.ParseID(raw)
		if err == nil {
			return n, nil
		}
		s.printf("Invalid input. Please enter a valid integer.\n")
	}
}

// promptDate returns the raw answer, rewritten to yyyy-mm-dd when natural
// dates are on and the answer is not already a date.
func (s *session) promptDate(label string) (string, error) {
	raw, err := s.prompt(label)
	if err != nil || s.as.When == nil {
		return raw, err
	}
	if _, err := model.ParseDate(raw); err == nil {
		return raw, nil
	}
	r, err := s.as.When.Parse(raw, time.Now().In(s.as.Config.GetLocation()))
	if err != nil || r == nil {
		return raw, nil
	}
	date := r.Time.Format(model.DateLayout)
	s.printf("Interpreted %q as %s.\n", raw, date)
	return date, nil
}

func (s *session) promptVenue() (model.Venue, error) {
	var venue model.Venue
	var err error
	if venue.Name, err = s.prompt("Enter Venue name: "); err != nil {
		return venue, err
	}
	if venue.Capacity, err = s.promptInt("Enter Capacity of Venue: "); err != nil {
		return venue, err
	}
	if venue.Location, err = s.prompt("Enter Venue location: "); err != nil {
		return venue, err
	}
	return venue, nil
}

// report prints the user-facing message for an operation error.
func (s *session) report(err error) {
	slog.Debug("operation failed", "error", err)
	switch {
	case errors.Is(err, model.ErrValidation):
		s.printf("Invalid input. Please enter valid values.\n")
	case errors.Is(err, model.ErrInvalidChoice):
		s.printf("Invalid option.\n")
	case errors.Is(err, model.ErrNotFound):
		s.printf("Not found.\n")
	default:
		s.printf("Error: %v\n", err)
	}
}
