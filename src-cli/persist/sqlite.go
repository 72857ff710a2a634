package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"evman/src-cli/model"
	"evman/src-cli/store"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

type eventRow struct {
	bun.BaseModel `bun:"table:events"`

	EventNo       int    `bun:"event_no,pk"`
	EventName     string `bun:"event_name,notnull"`
	Date          string `bun:"date,notnull"`
	VenueName     string `bun:"venue_name,notnull"`
	VenueCapacity int    `bun:"venue_capacity,notnull"`
	VenueLocation string `bun:"venue_location,notnull"`
}

// membershipRow keeps Event.AttendeeIDs in order. No foreign keys: the
// membership list may legitimately reference deleted attendees.
type membershipRow struct {
	bun.BaseModel `bun:"table:event_attendees"`

	EventNo    int `bun:"event_no,pk"`
	Position   int `bun:"position,pk"`
	AttendeeNo int `bun:"attendee_no,notnull"`
}

type attendeeRow struct {
	bun.BaseModel `bun:"table:attendees"`

	AttendeeNo int    `bun:"attendee_no,pk"`
	EventNo    int    `bun:"event_no,notnull"`
	Name       string `bun:"name,notnull"`
	Phone      string `bun:"phone,notnull"`
	Email      string `bun:"email,notnull"`
}

// SQLite keeps both collections in one sqlite database file.
type SQLite struct {
	path string
	db   *bun.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	rawDB, err := sql.Open(sqliteshim.ShimName, "file:"+path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite: %w", err)
	}
	rawDB.SetMaxOpenConns(1)

	db := bun.NewDB(rawDB, sqlitedialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithEnabled(false),
		bundebug.FromEnv("BUNDEBUG"),
	))
	return &SQLite{path: path, db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) createSchema(ctx context.Context, db bun.IDB) error {
	for _, m := range []interface{}{
		(*eventRow)(nil),
		(*membershipRow)(nil),
		(*attendeeRow)(nil),
	} {
		if _, err := db.NewCreateTable().
			Model(m).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("createSchema: %w", err)
		}
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, st *store.Store) error {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		slog.Info("sqlite database not found, keeping current data", "path", s.path)
		return nil
	}
	if err := s.createSchema(ctx, s.db); err != nil {
		return fmt.Errorf("(*SQLite).Load: %w", err)
	}

	eventRows := make([]eventRow, 0)
	if err := s.db.NewSelect().
		Model(&eventRows).
		Order("event_no ASC").
		Scan(ctx); err != nil {
		return fmt.Errorf("(*SQLite).Load: events: %w", err)
	}
	membershipRows := make([]membershipRow, 0)
	if err := s.db.NewSelect().
		Model(&membershipRows).
		Order("event_no ASC", "position ASC").
		Scan(ctx); err != nil {
		return fmt.Errorf("(*SQLite).Load: memberships: %w", err)
	}
	attendeeRows := make([]attendeeRow, 0)
	if err := s.db.NewSelect().
		Model(&attendeeRows).
		Order("attendee_no ASC").
		Scan(ctx); err != nil {
		return fmt.Errorf("(*SQLite).Load: attendees: %w", err)
	}

	events := make(map[int]*model.Event, len(eventRows))
	for _, row := range eventRows {
		events[row.EventNo] = model.NewEvent(row.EventNo, row.EventName, row.Date, model.Venue{
			Name:     row.VenueName,
			Capacity: row.VenueCapacity,
			Location: row.VenueLocation,
		})
	}
	for _, row := range membershipRows {
		if e, ok := events[row.EventNo]; ok {
			e.AddAttendee(row.AttendeeNo)
		}
	}
	attendees := make(map[int]*model.Attendee, len(attendeeRows))
	for _, row := range attendeeRows {
		attendees[row.AttendeeNo] = &model.Attendee{
			No:      row.AttendeeNo,
			EventNo: row.EventNo,
			Name:    row.Name,
			Phone:   row.Phone,
			Email:   row.Email,
		}
	}

	st.ResetEvents(events)
	st.ResetAttendees(attendees)
	return nil
}

// Save replaces every row in a single transaction.
func (s *SQLite) Save(ctx context.Context, st *store.Store) error {
	var (
		eventRows      []eventRow
		membershipRows []membershipRow
		attendeeRows   []attendeeRow
	)
	for _, e := range st.Events() {
		eventRows = append(eventRows, eventRow{
			EventNo:       e.No,
			EventName:     e.Name,
			Date:          e.Date,
			VenueName:     e.Venue.Name,
			VenueCapacity: e.Venue.Capacity,
			VenueLocation: e.Venue.Location,
		})
		for i, attendeeNo := range e.AttendeeIDs {
			membershipRows = append(membershipRows, membershipRow{
				EventNo:    e.No,
				Position:   i,
				AttendeeNo: attendeeNo,
			})
		}
	}
	for _, a := range st.Attendees() {
		attendeeRows = append(attendeeRows, attendeeRow{
			AttendeeNo: a.No,
			EventNo:    a.EventNo,
			Name:       a.Name,
			Phone:      a.Phone,
			Email:      a.Email,
		})
	}

	if err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := s.createSchema(ctx, tx); err != nil {
			return err
		}
		for _, m := range []interface{}{
			(*eventRow)(nil),
			(*membershipRow)(nil),
			(*attendeeRow)(nil),
		} {
			if _, err := tx.NewDelete().
				Model(m).
				Where("1 = 1").
				Exec(ctx); err != nil {
				return err
			}
		}
		if len(eventRows) > 0 {
			if _, err := tx.NewInsert().Model(&eventRows).Exec(ctx); err != nil {
				return err
			}
		}
		if len(membershipRows) > 0 {
			if _, err := tx.NewInsert().Model(&membershipRows).Exec(ctx); err != nil {
				return err
			}
		}
		if len(attendeeRows) > 0 {
			if _, err := tx.NewInsert().Model(&attendeeRows).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("(*SQLite).Save: %w", err)
	}

	slog.Debug("data saved", "sqlite", s.path)
	return nil
}
