package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/event-management/internal/model"
)

type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

// selectEvent pulls an event row together with its derived attendee
// count and the organizer's user id.  currentAttendees is recomputed on
// every read; it is never stored.
const selectEvent = `SELECT e.event_id, e.organizer_id, o.user_id, e.title,
       DATE_FORMAT(e.date, '%Y-%m-%d'), e.location, COALESCE(e.description, ''),
       e.max_attendees,
       (SELECT COUNT(*) FROM registrations r WHERE r.event_id = e.event_id),
       e.event_status, e.image
  FROM events e
  JOIN organizers o ON o.organizer_id = e.organizer_id`

func scanEvent(row interface{ Scan(...any) error }) (model.Event, error) {
	var ev model.Event
	err := row.Scan(&ev.ID, &ev.OrganizerID, &ev.OrganizerUserID, &ev.Title,
		&ev.Date, &ev.Location, &ev.Description, &ev.MaxAttendees,
		&ev.CurrentAttendees, &ev.EventStatus, &ev.Image)
	return ev, err
}

// List returns all events ordered by date descending.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.DB.QueryContext(ctx, selectEvent+" ORDER BY e.date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// GetByID returns a single event or ErrEventNotFound.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	ev, err := scanEvent(r.DB.QueryRowContext(ctx, selectEvent+" WHERE e.event_id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Event{}, ErrEventNotFound
	}
	return ev, err
}

// Create inserts an event under the given organizer and returns its id.
func (r *EventRepo) Create(ctx context.Context, organizerID uint64, ev model.Event) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO events (organizer_id, title, date, location, description, max_attendees, event_status, image)
		 VALUES (?,?,?,?,?,?,?,?)`,
		organizerID, ev.Title, ev.Date, ev.Location, ev.Description,
		ev.MaxAttendees, ev.EventStatus, ev.Image)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
