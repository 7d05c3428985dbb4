package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/event-management/internal/model"
)

type RegistrationRepo struct{ DB *sql.DB }

func NewRegistrationRepo(db *sql.DB) *RegistrationRepo { return &RegistrationRepo{DB: db} }

// Register signs a user up for an event.  All checks and both inserts
// run inside one transaction with the event row locked.  The capacity
// recount is itself a locking read: under REPEATABLE READ a plain COUNT
// would read the transaction's snapshot, which predates a competing
// commit, so a blocked transaction must recount against the latest
// committed rows once it holds the event lock.  The unique key on
// (attendee_id, event_id) backstops the duplicate check.  Returns the
// new registration id and the event as seen inside the transaction.
func (r *RegistrationRepo) Register(ctx context.Context, userID, eventID uint64) (uint64, model.Event, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, model.Event{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var attendeeID uint64
	err = tx.QueryRowContext(ctx,
		"SELECT attendee_id FROM attendees WHERE user_id=? LIMIT 1", userID).Scan(&attendeeID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, model.Event{}, ErrNotAttendee
	}
	if err != nil {
		return 0, model.Event{}, err
	}

	var exists int
	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM registrations WHERE attendee_id=? AND event_id=? LIMIT 1",
		attendeeID, eventID).Scan(&exists)
	if err == nil {
		return 0, model.Event{}, ErrAlreadyRegistered
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, model.Event{}, err
	}

	// Lock the event row for the remainder of the transaction.
	var ev model.Event
	err = tx.QueryRowContext(ctx,
		`SELECT event_id, title, DATE_FORMAT(date, '%Y-%m-%d'), location, max_attendees, event_status
		   FROM events WHERE event_id=? FOR UPDATE`, eventID).
		Scan(&ev.ID, &ev.Title, &ev.Date, &ev.Location, &ev.MaxAttendees, &ev.EventStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, model.Event{}, ErrEventNotFound
	}
	if err != nil {
		return 0, model.Event{}, err
	}

	if err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM registrations WHERE event_id=? FOR UPDATE", eventID).
		Scan(&ev.CurrentAttendees); err != nil {
		return 0, model.Event{}, err
	}
	if ev.CurrentAttendees >= ev.MaxAttendees {
		return 0, model.Event{}, ErrEventFull
	}
	if ev.EventStatus == model.StatusCompleted || ev.EventStatus == model.StatusCancelled {
		return 0, model.Event{}, ErrEventClosed
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO registrations (attendee_id, event_id, register_date) VALUES (?,?,CURDATE())",
		attendeeID, eventID)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, model.Event{}, ErrAlreadyRegistered
		}
		return 0, model.Event{}, err
	}
	regID, err := res.LastInsertId()
	if err != nil {
		return 0, model.Event{}, err
	}

	msg := fmt.Sprintf("You have successfully registered for %s", ev.Title)
	if err = insertNotification(ctx, tx, userID, &eventID, msg); err != nil {
		return 0, model.Event{}, err
	}

	if err = tx.Commit(); err != nil {
		return 0, model.Event{}, err
	}
	ev.CurrentAttendees++
	return uint64(regID), ev, nil
}

// ListByUser returns the user's registrations joined with their events,
// newest event first.  A user without an attendee row has an empty list.
func (r *RegistrationRepo) ListByUser(ctx context.Context, userID uint64) ([]model.UserRegistration, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT reg.registration_id, reg.attendee_id, reg.event_id,
		        DATE_FORMAT(reg.register_date, '%Y-%m-%d'),
		        e.event_id, e.organizer_id, o.user_id, e.title,
		        DATE_FORMAT(e.date, '%Y-%m-%d'), e.location, COALESCE(e.description, ''),
		        e.max_attendees,
		        (SELECT COUNT(*) FROM registrations r2 WHERE r2.event_id = e.event_id),
		        e.event_status, e.image
		   FROM registrations reg
		   JOIN attendees a ON a.attendee_id = reg.attendee_id
		   JOIN events e ON e.event_id = reg.event_id
		   JOIN organizers o ON o.organizer_id = e.organizer_id
		  WHERE a.user_id = ?
		  ORDER BY e.date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.UserRegistration{}
	for rows.Next() {
		var ur model.UserRegistration
		if err := rows.Scan(&ur.ID, &ur.AttendeeID, &ur.EventID, &ur.RegisterDate,
			&ur.Event.ID, &ur.Event.OrganizerID, &ur.Event.OrganizerUserID, &ur.Event.Title,
			&ur.Event.Date, &ur.Event.Location, &ur.Event.Description,
			&ur.Event.MaxAttendees, &ur.Event.CurrentAttendees,
			&ur.Event.EventStatus, &ur.Event.Image); err != nil {
			return nil, err
		}
		out = append(out, ur)
	}
	return out, rows.Err()
}

// ListByEvent returns the roster of an event: registrations joined with
// each attendee's user identity, most recent registration first.
func (r *RegistrationRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.EventRegistration, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT reg.registration_id, reg.attendee_id, reg.event_id,
		        DATE_FORMAT(reg.register_date, '%Y-%m-%d'),
		        u.user_id, u.name, u.email
		   FROM registrations reg
		   JOIN attendees a ON a.attendee_id = reg.attendee_id
		   JOIN users u ON u.user_id = a.user_id
		  WHERE reg.event_id = ?
		  ORDER BY reg.register_date DESC, reg.registration_id DESC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.EventRegistration{}
	for rows.Next() {
		var er model.EventRegistration
		if err := rows.Scan(&er.ID, &er.AttendeeID, &er.EventID, &er.RegisterDate,
			&er.UserID, &er.UserName, &er.UserEmail); err != nil {
			return nil, err
		}
		out = append(out, er)
	}
	return out, rows.Err()
}
