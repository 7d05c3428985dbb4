// Package repository implements the data access layer over MySQL.
// Sentinel errors let handlers map each failure to the right HTTP
// response without inspecting driver errors.
package repository

import (
	"errors"
	"strings"
)

var (
	// ErrEmailExists is returned when registering with an email that
	// already has an account.
	ErrEmailExists = errors.New("email already exists")
	// ErrEventNotFound is returned when the referenced event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrNotAttendee means the user has no attendee row.  The account
	// registration flow always creates one, so this only shows up for
	// rows created outside the API.
	ErrNotAttendee = errors.New("user is not registered as an attendee")
	// ErrAlreadyRegistered rejects a second registration for the same
	// (attendee, event) pair.
	ErrAlreadyRegistered = errors.New("already registered for this event")
	// ErrEventFull rejects registration once the attendee count has
	// reached maxAttendees.
	ErrEventFull = errors.New("event is fully booked")
	// ErrEventClosed rejects registration for completed or cancelled events.
	ErrEventClosed = errors.New("event is completed or cancelled")
	// ErrAlreadyAssigned rejects a duplicate (employee, event) assignment.
	ErrAlreadyAssigned = errors.New("employee already assigned to this event")
	// ErrFeedbackExists rejects a second feedback for the same (user, event).
	ErrFeedbackExists = errors.New("feedback already submitted for this event")
	// ErrNotFound is the generic missing-row error for single-row lookups.
	ErrNotFound = errors.New("not found")
)

// isDuplicateKey reports whether err is a MySQL 1062 unique key violation.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
