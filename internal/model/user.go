package model

import "time"

// User represents an application user record as stored in the
// `users` table.  The password hash is never serialized; handlers
// expose only the public fields via the json tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password (never returned to clients).
//  Phone        – optional phone number.
//  Address      – optional postal address.
type User struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phoneNumber,omitempty"`
	Address      string `json:"address,omitempty"`
}

// Attendee links a user to their participant identity.  A row is
// created automatically when the user registers an account, so every
// user can sign up for events without further setup.
type Attendee struct {
	ID     uint64 `json:"attendeeId"` // attendees.attendee_id
	UserID uint64 `json:"userId"`     // attendees.user_id (one-to-one)
}

// Organizer links a user to their event-creator identity.  Created
// lazily the first time a user creates an event.  Kept distinct from
// staff assignments: organizing and being staffed are separate relations.
type Organizer struct {
	ID     uint64 `json:"organizerId"` // organizers.organizer_id
	UserID uint64 `json:"userId"`      // organizers.user_id
}

// LoginRecord models a row in the `login_records` audit table.  One
// open record (LogoutTime nil) exists per active session.
type LoginRecord struct {
	ID         uint64     `json:"loginId"`
	UserID     uint64     `json:"userId"`
	LoginTime  time.Time  `json:"loginTime"`
	LogoutTime *time.Time `json:"logoutTime,omitempty"` // nil while the session is open
}
