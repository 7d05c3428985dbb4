package model

// Registration links an attendee to an event they will attend.  The
// (AttendeeID, EventID) pair is unique; duplicates are rejected both by
// the application checks and by a database unique key.
type Registration struct {
	ID           uint64 `json:"id"`
	AttendeeID   uint64 `json:"attendeeId"`
	EventID      uint64 `json:"eventId"`
	RegisterDate string `json:"registerDate"` // YYYY-MM-DD
}

// UserRegistration is a registration joined with its event, returned
// when a user lists their own registrations.
type UserRegistration struct {
	Registration
	Event Event `json:"event"`
}

// EventRegistration is a registration joined with the registered
// user's identity, returned on the admin roster view for an event.
type EventRegistration struct {
	Registration
	UserID    uint64 `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}
