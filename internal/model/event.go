package model

// Event status values.  Registration is only accepted while an event
// is upcoming or ongoing.
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the recognized event states.
func ValidStatus(s string) bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Event mirrors the `events` table plus two derived fields:
// CurrentAttendees is computed from registrations on every read and is
// never stored, and OrganizerUserID resolves the owning organizer back
// to a user id for the frontend.
type Event struct {
	ID               uint64 `json:"id"`
	OrganizerID      uint64 `json:"organizerId"`
	OrganizerUserID  uint64 `json:"organizerUserId"`
	Title            string `json:"title"`
	Date             string `json:"date"` // YYYY-MM-DD
	Location         string `json:"location"`
	Description      string `json:"description"`
	MaxAttendees     int    `json:"maxAttendees"`
	CurrentAttendees int    `json:"currentAttendees"`
	EventStatus      string `json:"eventStatus"`
	Image            string `json:"image,omitempty"`
}
