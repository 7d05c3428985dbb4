package model

import "time"

// Notification is an append-only per-user message.  EventID is nil for
// messages not tied to an event.  Only the owning user may mark a
// notification read.
type Notification struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"userId"`
	EventID    *uint64   `json:"eventId,omitempty"`
	EventTitle string    `json:"eventTitle,omitempty"` // joined from events, empty when EventID is nil
	Message    string    `json:"message"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}
