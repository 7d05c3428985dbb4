package model

import "time"

// Feedback is one rating with an optional comment per (user, event).
type Feedback struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"userId"`
	EventID     uint64    `json:"eventId"`
	Rating      int       `json:"rating"` // 1..5
	Comment     string    `json:"comment"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// EventFeedback is a feedback row joined with the author's name for
// the public feedback listing.
type EventFeedback struct {
	Feedback
	UserName string `json:"userName"`
}
