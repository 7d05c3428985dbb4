package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/event-management/internal/model"
)

type FeedbackRepo struct{ DB *sql.DB }

func NewFeedbackRepo(db *sql.DB) *FeedbackRepo { return &FeedbackRepo{DB: db} }

// Create stores one rating+comment per (user, event).  Duplicates are
// decided by the unique key rather than a separate existence check.
func (r *FeedbackRepo) Create(ctx context.Context, userID, eventID uint64, rating int, comment string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO feedback (user_id, event_id, rating, comment) VALUES (?,?,?,?)",
		userID, eventID, rating, comment)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrFeedbackExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByEvent returns all feedback for an event joined with the author
// name, newest first.
func (r *FeedbackRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.EventFeedback, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT f.feedback_id, f.user_id, f.event_id, f.rating, COALESCE(f.comment, ''), f.submitted_at, u.name
		   FROM feedback f
		   JOIN users u ON u.user_id = f.user_id
		  WHERE f.event_id = ?
		  ORDER BY f.submitted_at DESC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.EventFeedback{}
	for rows.Next() {
		var fb model.EventFeedback
		if err := rows.Scan(&fb.ID, &fb.UserID, &fb.EventID, &fb.Rating,
			&fb.Comment, &fb.SubmittedAt, &fb.UserName); err != nil {
			return nil, err
		}
		out = append(out, fb)
	}
	return out, rows.Err()
}
