package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/event-management/internal/model"
)

type NotificationRepo struct{ DB *sql.DB }

func NewNotificationRepo(db *sql.DB) *NotificationRepo { return &NotificationRepo{DB: db} }

// executor is the slice of *sql.DB and *sql.Tx the inserts below need,
// so a notification can be written standalone or inside a transaction.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertNotification(ctx context.Context, ex executor, userID uint64, eventID *uint64, message string) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO notifications (user_id, event_id, message) VALUES (?,?,?)",
		userID, eventID, message)
	return err
}

// Create appends a notification for a user.  eventID may be nil for
// messages not tied to an event.
func (r *NotificationRepo) Create(ctx context.Context, userID uint64, eventID *uint64, message string) error {
	return insertNotification(ctx, r.DB, userID, eventID, message)
}

// ListByUser returns the user's notifications with the related event
// title when one exists, newest first.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Notification, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT n.notification_id, n.user_id, n.event_id, COALESCE(e.title, ''),
		        n.message, n.is_read, n.created_at
		   FROM notifications n
		   LEFT JOIN events e ON e.event_id = n.event_id
		  WHERE n.user_id = ?
		  ORDER BY n.created_at DESC, n.notification_id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Notification{}
	for rows.Next() {
		var n model.Notification
		var eventID sql.NullInt64
		if err := rows.Scan(&n.ID, &n.UserID, &eventID, &n.EventTitle,
			&n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		if eventID.Valid {
			id := uint64(eventID.Int64)
			n.EventID = &id
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead flags a notification as read.  The update is scoped to the
// owning user, so marking someone else's notification reports ErrNotFound.
func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID, userID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE notifications SET is_read=1 WHERE notification_id=? AND user_id=?",
		notificationID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Zero rows also happens when the row is already read; only a
		// genuinely missing or foreign row is a 404.
		var one int
		err := r.DB.QueryRowContext(ctx,
			"SELECT 1 FROM notifications WHERE notification_id=? AND user_id=? LIMIT 1",
			notificationID, userID).Scan(&one)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	return nil
}
