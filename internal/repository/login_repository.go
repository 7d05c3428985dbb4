package repository

import (
	"context"
	"database/sql"
	"errors"
)

// LoginRepo maintains the login/logout audit trail.
type LoginRepo struct{ DB *sql.DB }

func NewLoginRepo(db *sql.DB) *LoginRepo { return &LoginRepo{DB: db} }

// RecordLogin appends an open login record with login_time = now.
func (r *LoginRepo) RecordLogin(ctx context.Context, userID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO login_records (user_id, login_time) VALUES (?, NOW())", userID)
	return err
}

// CloseLatest stamps logout_time on the user's most recent open login
// record.  No-op when the user has no open record, so logout is
// idempotent.
func (r *LoginRepo) CloseLatest(ctx context.Context, userID uint64) error {
	var loginID uint64
	err := r.DB.QueryRowContext(ctx,
		`SELECT login_id FROM login_records
		  WHERE user_id=? AND logout_time IS NULL
		  ORDER BY login_time DESC LIMIT 1`, userID).Scan(&loginID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"UPDATE login_records SET logout_time=NOW() WHERE login_id=?", loginID)
	return err
}
