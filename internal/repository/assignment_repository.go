package repository

import (
	"context"
	"database/sql"
)

type AssignmentRepo struct{ DB *sql.DB }

func NewAssignmentRepo(db *sql.DB) *AssignmentRepo { return &AssignmentRepo{DB: db} }

// Assign staffs an employee on an event.  The unique key on
// (employee_id, event_id) decides duplicates, so a racing second insert
// fails here rather than after a separate existence check.
func (r *AssignmentRepo) Assign(ctx context.Context, employeeID, eventID uint64, role string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO assignments (employee_id, event_id, role) VALUES (?,?,?)",
		employeeID, eventID, role)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrAlreadyAssigned
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
