package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/event-management/internal/model"
)

type EmployeeRepo struct{ DB *sql.DB }

func NewEmployeeRepo(db *sql.DB) *EmployeeRepo { return &EmployeeRepo{DB: db} }

const selectEmployee = `SELECT employee_id, name, role, salary, DATE_FORMAT(hire_date, '%Y-%m-%d') FROM employees`

// List returns all employees ordered by name.
func (r *EmployeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.DB.QueryContext(ctx, selectEmployee+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Salary, &e.HireDate); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByID returns one employee or ErrNotFound.
func (r *EmployeeRepo) GetByID(ctx context.Context, id uint64) (model.Employee, error) {
	var e model.Employee
	err := r.DB.QueryRowContext(ctx, selectEmployee+" WHERE employee_id=?", id).
		Scan(&e.ID, &e.Name, &e.Role, &e.Salary, &e.HireDate)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Employee{}, ErrNotFound
	}
	return e, err
}

// Create inserts an employee with hire_date set to today.
func (r *EmployeeRepo) Create(ctx context.Context, name, role string, salary float64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO employees (name, role, salary, hire_date) VALUES (?,?,?,CURDATE())",
		name, role, salary)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update rewrites name, role and salary.  ErrNotFound when no row matched.
func (r *EmployeeRepo) Update(ctx context.Context, id uint64, name, role string, salary float64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE employees SET name=?, role=?, salary=? WHERE employee_id=?",
		name, role, salary, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// The update may also match zero rows when values are unchanged;
		// confirm existence before reporting a missing employee.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an employee.  ErrNotFound when no row matched.
func (r *EmployeeRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM employees WHERE employee_id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
