package model

// Employee mirrors the `employees` table.
type Employee struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Salary   float64 `json:"salary"`
	HireDate string  `json:"hireDate"` // YYYY-MM-DD
}

// Assignment staffs an employee on an event with a role label.  The
// (EmployeeID, EventID) pair is unique.
type Assignment struct {
	ID         uint64 `json:"assignId"`
	EmployeeID uint64 `json:"employeeId"`
	EventID    uint64 `json:"eventId"`
	Role       string `json:"role"`
}
