package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-management/internal/model"
	"github.com/iliyamo/event-management/internal/repository"
)

// EmployeeStore is the employee repository surface.
type EmployeeStore interface {
	List(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id uint64) (model.Employee, error)
	Create(ctx context.Context, name, role string, salary float64) (uint64, error)
	Update(ctx context.Context, id uint64, name, role string, salary float64) error
	Delete(ctx context.Context, id uint64) error
}

// EmployeeHandler serves the admin-only employee CRUD.
type EmployeeHandler struct {
	Employees EmployeeStore
}

func NewEmployeeHandler(employees EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{Employees: employees}
}

type employeeReq struct {
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Salary float64 `json:"salary"`
}

func (r employeeReq) valid() bool {
	return strings.TrimSpace(r.Name) != "" && strings.TrimSpace(r.Role) != "" && r.Salary > 0
}

func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	employees, err := h.Employees.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching employees"})
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid employee id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	e, err := h.Employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Employee not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching employee"})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	var req employeeReq
	if err := c.Bind(&req); err != nil || !req.valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide name, role, and salary"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Employees.Create(ctx, req.Name, req.Role, req.Salary)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during employee creation"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Employee added successfully",
		"employeeId": id,
	})
}

func (h *EmployeeHandler) UpdateEmployee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid employee id"})
	}
	var req employeeReq
	if err := c.Bind(&req); err != nil || !req.valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide name, role, and salary"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Employees.Update(ctx, id, req.Name, req.Role, req.Salary); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Employee not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during employee update"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Employee updated successfully"})
}

func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid employee id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Employees.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Employee not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during employee deletion"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Employee deleted successfully"})
}
