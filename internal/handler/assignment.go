package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-management/internal/repository"
)

// AssignmentStore links employees to events.
type AssignmentStore interface {
	Assign(ctx context.Context, employeeID, eventID uint64, role string) (uint64, error)
}

// AssignmentHandler serves the admin-only staffing endpoint.
type AssignmentHandler struct {
	Assignments AssignmentStore
}

func NewAssignmentHandler(assignments AssignmentStore) *AssignmentHandler {
	return &AssignmentHandler{Assignments: assignments}
}

type assignEventReq struct {
	EmployeeID uint64 `json:"employeeId"`
	EventID    uint64 `json:"eventId"`
	Role       string `json:"role"`
}

// AssignEvent staffs an employee on an event with a role label.
func (h *AssignmentHandler) AssignEvent(c echo.Context) error {
	var req assignEventReq
	if err := c.Bind(&req); err != nil || req.EmployeeID == 0 || req.EventID == 0 || strings.TrimSpace(req.Role) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide employeeId, eventId, and role"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Assignments.Assign(ctx, req.EmployeeID, req.EventID, req.Role)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyAssigned) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Employee is already assigned to this event"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during employee assignment"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Employee assigned successfully",
		"assignId": id,
	})
}
