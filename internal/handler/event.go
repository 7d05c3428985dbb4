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

// EventStore is the event repository surface used by event endpoints.
type EventStore interface {
	List(ctx context.Context) ([]model.Event, error)
	GetByID(ctx context.Context, id uint64) (model.Event, error)
	Create(ctx context.Context, organizerID uint64, ev model.Event) (uint64, error)
}

// OrganizerStore resolves (and lazily creates) the caller's organizer row.
type OrganizerStore interface {
	EnsureOrganizer(ctx context.Context, userID uint64) (uint64, error)
}

// EventHandler serves the public event reads and the admin create.
type EventHandler struct {
	Events     EventStore
	Organizers OrganizerStore
}

func NewEventHandler(events EventStore, organizers OrganizerStore) *EventHandler {
	return &EventHandler{Events: events, Organizers: organizers}
}

// ListEvents returns all events with their derived attendee counts,
// newest date first.
func (h *EventHandler) ListEvents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	events, err := h.Events.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching events"})
	}
	return c.JSON(http.StatusOK, events)
}

// GetEvent returns a single event by id.
func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid event id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	ev, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching event"})
	}
	return c.JSON(http.StatusOK, ev)
}

type createEventReq struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	MaxAttendees int    `json:"maxAttendees"`
	EventStatus  string `json:"eventStatus"`
	Image        string `json:"image"`
}

// CreateEvent inserts a new event under the caller's organizer row,
// creating that row on first use.  Admin only (enforced in the router).
func (h *EventHandler) CreateEvent(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
	}

	var req createEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Date) == "" || req.MaxAttendees <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide title, date, and maxAttendees"})
	}
	status := strings.ToLower(strings.TrimSpace(req.EventStatus))
	if status == "" {
		status = model.StatusUpcoming
	}
	if !model.ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid eventStatus"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	organizerID, err := h.Organizers.EnsureOrganizer(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during event creation"})
	}

	eventID, err := h.Events.Create(ctx, organizerID, model.Event{
		Title:        req.Title,
		Date:         req.Date,
		Location:     req.Location,
		Description:  req.Description,
		MaxAttendees: req.MaxAttendees,
		EventStatus:  status,
		Image:        req.Image,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during event creation"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Event created successfully",
		"eventId": eventID,
	})
}
