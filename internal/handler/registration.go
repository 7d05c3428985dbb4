package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-management/internal/model"
	"github.com/iliyamo/event-management/internal/queue"
	"github.com/iliyamo/event-management/internal/repository"
)

// RegistrationStore is the registration repository surface used here.
// Register performs all its checks and inserts in one transaction; the
// sentinel errors it returns drive the HTTP status mapping below.
type RegistrationStore interface {
	Register(ctx context.Context, userID, eventID uint64) (uint64, model.Event, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.UserRegistration, error)
	ListByEvent(ctx context.Context, eventID uint64) ([]model.EventRegistration, error)
}

// PublishFunc sends a confirmed registration to the message broker.
type PublishFunc func(ctx context.Context, event queue.RegistrationConfirmedEvent) error

// RegistrationHandler serves event sign-up and the two roster views.
type RegistrationHandler struct {
	Registrations RegistrationStore
	Publish       PublishFunc // best effort, may be nil
}

func NewRegistrationHandler(store RegistrationStore, publish PublishFunc) *RegistrationHandler {
	return &RegistrationHandler{Registrations: store, Publish: publish}
}

type registerEventReq struct {
	EventID uint64 `json:"eventId"`
}

// RegisterEvent signs the caller up for an event and records their
// notification.  The broker publish happens after the transaction
// commits and never fails the request.
func (h *RegistrationHandler) RegisterEvent(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
	}

	var req registerEventReq
	if err := c.Bind(&req); err != nil || req.EventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide eventId"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	regID, ev, err := h.Registrations.Register(ctx, uid, req.EventID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotAttendee):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User is not registered as an attendee"})
		case errors.Is(err, repository.ErrAlreadyRegistered):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "You are already registered for this event"})
		case errors.Is(err, repository.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Event not found"})
		case errors.Is(err, repository.ErrEventFull):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Event is fully booked"})
		case errors.Is(err, repository.ErrEventClosed):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Cannot register for a completed or cancelled event"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during event registration"})
	}

	if h.Publish != nil {
		_ = h.Publish(ctx, queue.RegistrationConfirmedEvent{
			RegistrationID: regID,
			UserID:         uid,
			EventID:        ev.ID,
			EventTitle:     ev.Title,
			EventDate:      ev.Date,
			Location:       ev.Location,
			RegisteredAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":        "Successfully registered for the event",
		"registrationId": regID,
	})
}

// UserRegistrations lists the registrations of the user in the path.
// Callers may only read their own list unless their token carries the
// admin claim.
func (h *RegistrationHandler) UserRegistrations(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
	}
	target, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	if target != uid && !isAdminClaim(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	regs, err := h.Registrations.ListByUser(ctx, target)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching registrations"})
	}
	return c.JSON(http.StatusOK, regs)
}

// EventRegistrations lists an event's roster.  Admin only (router).
func (h *RegistrationHandler) EventRegistrations(c echo.Context) error {
	eventID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid event id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	regs, err := h.Registrations.ListByEvent(ctx, eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching registrations"})
	}
	return c.JSON(http.StatusOK, regs)
}
