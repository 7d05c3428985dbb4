package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-management/internal/model"
	"github.com/iliyamo/event-management/internal/repository"
)

// NotificationStore is the notification repository surface.
type NotificationStore interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID uint64) error
}

// NotificationHandler serves the caller's notification feed.
type NotificationHandler struct {
	Notifications NotificationStore
}

func NewNotificationHandler(notifications NotificationStore) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications}
}

// ListNotifications returns the caller's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	list, err := h.Notifications.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching notifications"})
	}
	return c.JSON(http.StatusOK, list)
}

// MarkNotificationRead flags one of the caller's notifications as read.
// A notification owned by someone else is indistinguishable from a
// missing one: both are 404.
func (h *NotificationHandler) MarkNotificationRead(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid notification id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Notifications.MarkRead(ctx, id, uid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Notification not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while updating notification"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notification marked as read"})
}
