package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-management/internal/model"
	"github.com/iliyamo/event-management/internal/repository"
)

// FeedbackStore is the feedback repository surface.
type FeedbackStore interface {
	Create(ctx context.Context, userID, eventID uint64, rating int, comment string) (uint64, error)
	ListByEvent(ctx context.Context, eventID uint64) ([]model.EventFeedback, error)
}

// FeedbackHandler serves feedback submission and the public listing.
type FeedbackHandler struct {
	Feedback FeedbackStore
}

func NewFeedbackHandler(feedback FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{Feedback: feedback}
}

type feedbackReq struct {
	EventID uint64 `json:"eventId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// SubmitFeedback stores one rating+comment for the caller and event.
// There is no check that the caller attended the event; registrations
// and feedback are independent ledgers.
func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
	}

	var req feedbackReq
	if err := c.Bind(&req); err != nil || req.EventID == 0 || req.Rating == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide eventId and rating"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Rating must be between 1 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Feedback.Create(ctx, uid, req.EventID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "You have already submitted feedback for this event"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during feedback submission"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Feedback submitted successfully",
		"feedbackId": id,
	})
}

// EventFeedback lists all feedback for an event.  Public.
func (h *FeedbackHandler) EventFeedback(c echo.Context) error {
	eventID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid event id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	list, err := h.Feedback.ListByEvent(ctx, eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching feedback"})
	}
	return c.JSON(http.StatusOK, list)
}
