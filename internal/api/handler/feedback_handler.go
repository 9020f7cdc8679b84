package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/core/ports"
)

// FeedbackHandler exposes guest feedback submission and the staff listing.
type FeedbackHandler struct {
	feedback ports.FeedbackService
}

func NewFeedbackHandler(feedback ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

type submitFeedbackRequest struct {
	Rating  int    `json:"rating"  validate:"required,gte=1,max=5"`
	Comment string `json:"comment"`
}

// Submit records a guest's rating and comment.
//
// @Summary      Submit feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      submitFeedbackRequest  true  "Rating and comment"
// @Success      201   {object}  domain.Feedback
// @Failure      400   {object}  errorResponse
// @Router       /api/feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req submitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	fb, err := h.feedback.Submit(c.Request().Context(), ports.SubmitFeedbackInput{
		GuestID:    user.ID,
		GuestName:  user.FirstName + " " + user.LastName,
		RoomNumber: user.RoomNumber,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, fb)
}

// List returns all feedback, newest first. Staff only.
//
// @Summary      List feedback
// @Tags         feedback
// @Produce      json
// @Success      200  {array}  domain.Feedback
// @Router       /api/feedback [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	items, err := h.feedback.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
