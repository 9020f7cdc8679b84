package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/api/middleware"
	"github.com/lakeview/hotel-system/internal/core/access"
	"github.com/lakeview/hotel-system/internal/core/domain"
)

// PageHandler serves the page shells. Dashboard subtrees sit behind the guard
// middleware, so by the time Dashboard runs the visitor is on the right
// surface; the body confirms which surface rendered and who is looking at it.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

type pageResponse struct {
	Surface       string       `json:"surface"`
	User          *domain.User `json:"user,omitempty"`
	ShowPublicNav bool         `json:"show_public_nav"`
}

// Dashboard renders the shell for one guarded surface.
func (h *PageHandler) Dashboard(surface string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, pageResponse{
			Surface: surface,
			User:    middleware.UserFromContext(c),
		})
	}
}

// Public renders the shell for an unguarded page. The navbar decision is
// included so anonymous visitors and logged-in users get the right chrome.
func (h *PageHandler) Public(c echo.Context) error {
	user := middleware.UserFromContext(c)
	return c.JSON(http.StatusOK, pageResponse{
		Surface:       "public",
		User:          user,
		ShowPublicNav: access.ShowPublicNav(user != nil, c.Request().URL.Path),
	})
}
