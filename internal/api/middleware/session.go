package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// Context keys under which the resolved identity is stored.
const (
	ContextUser  = "user"
	ContextToken = "session_token"
)

// Auth resolves the session cookie to a user and injects it into context.
// Missing or dead sessions yield 401; a deactivated account propagates
// domain.ErrAccountDeactivated so the error handler renders the distinguished
// 403.
func Auth(auth ports.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			user, err := auth.SessionCheck(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}

			c.Set(ContextUser, user)
			c.Set(ContextToken, cookie.Value)
			return next(c)
		}
	}
}

// OptionalAuth resolves the session when present but never fails the request.
// Page guards downstream decide what an anonymous visitor may see.
func OptionalAuth(auth ports.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err == nil && cookie.Value != "" {
				if user, err := auth.SessionCheck(c.Request().Context(), cookie.Value); err == nil {
					c.Set(ContextUser, user)
					c.Set(ContextToken, cookie.Value)
				}
			}
			return next(c)
		}
	}
}

// UserFromContext returns the authenticated user injected by Auth or
// OptionalAuth, or nil for anonymous requests.
func UserFromContext(c echo.Context) *domain.User {
	user, _ := c.Get(ContextUser).(*domain.User)
	return user
}
