package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/api/metrics"
	"github.com/lakeview/hotel-system/internal/core/access"
)

// Guard protects one dashboard subtree. It must run after OptionalAuth, so
// the session is already resolved; the redirect is the transition action of
// the guard state machine. Anonymous visitors go to the public root, users on
// the wrong surface go to their own landing path, and the destination's own
// guard takes over from there. The decision is a pure function of the session
// state, so no redirect loop can form.
func Guard(surface string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := access.Evaluate(true, UserFromContext(c), surface)
			switch decision.State {
			case access.StateUnauthenticated:
				metrics.GuardRedirectsTotal.WithLabelValues("unauthenticated").Inc()
				return c.Redirect(http.StatusSeeOther, decision.RedirectTo)
			case access.StateWrongSurface:
				metrics.GuardRedirectsTotal.WithLabelValues("wrong_surface").Inc()
				return c.Redirect(http.StatusSeeOther, decision.RedirectTo)
			default:
				return next(c)
			}
		}
	}
}
