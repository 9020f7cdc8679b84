package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/api/middleware"
	"github.com/lakeview/hotel-system/internal/core/domain"
)

// ctxUser extracts the authenticated user injected by the Auth middleware and
// fast-fails before any service call. A nil user on a protected route means
// the middleware chain is miswired; reject with 401 rather than panic later.
func ctxUser(c echo.Context) (*domain.User, error) {
	user := middleware.UserFromContext(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

// isStaff reports whether the user holds any non-customer role.
func isStaff(user *domain.User) bool {
	return user != nil && user.Role != domain.RoleCustomer && user.Role.Valid()
}
