// Package access decides who may see which surface of the application. It is
// pure: every decision is a function of the resolved session state and the
// current path, with redirects expressed as return values rather than side
// effects, so the whole policy is testable without an HTTP stack.
package access

import (
	"strings"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

// State is the guard state machine for a protected surface.
type State int

const (
	// StateLoading means the session check has not resolved yet. Guards
	// render a neutral placeholder and must not redirect.
	StateLoading State = iota
	// StateUnauthenticated means the check resolved with no user.
	StateUnauthenticated
	// StateWrongSurface means the user is authenticated but the current
	// path does not belong to their role's surface.
	StateWrongSurface
	// StateAuthorized means the user is on their own surface.
	StateAuthorized
)

// Decision is the action a guard takes for a given state.
type Decision struct {
	State State
	// RedirectTo is non-empty only for StateUnauthenticated and
	// StateWrongSurface. Once the client follows it, the destination's own
	// guard takes over; the same inputs always yield the same decision, so
	// no redirect loop is possible.
	RedirectTo string
}

// entryPaths are the only routes where a resolved session may force a
// role-based redirect. Deep links (a QR-code menu page, for instance) must
// stay where they are.
var entryPaths = map[string]struct{}{
	"/":         {},
	"/login":    {},
	"/register": {},
}

// publicNavPrefixes are the page prefixes on which the public navigation bar
// may appear.
var publicNavPrefixes = []string{"/rooms", "/contact"}

// Evaluate runs the guard state machine for a dashboard surface.
// surface is the canonical path of the subtree being guarded (e.g. "/cashier");
// resolved reports whether the session check has completed.
func Evaluate(resolved bool, user *domain.User, surface string) Decision {
	if !resolved {
		return Decision{State: StateLoading}
	}
	if user == nil {
		return Decision{State: StateUnauthenticated, RedirectTo: domain.PublicRoot}
	}
	if landing := user.Role.LandingPath(); landing != surface {
		return Decision{State: StateWrongSurface, RedirectTo: landing}
	}
	return Decision{State: StateAuthorized}
}

// IsEntryPath reports whether path is one of the entry routes where a
// post-authentication redirect is permitted.
func IsEntryPath(path string) bool {
	_, ok := entryPaths[normalize(path)]
	return ok
}

// PostAuthRedirect returns the path a freshly confirmed user should be sent
// to, and whether a redirect should happen at all. Redirects are suppressed
// everywhere except entry routes.
func PostAuthRedirect(role domain.Role, currentPath string) (string, bool) {
	if !IsEntryPath(currentPath) {
		return "", false
	}
	return role.LandingPath(), true
}

// ShowPublicNav reports whether the public navigation bar is displayed.
// Authenticated visitors never see it; anonymous visitors see it only on
// public pages.
func ShowPublicNav(authenticated bool, path string) bool {
	if authenticated {
		return false
	}
	p := normalize(path)
	if p == domain.PublicRoot {
		return true
	}
	for _, prefix := range publicNavPrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}

// SurfaceFor extracts the dashboard surface a path belongs to, or "" when the
// path is not under any role surface.
func SurfaceFor(path string) string {
	p := normalize(path)
	for _, role := range domain.Roles() {
		landing := role.LandingPath()
		if p == landing || strings.HasPrefix(p, landing+"/") {
			return landing
		}
	}
	return ""
}

func normalize(path string) string {
	if path == "" {
		return domain.PublicRoot
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return domain.PublicRoot
		}
	}
	return path
}
