package access

import (
	"testing"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

func userWithRole(role domain.Role) *domain.User {
	return &domain.User{ID: "u1", Role: role, Active: true}
}

func TestEvaluate_Loading(t *testing.T) {
	d := Evaluate(false, nil, "/admin")
	if d.State != StateLoading {
		t.Fatalf("expected loading, got %v", d.State)
	}
	if d.RedirectTo != "" {
		t.Errorf("loading must never redirect, got %q", d.RedirectTo)
	}
}

func TestEvaluate_Unauthenticated(t *testing.T) {
	d := Evaluate(true, nil, "/cashier")
	if d.State != StateUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", d.State)
	}
	if d.RedirectTo != domain.PublicRoot {
		t.Errorf("expected redirect to %q, got %q", domain.PublicRoot, d.RedirectTo)
	}
}

func TestEvaluate_WrongSurface(t *testing.T) {
	d := Evaluate(true, userWithRole(domain.RoleCashier), "/admin")
	if d.State != StateWrongSurface {
		t.Fatalf("expected wrong surface, got %v", d.State)
	}
	if d.RedirectTo != "/cashier" {
		t.Errorf("expected redirect to /cashier, got %q", d.RedirectTo)
	}
}

func TestEvaluate_Authorized(t *testing.T) {
	for _, role := range domain.Roles() {
		d := Evaluate(true, userWithRole(role), role.LandingPath())
		if d.State != StateAuthorized {
			t.Errorf("%s on own surface: expected authorized, got %v", role, d.State)
		}
		if d.RedirectTo != "" {
			t.Errorf("%s: authorized must not redirect, got %q", role, d.RedirectTo)
		}
	}
}

// Following a redirect always lands in an authorized or unauthenticated
// terminal state, so a redirect chain cannot loop.
func TestEvaluate_RedirectsTerminate(t *testing.T) {
	user := userWithRole(domain.RoleManager)
	first := Evaluate(true, user, "/customer")
	if first.State != StateWrongSurface {
		t.Fatalf("expected wrong surface, got %v", first.State)
	}
	second := Evaluate(true, user, first.RedirectTo)
	if second.State != StateAuthorized {
		t.Fatalf("expected authorized after one hop, got %v", second.State)
	}
}

func TestLandingPath_UnknownRoleFallsBack(t *testing.T) {
	var bogus domain.Role = "janitor"
	if got := bogus.LandingPath(); got != domain.PublicRoot {
		t.Errorf("expected fallback to %q, got %q", domain.PublicRoot, got)
	}
}

func TestPostAuthRedirect_EntryRoutes(t *testing.T) {
	for _, path := range []string{"/", "/login", "/register", "/login/"} {
		to, ok := PostAuthRedirect(domain.RoleAdmin, path)
		if !ok {
			t.Errorf("%s: expected a redirect", path)
			continue
		}
		if to != "/admin" {
			t.Errorf("%s: expected /admin, got %q", path, to)
		}
	}
}

func TestPostAuthRedirect_DeepLinksSuppressed(t *testing.T) {
	for _, path := range []string{"/customer/menu", "/rooms", "/cashier", "/contact", "/customer/orders/ORD-1"} {
		if _, ok := PostAuthRedirect(domain.RoleCustomer, path); ok {
			t.Errorf("%s: deep links must not be bounced", path)
		}
	}
}

func TestShowPublicNav(t *testing.T) {
	cases := []struct {
		authenticated bool
		path          string
		want          bool
	}{
		{false, "/", true},
		{false, "", true},
		{false, "/rooms", true},
		{false, "/rooms/101", true},
		{false, "/contact", true},
		{false, "/roomsy", false},
		{false, "/login", false},
		{false, "/admin", false},
		{true, "/", false},
		{true, "/rooms", false},
		{true, "/customer", false},
	}
	for _, tc := range cases {
		if got := ShowPublicNav(tc.authenticated, tc.path); got != tc.want {
			t.Errorf("ShowPublicNav(%v, %q) = %v, want %v", tc.authenticated, tc.path, got, tc.want)
		}
	}
}

func TestSurfaceFor(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/admin", "/admin"},
		{"/admin/users", "/admin"},
		{"/cashier/", "/cashier"},
		{"/customer/menu", "/customer"},
		{"/rooms", ""},
		{"/", ""},
		{"/administrator", ""},
	}
	for _, tc := range cases {
		if got := SurfaceFor(tc.path); got != tc.want {
			t.Errorf("SurfaceFor(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestIsEntryPath(t *testing.T) {
	if !IsEntryPath("/") || !IsEntryPath("/login") || !IsEntryPath("/register") {
		t.Error("expected entry routes to be recognised")
	}
	if IsEntryPath("/customer") || IsEntryPath("/login/extra") {
		t.Error("expected non-entry routes to be rejected")
	}
}
