package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

func guardRequest(t *testing.T, path string, role domain.Role, surface string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(ContextUser, &domain.User{ID: "u1", Role: role, Active: true})
	}

	rendered := false
	handler := Guard(surface)(func(c echo.Context) error {
		rendered = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	return rec, rendered
}

func TestGuard_AnonymousRedirectsToPublicRoot(t *testing.T) {
	rec, rendered := guardRequest(t, "/admin", "", "/admin")
	if rendered {
		t.Fatal("anonymous visitor must not render a dashboard")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != domain.PublicRoot {
		t.Errorf("expected redirect to %q, got %q", domain.PublicRoot, loc)
	}
}

func TestGuard_WrongSurfaceRedirectsToOwnLanding(t *testing.T) {
	rec, rendered := guardRequest(t, "/admin", domain.RoleCashier, "/admin")
	if rendered {
		t.Fatal("cashier must not render the admin dashboard")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/cashier" {
		t.Errorf("expected redirect to /cashier, got %q", loc)
	}
}

func TestGuard_OwnSurfaceRenders(t *testing.T) {
	rec, rendered := guardRequest(t, "/cashier", domain.RoleCashier, "/cashier")
	if !rendered {
		t.Fatal("cashier must render their own dashboard")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_DeepLinkOnOwnSurfaceRenders(t *testing.T) {
	_, rendered := guardRequest(t, "/customer/menu", domain.RoleCustomer, "/customer")
	if !rendered {
		t.Fatal("customer deep link on own surface must render")
	}
}
