package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

const testCookie = "hotel_session"

type stubAuthService struct {
	user *domain.User
	err  error
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) SessionCheck(_ context.Context, token string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }

func sessionRequest(withCookie bool) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: "tok123"})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_MissingCookie(t *testing.T) {
	c, _ := sessionRequest(false)

	handler := Auth(&stubAuthService{}, testCookie)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_ValidSessionInjectsUser(t *testing.T) {
	c, _ := sessionRequest(true)
	want := &domain.User{ID: "u1", Role: domain.RoleManager, Active: true}

	handler := Auth(&stubAuthService{user: want}, testCookie)(func(c echo.Context) error {
		got := UserFromContext(c)
		if got == nil || got.ID != "u1" {
			t.Fatalf("expected user in context, got %+v", got)
		}
		if token, _ := c.Get(ContextToken).(string); token != "tok123" {
			t.Fatalf("expected token in context, got %q", token)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

// The deactivated signal must pass through untouched so the error handler can
// render the distinguished 403.
func TestAuth_DeactivatedPropagates(t *testing.T) {
	c, _ := sessionRequest(true)

	handler := Auth(&stubAuthService{err: domain.ErrAccountDeactivated}, testCookie)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	if err := handler(c); err != domain.ErrAccountDeactivated {
		t.Fatalf("expected ErrAccountDeactivated, got %v", err)
	}
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	c, rec := sessionRequest(false)

	handler := OptionalAuth(&stubAuthService{}, testCookie)(func(c echo.Context) error {
		if UserFromContext(c) != nil {
			t.Fatal("expected no user for anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOptionalAuth_DeadSessionIsIgnored(t *testing.T) {
	c, rec := sessionRequest(true)

	handler := OptionalAuth(&stubAuthService{err: domain.ErrSessionNotFound}, testCookie)(func(c echo.Context) error {
		if UserFromContext(c) != nil {
			t.Fatal("expected no user for a dead session")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
