package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/api/metrics"
	"github.com/lakeview/hotel-system/internal/core/access"
	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// CookieConfig captures how the session cookie is issued.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// AuthHandler owns the session endpoints: register, login, logout, session
// check, and the bootstrap decision payload.
type AuthHandler struct {
	auth   ports.AuthService
	cookie CookieConfig
}

func NewAuthHandler(auth ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// Path is the route the client is currently on; it decides whether a
	// post-login redirect is issued (entry routes only).
	Path string `json:"path"`
}

type authResponse struct {
	User       *domain.User `json:"user"`
	RedirectTo string       `json:"redirect_to,omitempty"`
}

type bootstrapResponse struct {
	Authenticated bool         `json:"authenticated"`
	Deactivated   bool         `json:"deactivated,omitempty"`
	User          *domain.User `json:"user,omitempty"`
	RedirectTo    string       `json:"redirect_to,omitempty"`
	ShowPublicNav bool         `json:"show_public_nav"`
}

// Register creates a customer account.
//
// @Summary      Register a customer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and issues the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountDeactivated):
			metrics.LoginsTotal.WithLabelValues("deactivated").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(token, h.cookie.TTL))

	resp := authResponse{User: user}
	if target, ok := access.PostAuthRedirect(user.Role, req.Path); ok {
		resp.RedirectTo = target
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout invalidates the session. Cleanup is unconditional: the cookie is
// expired and 200 returned even when the server-side delete fails.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookie.Name); err == nil && cookie.Value != "" {
		// Best effort; the error is already logged by the service.
		_ = h.auth.Logout(c.Request().Context(), cookie.Value)
	}

	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.JSON(http.StatusOK, map[string]string{"redirect_to": domain.PublicRoot})
}

// Me resolves the session cookie to the current user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Bootstrap is the session check extended with the redirect and navbar
// decisions, resolved in one round trip. It always answers 200: an anonymous
// or deactivated visitor is a state, not an error.
//
// @Summary      Resolve session, redirect and navbar decisions
// @Tags         auth
// @Produce      json
// @Param        path  query     string  false  "Current client route"
// @Success      200   {object}  bootstrapResponse
// @Router       /api/auth/bootstrap [get]
func (h *AuthHandler) Bootstrap(c echo.Context) error {
	path := c.QueryParam("path")
	resp := bootstrapResponse{}

	var token string
	if cookie, err := c.Cookie(h.cookie.Name); err == nil {
		token = cookie.Value
	}

	user, err := h.auth.SessionCheck(c.Request().Context(), token)
	switch {
	case err == nil:
		metrics.SessionChecksTotal.WithLabelValues("authenticated").Inc()
		resp.Authenticated = true
		resp.User = user
		if target, ok := access.PostAuthRedirect(user.Role, path); ok {
			resp.RedirectTo = target
		}
	case errors.Is(err, domain.ErrAccountDeactivated):
		// Distinguished signal: the client shows a blocking notice, not a
		// generic login prompt.
		metrics.SessionChecksTotal.WithLabelValues("deactivated").Inc()
		resp.Deactivated = true
		c.SetCookie(h.sessionCookie("", -time.Hour))
	default:
		// Fail closed: any other failure is "not authenticated".
		metrics.SessionChecksTotal.WithLabelValues("unauthenticated").Inc()
	}

	resp.ShowPublicNav = access.ShowPublicNav(resp.Authenticated, path)
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
