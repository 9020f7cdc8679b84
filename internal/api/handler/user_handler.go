package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/core/ports"
)

// ImageSaver is the interface the handlers use to persist uploaded images.
type ImageSaver interface {
	Save(file *multipart.FileHeader) (string, error)
}

// UserHandler covers the profile endpoint and admin account management.
type UserHandler struct {
	users   ports.UserService
	uploads ImageSaver
}

func NewUserHandler(users ports.UserService, uploads ImageSaver) *UserHandler {
	return &UserHandler{users: users, uploads: uploads}
}

type createStaffRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	Role      string `json:"role"       validate:"required,oneof=manager receptionist cashier"`
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// UpdateMe replaces the caller's profile wholesale from a multipart form and
// returns the full updated projection. Role is never accepted here.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        first_name     formData  string  true   "First name"
// @Param        last_name      formData  string  false  "Last name"
// @Param        email          formData  string  true   "Email"
// @Param        phone          formData  string  false  "Phone"
// @Param        room_number    formData  string  false  "Room number"
// @Param        profile_image  formData  file    false  "Profile image"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	update := ports.ProfileUpdate{
		FirstName:  c.FormValue("first_name"),
		LastName:   c.FormValue("last_name"),
		Email:      c.FormValue("email"),
		Phone:      c.FormValue("phone"),
		RoomNumber: c.FormValue("room_number"),
	}

	if file, err := c.FormFile("profile_image"); err == nil {
		path, err := h.uploads.Save(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		update.ProfileImage = path
	}

	updated, err := h.users.UpdateProfile(c.Request().Context(), user.ID, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// List returns users, optionally filtered by role. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        role  query     string  false  "Filter by role"
// @Success      200   {array}   domain.User
// @Failure      403   {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context(), c.QueryParam("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CreateStaff creates a manager, receptionist or cashier account. Admin only.
//
// @Summary      Create a staff account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createStaffRequest  true  "Staff account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) CreateStaff(c echo.Context) error {
	var req createStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.CreateStaff(c.Request().Context(), ports.CreateStaffInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// SetActive activates or deactivates an account. Admin only. Deactivation is
// the source of the distinguished 403 clients see on their next session check.
//
// @Summary      Activate or deactivate an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "User ID"
// @Param        body  body      setActiveRequest  true  "Activation flag"
// @Success      204   "No Content"
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id}/active [put]
func (h *UserHandler) SetActive(c echo.Context) error {
	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.SetActive(c.Request().Context(), c.Param("id"), *req.Active); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
