package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/api/metrics"
	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// BookingHandler exposes booking creation, listing and the check-in /
// check-out transitions worked by reception.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	GuestID    string `json:"guest_id"`
	GuestName  string `json:"guest_name"`
	RoomNumber string `json:"room_number" validate:"required"`
	CheckIn    string `json:"check_in"    validate:"required"`
	CheckOut   string `json:"check_out"   validate:"required"`
	Guests     int    `json:"guests"      validate:"required,gte=1"`
}

type transitionBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=checked_in checked_out cancelled"`
	Notes  string `json:"notes"`
}

// Create books a room. Customers book for themselves, reception may book
// on behalf of a walk-in guest by supplying guest_name.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "check_in must be YYYY-MM-DD")
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "check_out must be YYYY-MM-DD")
	}
	if !checkOut.After(checkIn) {
		return echo.NewHTTPError(http.StatusBadRequest, "check_out must be after check_in")
	}

	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	input := ports.CreateBookingInput{
		RoomNumber: req.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
	}
	channel := "staff"
	if isStaff(user) {
		input.GuestID = req.GuestID
		input.GuestName = req.GuestName
	} else {
		// Customers always book for themselves.
		input.GuestID = user.ID
		input.GuestName = user.FirstName + " " + user.LastName
		channel = "customer"
	}

	booking, err := h.bookings.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	metrics.BookingsCreatedTotal.WithLabelValues(channel).Inc()
	return c.JSON(http.StatusCreated, booking)
}

// Get returns a booking by reference. Customers only see their own.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        reference  path      string  true  "Booking reference"
// @Success      200        {object}  domain.Booking
// @Failure      404        {object}  errorResponse
// @Router       /api/bookings/{reference} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	booking, err := h.bookings.Get(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return err
	}

	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleCustomer && booking.GuestID != user.ID {
		return domain.ErrBookingNotFound
	}
	return c.JSON(http.StatusOK, booking)
}

// List returns bookings. Customers are pinned to their own; staff may
// filter by room, guest or status.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Param        room_number  query     string  false  "Filter by room"
// @Param        guest_id     query     string  false  "Filter by guest"
// @Param        status       query     string  false  "Filter by status"
// @Success      200          {array}   domain.Booking
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	filter := ports.BookingFilter{
		RoomNumber: c.QueryParam("room_number"),
		GuestID:    c.QueryParam("guest_id"),
		Status:     c.QueryParam("status"),
	}
	if user.Role == domain.RoleCustomer {
		filter.GuestID = user.ID
	}

	bookings, err := h.bookings.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Transition moves a booking along its lifecycle. Reception only.
//
// @Summary      Transition a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        reference  path      string                    true  "Booking reference"
// @Param        body       body      transitionBookingRequest  true  "Target status"
// @Success      200        {object}  domain.Booking
// @Failure      404        {object}  errorResponse
// @Failure      422        {object}  errorResponse
// @Router       /api/bookings/{reference}/status [put]
func (h *BookingHandler) Transition(c echo.Context) error {
	var req transitionBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.Transition(c.Request().Context(), ports.TransitionBookingInput{
		Reference: c.Param("reference"),
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
