package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/api/metrics"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// BillingHandler exposes the cashier's billing endpoints.
type BillingHandler struct {
	billing ports.BillingService
}

func NewBillingHandler(billing ports.BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

type issueBillRequest struct {
	BookingReference string `json:"booking_reference" validate:"required"`
}

// Issue builds a bill for a booking from the room charge and every served,
// unbilled order for the room.
//
// @Summary      Issue a bill
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        body  body      issueBillRequest  true  "Booking to bill"
// @Success      201   {object}  domain.Bill
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/bills [post]
func (h *BillingHandler) Issue(c echo.Context) error {
	var req issueBillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	bill, err := h.billing.Issue(c.Request().Context(), ports.IssueBillInput{
		BookingReference: req.BookingReference,
		IssuedBy:         user.ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bill)
}

// Settle marks a bill paid.
//
// @Summary      Settle a bill
// @Tags         billing
// @Produce      json
// @Param        number  path      string  true  "Bill number"
// @Success      200     {object}  domain.Bill
// @Failure      404     {object}  errorResponse
// @Failure      409     {object}  errorResponse
// @Router       /api/bills/{number}/settle [put]
func (h *BillingHandler) Settle(c echo.Context) error {
	bill, err := h.billing.Settle(c.Request().Context(), c.Param("number"))
	if err != nil {
		return err
	}
	metrics.BillsSettledTotal.Inc()
	return c.JSON(http.StatusOK, bill)
}

// Get returns a bill by number.
//
// @Summary      Get a bill
// @Tags         billing
// @Produce      json
// @Param        number  path      string  true  "Bill number"
// @Success      200     {object}  domain.Bill
// @Failure      404     {object}  errorResponse
// @Router       /api/bills/{number} [get]
func (h *BillingHandler) Get(c echo.Context) error {
	bill, err := h.billing.Get(c.Request().Context(), c.Param("number"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bill)
}

// List returns bills, optionally by status.
//
// @Summary      List bills
// @Tags         billing
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {array}   domain.Bill
// @Router       /api/bills [get]
func (h *BillingHandler) List(c echo.Context) error {
	bills, err := h.billing.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bills)
}
