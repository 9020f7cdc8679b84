package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/api/metrics"
	"github.com/lakeview/hotel-system/internal/api/middleware"
	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// EventEnqueuer accepts order events for asynchronous processing.
type EventEnqueuer interface {
	Enqueue(event ports.OrderEventInput)
	EnqueueBatch(events []ports.OrderEventInput)
}

// OrderHandler exposes food ordering and the asynchronous status-event
// ingestion endpoints used by kitchen and waiter devices.
type OrderHandler struct {
	orders     ports.OrderService
	dispatcher EventEnqueuer
}

func NewOrderHandler(orders ports.OrderService, dispatcher EventEnqueuer) *OrderHandler {
	return &OrderHandler{orders: orders, dispatcher: dispatcher}
}

type orderLineRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity"     validate:"required,gte=1"`
}

type placeOrderRequest struct {
	RoomNumber string             `json:"room_number"`
	TableToken string             `json:"table_token"`
	Lines      []orderLineRequest `json:"lines" validate:"required,min=1,dive"`
	Notes      string             `json:"notes"`
}

type orderEventRequest struct {
	OrderNumber string `json:"order_number" validate:"required"`
	Status      string `json:"status"       validate:"required,oneof=preparing served billed cancelled"`
	Timestamp   int64  `json:"timestamp"    validate:"required"`
	Source      string `json:"source"       validate:"required"`
}

type orderEventBatchRequest struct {
	Events []orderEventRequest `json:"events" validate:"required,min=1,dive"`
}

type acceptedResponse struct {
	Accepted int `json:"accepted"`
}

// Place creates an order. Logged-in customers order against their account;
// anonymous devices at a table supply the signed table token instead.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      placeOrderRequest  true  "Order details"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.PlaceOrderInput{
		RoomNumber: req.RoomNumber,
		TableToken: req.TableToken,
		Notes:      req.Notes,
	}
	for _, line := range req.Lines {
		input.Lines = append(input.Lines, ports.OrderLineInput{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}

	channel := "table"
	if user := middleware.UserFromContext(c); user != nil {
		input.CustomerID = user.ID
		channel = "customer"
	}

	order, err := h.orders.Place(c.Request().Context(), input)
	if err != nil {
		return err
	}
	metrics.OrdersPlacedTotal.WithLabelValues(channel).Inc()
	return c.JSON(http.StatusCreated, order)
}

// Get returns an order by number. Customers only see their own.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        number  path      string  true  "Order number"
// @Success      200     {object}  domain.Order
// @Failure      404     {object}  errorResponse
// @Router       /api/orders/{number} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.Get(c.Request().Context(), c.Param("number"))
	if err != nil {
		return err
	}

	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleCustomer && order.CustomerID != user.ID {
		return domain.ErrOrderNotFound
	}
	return c.JSON(http.StatusOK, order)
}

// List returns orders. Customers are pinned to their own; staff may
// filter by room, customer or status.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        room_number  query     string  false  "Filter by room"
// @Param        customer_id  query     string  false  "Filter by customer"
// @Param        status       query     string  false  "Filter by status"
// @Success      200          {array}   domain.Order
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	filter := ports.OrderFilter{
		RoomNumber: c.QueryParam("room_number"),
		CustomerID: c.QueryParam("customer_id"),
		Status:     c.QueryParam("status"),
	}
	if user.Role == domain.RoleCustomer {
		filter.CustomerID = user.ID
	}

	orders, err := h.orders.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// SubmitEvent accepts a single order status event and queues it for
// processing. The write happens asynchronously, so the endpoint answers 202.
//
// @Summary      Submit an order status event
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      orderEventRequest  true  "Status event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/order-events [post]
func (h *OrderHandler) SubmitEvent(c echo.Context) error {
	var req orderEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.dispatcher.Enqueue(eventInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Accepted: 1})
}

// SubmitEventBatch accepts a batch of order status events. Per-order
// ordering within the batch is preserved by the dispatcher.
//
// @Summary      Submit a batch of order status events
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      orderEventBatchRequest  true  "Status events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/order-events/batch [post]
func (h *OrderHandler) SubmitEventBatch(c echo.Context) error {
	var req orderEventBatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	events := make([]ports.OrderEventInput, 0, len(req.Events))
	for _, e := range req.Events {
		events = append(events, eventInput(e))
	}
	h.dispatcher.EnqueueBatch(events)
	return c.JSON(http.StatusAccepted, acceptedResponse{Accepted: len(events)})
}

func eventInput(req orderEventRequest) ports.OrderEventInput {
	return ports.OrderEventInput{
		OrderNumber: req.OrderNumber,
		Status:      req.Status,
		Timestamp:   time.Unix(req.Timestamp, 0).UTC(),
		Source:      req.Source,
	}
}
