package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/core/ports"
)

// RoomHandler exposes the room catalogue. Listing is public, mutation is
// restricted by the router to admin and manager.
type RoomHandler struct {
	rooms   ports.RoomService
	uploads ImageSaver
}

func NewRoomHandler(rooms ports.RoomService, uploads ImageSaver) *RoomHandler {
	return &RoomHandler{rooms: rooms, uploads: uploads}
}

type createRoomRequest struct {
	Number      string  `json:"number"       validate:"required"`
	Type        string  `json:"type"         validate:"required,oneof=standard deluxe suite"`
	NightlyRate float64 `json:"nightly_rate" validate:"required,gt=0"`
	Capacity    int     `json:"capacity"     validate:"required,gte=1"`
	Description string  `json:"description"`
}

type updateRoomRequest struct {
	Type        *string  `json:"type"         validate:"omitempty,oneof=standard deluxe suite"`
	NightlyRate *float64 `json:"nightly_rate" validate:"omitempty,gt=0"`
	Capacity    *int     `json:"capacity"     validate:"omitempty,gte=1"`
	Description *string  `json:"description"`
	Available   *bool    `json:"available"`
}

// List returns rooms. Pass available=true to restrict to bookable rooms.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Param        available  query     bool  false  "Only available rooms"
// @Success      200        {array}   domain.Room
// @Router       /api/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.rooms.List(c.Request().Context(), c.QueryParam("available") == "true")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Get returns a single room by number.
//
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Param        number  path      string  true  "Room number"
// @Success      200     {object}  domain.Room
// @Failure      404     {object}  errorResponse
// @Router       /api/rooms/{number} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.rooms.Get(c.Request().Context(), c.Param("number"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Create adds a room to the catalogue.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  domain.Room
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.rooms.Create(c.Request().Context(), ports.RoomInput{
		Number:      req.Number,
		Type:        req.Type,
		NightlyRate: req.NightlyRate,
		Capacity:    req.Capacity,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

// Update applies a partial edit to a room.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        number  path      string             true  "Room number"
// @Param        body    body      updateRoomRequest  true  "Fields to change"
// @Success      200     {object}  domain.Room
// @Failure      404     {object}  errorResponse
// @Router       /api/rooms/{number} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.rooms.Update(c.Request().Context(), c.Param("number"), ports.RoomUpdate{
		Type:        req.Type,
		NightlyRate: req.NightlyRate,
		Capacity:    req.Capacity,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// UploadImage attaches a picture to a room.
//
// @Summary      Upload a room image
// @Tags         rooms
// @Accept       multipart/form-data
// @Produce      json
// @Param        number  path      string  true  "Room number"
// @Param        image   formData  file    true  "Image file"
// @Success      200     {object}  domain.Room
// @Failure      400     {object}  errorResponse
// @Router       /api/rooms/{number}/image [put]
func (h *RoomHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	path, err := h.uploads.Save(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.rooms.Update(c.Request().Context(), c.Param("number"), ports.RoomUpdate{Image: &path})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Delete removes a room from the catalogue.
//
// @Summary      Delete a room
// @Tags         rooms
// @Param        number  path  string  true  "Room number"
// @Success      204     "No Content"
// @Failure      404     {object}  errorResponse
// @Router       /api/rooms/{number} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.rooms.Delete(c.Request().Context(), c.Param("number")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
