package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/core/ports"
)

// MenuHandler exposes the restaurant menu. Listing is public so the menu
// page works from a QR scan before any login.
type MenuHandler struct {
	menu    ports.MenuService
	tokens  ports.TableTokenService
	uploads ImageSaver
}

func NewMenuHandler(menu ports.MenuService, tokens ports.TableTokenService, uploads ImageSaver) *MenuHandler {
	return &MenuHandler{menu: menu, tokens: tokens, uploads: uploads}
}

type createMenuItemRequest struct {
	Name        string  `json:"name"     validate:"required"`
	Category    string  `json:"category" validate:"required,oneof=breakfast mains desserts drinks"`
	Price       float64 `json:"price"    validate:"required,gt=0"`
	Description string  `json:"description"`
}

type updateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category" validate:"omitempty,oneof=breakfast mains desserts drinks"`
	Price       *float64 `json:"price"    validate:"omitempty,gt=0"`
	Description *string  `json:"description"`
	Available   *bool    `json:"available"`
}

type mintTableTokenRequest struct {
	RoomNumber string `json:"room_number" validate:"required"`
}

type tableTokenResponse struct {
	Token string `json:"token"`
}

// List returns menu items, optionally by category.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Param        category   query     string  false  "Filter by category"
// @Param        available  query     bool    false  "Only available items"
// @Success      200        {array}   domain.MenuItem
// @Router       /api/menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.menu.List(c.Request().Context(), c.QueryParam("category"), c.QueryParam("available") == "true")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns a single menu item.
//
// @Summary      Get a menu item
// @Tags         menu
// @Produce      json
// @Param        id   path      string  true  "Menu item ID"
// @Success      200  {object}  domain.MenuItem
// @Failure      404  {object}  errorResponse
// @Router       /api/menu/{id} [get]
func (h *MenuHandler) Get(c echo.Context) error {
	item, err := h.menu.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create adds a menu item.
//
// @Summary      Create a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        body  body      createMenuItemRequest  true  "Item details"
// @Success      201   {object}  domain.MenuItem
// @Failure      400   {object}  errorResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req createMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.menu.Create(c.Request().Context(), ports.MenuItemInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update applies a partial edit to a menu item.
//
// @Summary      Update a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Menu item ID"
// @Param        body  body      updateMenuItemRequest  true  "Fields to change"
// @Success      200   {object}  domain.MenuItem
// @Failure      404   {object}  errorResponse
// @Router       /api/menu/{id} [put]
func (h *MenuHandler) Update(c echo.Context) error {
	var req updateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.menu.Update(c.Request().Context(), c.Param("id"), ports.MenuItemUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// UploadImage attaches a picture to a menu item.
//
// @Summary      Upload a menu item image
// @Tags         menu
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "Menu item ID"
// @Param        image  formData  file    true  "Image file"
// @Success      200    {object}  domain.MenuItem
// @Failure      400    {object}  errorResponse
// @Router       /api/menu/{id}/image [put]
func (h *MenuHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	path, err := h.uploads.Save(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.menu.Update(c.Request().Context(), c.Param("id"), ports.MenuItemUpdate{Image: &path})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes a menu item.
//
// @Summary      Delete a menu item
// @Tags         menu
// @Param        id   path  string  true  "Menu item ID"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /api/menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.menu.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MintTableToken issues a signed token bound to a room, for printing into
// the QR code placed at the table. Manager only.
//
// @Summary      Mint a table ordering token
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        body  body      mintTableTokenRequest  true  "Room to bind"
// @Success      200   {object}  tableTokenResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/menu/table-tokens [post]
func (h *MenuHandler) MintTableToken(c echo.Context) error {
	var req mintTableTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.tokens.Mint(req.RoomNumber)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tableTokenResponse{Token: token})
}
