package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

type DishHandler struct {
	service ports.DishService
}

func NewDishHandler(service ports.DishService) *DishHandler {
	return &DishHandler{service: service}
}

// @Summary      List dishes
// @Tags         dishes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dishResponse
// @Router       /api/dishes [get]
func (h *DishHandler) List(c echo.Context) error {
	dishes, err := h.service.ListDishes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(dishes, toDishResponse))
}

// @Summary      Get a dish
// @Tags         dishes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Dish ID"
// @Success      200  {object}  dishResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/dishes/{id} [get]
func (h *DishHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	d, err := h.service.GetDish(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDishResponse(*d))
}

// @Summary      Create a dish
// @Tags         dishes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dishRequest  true  "Dish"
// @Success      201   {object}  dishResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/dishes [post]
func (h *DishHandler) Create(c echo.Context) error {
	var req dishRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	d, err := h.service.CreateDish(c.Request().Context(), toDishInput(req))
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/api/dishes/%d", d.ID), toDishResponse(*d))
}

// @Summary      Update a dish
// @Tags         dishes
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int          true  "Dish ID"
// @Param        body  body  dishRequest  true  "Dish"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/dishes/{id} [put]
func (h *DishHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dishRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := checkBodyID(id, req.DishID); err != nil {
		return err
	}
	if err := h.service.UpdateDish(c.Request().Context(), id, toDishInput(req)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary      Delete a dish
// @Tags         dishes
// @Security     BearerAuth
// @Param        id  path  int  true  "Dish ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/dishes/{id} [delete]
func (h *DishHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteDish(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toDishInput(req dishRequest) ports.DishInput {
	return ports.DishInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		RestaurantID: req.RestaurantID,
	}
}
