package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

// RestaurantHandler handles HTTP requests for restaurants.
type RestaurantHandler struct {
	service ports.RestaurantService
}

func NewRestaurantHandler(service ports.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

// List handles GET /api/restaurants.
//
// @Summary      List restaurants with their dishes
// @Tags         restaurants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   restaurantResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/restaurants [get]
func (h *RestaurantHandler) List(c echo.Context) error {
	restaurants, err := h.service.ListRestaurants(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(restaurants, toRestaurantResponse))
}

// Get handles GET /api/restaurants/:id.
//
// @Summary      Get a restaurant
// @Tags         restaurants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Restaurant ID"
// @Success      200  {object}  restaurantResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/restaurants/{id} [get]
func (h *RestaurantHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	r, err := h.service.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRestaurantResponse(*r))
}

// Create handles POST /api/restaurants.
//
// @Summary      Create a restaurant
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      restaurantCreateRequest  true  "Restaurant"
// @Success      201   {object}  restaurantResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/restaurants [post]
func (h *RestaurantHandler) Create(c echo.Context) error {
	var req restaurantCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.service.CreateRestaurant(c.Request().Context(),
		toRestaurantInput(req.Name, req.Address, req.Phone, req.Rating, req.Category))
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/api/restaurants/%d", r.ID), toRestaurantResponse(*r))
}

// Update handles PUT /api/restaurants/:id.
//
// @Summary      Update a restaurant
// @Tags         restaurants
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                      true  "Restaurant ID"
// @Param        body  body  restaurantUpdateRequest  true  "Restaurant"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/restaurants/{id} [put]
func (h *RestaurantHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req restaurantUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := checkBodyID(id, req.RestaurantID); err != nil {
		return err
	}

	if err := h.service.UpdateRestaurant(c.Request().Context(), id,
		toRestaurantInput(req.Name, req.Address, req.Phone, req.Rating, req.Category)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/restaurants/:id.
//
// @Summary      Delete a restaurant with its dishes and orders
// @Tags         restaurants
// @Security     BearerAuth
// @Param        id  path  int  true  "Restaurant ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteRestaurant(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
