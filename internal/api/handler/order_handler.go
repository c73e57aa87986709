package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fooddelivery/restaurant-api/internal/api/metrics"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// @Summary      List orders with their lines
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  orderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(orders, toOrderResponse))
}

// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  orderResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	o, err := h.service.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(*o))
}

// Stats handles GET /api/orders/stats.
//
// @Summary      Order counts by status
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  orderStatsResponse
// @Router       /api/orders/stats [get]
func (h *OrderHandler) Stats(c echo.Context) error {
	s, err := h.service.OrderStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderStatsResponse{
		TotalOrders:     s.Total,
		CompletedOrders: s.Completed,
		PendingOrders:   s.Pending,
	})
}

// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      orderRequest  true  "Order"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	o, err := h.service.CreateOrder(c.Request().Context(), toOrderInput(req))
	if err != nil {
		return err
	}
	metrics.OrdersCreatedTotal.WithLabelValues(o.Status).Inc()
	return created(c, fmt.Sprintf("/api/orders/%d", o.ID), toOrderResponse(*o))
}

// Update replaces the order and all of its lines.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int           true  "Order ID"
// @Param        body  body  orderRequest  true  "Order"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req orderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := checkBodyID(id, req.OrderID); err != nil {
		return err
	}
	if err := h.service.UpdateOrder(c.Request().Context(), id, toOrderInput(req)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary      Delete an order
// @Tags         orders
// @Security     BearerAuth
// @Param        id  path  int  true  "Order ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteOrder(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
