package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// @Summary      List users with their orders
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  userResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(users, toUserResponse))
}

// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	u, err := h.service.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(*u))
}

// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userCreateRequest  true  "User"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.service.CreateUser(c.Request().Context(), ports.UserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  req.Password,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		RoleID:    req.RoleID,
	})
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/api/users/%d", u.ID), toUserResponse(*u))
}

// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                true  "User ID"
// @Param        body  body  userUpdateRequest  true  "User"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req userUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := checkBodyID(id, req.UserID); err != nil {
		return err
	}
	if err := h.service.UpdateUser(c.Request().Context(), id, ports.UserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  req.Password,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		RoleID:    req.RoleID,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangePassword handles PATCH /api/users/:id/password. The body is a bare
// JSON string.
//
// @Summary      Change a user's password
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int     true  "User ID"
// @Param        body  body  string  true  "New password"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id}/password [patch]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var password string
	if err := (&echo.DefaultBinder{}).BindBody(c, &password); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "body must be a JSON string")
	}
	if err := h.service.ChangePassword(c.Request().Context(), id, password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary      Delete a user with their orders
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
