package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  roleResponse
// @Router       /api/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(roles, toRoleResponse))
}

// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Role ID"
// @Success      200  {object}  roleResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	r, err := h.service.GetRole(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleResponse(*r))
}

func toRoleResponse(r domain.RoleRecord) roleResponse {
	return roleResponse{RoleID: r.ID, Name: r.Name}
}
