package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

// RequirePermission admits the roles that hold perm in the role catalog.
func RequirePermission(guard Authorizer, perm domain.Permission) echo.MiddlewareFunc {
	return RequireRoles(guard, string(perm), domain.RolesGranted(perm))
}
