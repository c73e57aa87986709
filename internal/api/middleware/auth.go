package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fooddelivery/restaurant-api/internal/api/metrics"
	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/security"
)

// PrincipalKey is the echo.Context key holding the verified domain.Principal.
const PrincipalKey = "principal"

// Authorizer decides whether a presented token may perform an operation
// restricted to a role set.
type Authorizer interface {
	Authorize(token string, required domain.RoleSet) (domain.Principal, error)
}

// RequireRoles authenticates the bearer token and admits only principals
// whose role is in required. label names the decision in metrics.
// A missing or invalid token is domain.ErrUnauthorized; a valid token
// outside required is domain.ErrForbidden.
func RequireRoles(guard Authorizer, label string, required domain.RoleSet) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := guard.Authorize(bearerToken(c), required)
			if err != nil {
				decision := "unauthorized"
				if errors.Is(err, domain.ErrForbidden) {
					decision = "forbidden"
				}
				metrics.AccessDecisionsTotal.WithLabelValues(label, decision).Inc()
				return err
			}
			metrics.AccessDecisionsTotal.WithLabelValues(label, "allowed").Inc()

			c.Set(PrincipalKey, p)
			c.SetRequest(c.Request().WithContext(security.WithPrincipal(c.Request().Context(), p)))
			return next(c)
		}
	}
}

// Authenticated admits any principal holding a valid token.
func Authenticated(guard Authorizer) echo.MiddlewareFunc {
	return RequireRoles(guard, "any", domain.AnyRole())
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// Any other shape yields "", which the guard rejects as unauthenticated.
func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
