package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fooddelivery/restaurant-api/internal/api/metrics"
	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_request").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User: userSummaryResponse{
			UserID:   res.User.ID,
			Username: res.User.Username,
			Role:     res.User.Role.String(),
		},
	})
}

// Me returns the identity carried by the presented token.
//
// @Summary      Current principal
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{Subject: p.Subject, Role: p.Role.String()})
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, domain.ErrUnauthorized):
		return "invalid_credentials"
	default:
		return "error"
	}
}
