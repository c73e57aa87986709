package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/security"
)

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer", domain.ErrInvalidRequest)
	}
	return id, nil
}

// bindAndValidate decodes the JSON body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRequest, err.Error())
	}
	return nil
}

// checkBodyID rejects an update whose body names a different entity than the path.
func checkBodyID(pathID, bodyID int64) error {
	if pathID != bodyID {
		return domain.ErrIDMismatch
	}
	return nil
}

// principal returns the identity the auth middleware attached to the request.
func principal(c echo.Context) (domain.Principal, error) {
	p, ok := security.PrincipalFrom(c.Request().Context())
	if !ok {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return p, nil
}

func created(c echo.Context, location string, body any) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, body)
}
