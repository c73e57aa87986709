package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{fmt.Errorf("%w: token is expired", domain.ErrUnauthorized), http.StatusUnauthorized, "unauthorized"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{fmt.Errorf("%w: dishes with IDs 7 do not exist", domain.ErrInvalidRequest), http.StatusBadRequest, "invalid request: dishes with IDs 7 do not exist"},
		{domain.ErrIDMismatch, http.StatusBadRequest, domain.ErrIDMismatch.Error()},
		{domain.ErrUsernameTaken, http.StatusBadRequest, "username already exists"},
		{domain.ErrOrderNotFound, http.StatusNotFound, "order not found"},
		{domain.ErrRoleNotFound, http.StatusNotFound, "role not found"},
		{echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
	}

	for _, tc := range cases {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Error != tc.message {
			t.Errorf("%v: expected message %q, got %q", tc.err, tc.message, body.Error)
		}
	}
}

func TestHTTPErrorHandler_UnauthorizedChallenge(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrUnauthorized, c)

	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); !strings.HasPrefix(got, "Bearer") {
		t.Fatalf("expected bearer challenge, got %q", got)
	}
}

func TestHTTPErrorHandler_InternalIsGenericAndLogged(t *testing.T) {
	var logs bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/orders", nil), rec)

	NewHTTPErrorHandler(zerolog.New(&logs))(errors.New("mongo: connection refused"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal details leaked: %s", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "connection refused") {
		t.Fatalf("expected cause to be logged, got %q", logs.String())
	}
}
