package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
	"github.com/fooddelivery/restaurant-api/internal/core/security"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	expires := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "johndoe" || password != "password1" {
				t.Fatalf("unexpected credentials: %q %q", username, password)
			}
			return &ports.LoginResult{
				Token:     "signed.jwt.token",
				ExpiresAt: expires,
				User:      ports.UserSummary{ID: 2, Username: "johndoe", Role: domain.RoleUser},
			}, nil
		},
	})

	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"username":"johndoe","password":"password1"}`, "")
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Token != "signed.jwt.token" || !body.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected token payload: %+v", body)
	}
	if body.User.UserID != 2 || body.User.Username != "johndoe" || body.User.Role != "User" {
		t.Fatalf("unexpected user summary: %+v", body.User)
	}
}

func TestAuthHandler_Login_PropagatesUnauthorized(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrUnauthorized
		},
	})

	c, _ := newContext(http.MethodPost, "/api/auth/login", `{"username":"johndoe","password":"nope"}`, "")
	if err := h.Login(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	c, _ := newContext(http.MethodPost, "/api/auth/login", `{"username":`, "")
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(nil)
	c, rec := newContext(http.MethodGet, "/api/me", "", "")
	ctx := security.WithPrincipal(c.Request().Context(), domain.Principal{Subject: "1", Role: domain.RoleAdmin})
	c.SetRequest(c.Request().WithContext(ctx))

	if err := h.Me(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body meResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Subject != "1" || body.Role != "Admin" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAuthHandler_Me_WithoutPrincipal(t *testing.T) {
	h := NewAuthHandler(nil)
	c, _ := newContext(http.MethodGet, "/api/me", "", "")
	if err := h.Me(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLoginOutcome(t *testing.T) {
	cases := map[string]error{
		"invalid_request":     domain.ErrInvalidRequest,
		"invalid_credentials": domain.ErrUnauthorized,
		"error":               errors.New("mongo down"),
	}
	for want, err := range cases {
		if got := loginOutcome(err); got != want {
			t.Errorf("loginOutcome(%v) = %q, want %q", err, got, want)
		}
	}
}
