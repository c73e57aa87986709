package ports

import (
	"context"
	"time"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

// UserSummary is the public part of a user returned after login.
type UserSummary struct {
	ID       int64
	Username string
	Role     domain.Role
}

// LoginResult carries the issued token and the caller's public summary.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserSummary
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
