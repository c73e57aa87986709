package ports

import (
	"context"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

// CredentialStore is the read-only lookup the login flow depends on.
// It returns domain.ErrUserNotFound when no user has the given identity.
type CredentialStore interface {
	FindCredential(ctx context.Context, identity string) (*domain.Credential, error)
}
