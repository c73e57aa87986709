package security

import (
	"context"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

type principalKey struct{}

// WithPrincipal attaches the verified principal to ctx.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal set by WithPrincipal, if any.
func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}
