package security

import (
	"strings"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

// TokenVerifier turns a presented token into the principal it asserts.
type TokenVerifier interface {
	Verify(token string) (domain.Principal, error)
}

// Guard gates a protected operation on a verified token and a role set.
type Guard struct {
	verifier TokenVerifier
}

func NewGuard(verifier TokenVerifier) *Guard {
	return &Guard{verifier: verifier}
}

// Authorize authenticates before it authorizes: a missing or invalid token is
// domain.ErrUnauthorized whatever the required set, and only a valid token
// whose role is outside required yields domain.ErrForbidden.
func (g *Guard) Authorize(token string, required domain.RoleSet) (domain.Principal, error) {
	if strings.TrimSpace(token) == "" {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	p, err := g.verifier.Verify(token)
	if err != nil {
		return domain.Principal{}, err
	}

	if !required.Allows(p.Role) {
		return domain.Principal{}, domain.ErrForbidden
	}
	return p, nil
}
