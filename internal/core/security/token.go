package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// Claims is the claim set carried by every access token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenConfig is loaded once at startup and shared read-only.
type TokenConfig struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

// TokenIssuer mints and verifies HS256 access tokens.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokenIssuer(cfg TokenConfig) (*TokenIssuer, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token issuer: empty signing secret")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)
	return &TokenIssuer{
		secret:   secret,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// Issue signs a token asserting subject and role, valid for the configured TTL.
func (t *TokenIssuer) Issue(subject string, role domain.Role) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify checks signature, algorithm, issuer, audience and expiry, and returns
// the principal the token asserts. Every failure is domain.ErrUnauthorized.
func (t *TokenIssuer) Verify(raw string) (domain.Principal, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithAudience(t.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if !tkn.Valid || claims.Subject == "" {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return domain.Principal{Subject: claims.Subject, Role: role}, nil
}
