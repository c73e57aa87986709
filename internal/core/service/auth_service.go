package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
	"github.com/fooddelivery/restaurant-api/internal/core/security"
)

// TokenIssuer mints a signed token for an authenticated subject.
type TokenIssuer interface {
	Issue(subject string, role domain.Role) (string, time.Time, error)
}

// AuthService implements login against the credential store.
type AuthService struct {
	store  ports.CredentialStore
	hasher security.Hasher
	issuer TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(store ports.CredentialStore, hasher security.Hasher, issuer TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, hasher: hasher, issuer: issuer, log: log}
}

// Login returns domain.ErrUnauthorized both for an unknown username and for a
// wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidRequest)
	}

	cred, err := s.store.FindCredential(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Str("username", username).Msg("login rejected")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, cred.PasswordHash) {
		s.log.Warn().Str("username", username).Msg("login rejected")
		return nil, domain.ErrUnauthorized
	}

	token, expiresAt, err := s.issuer.Issue(strconv.FormatInt(cred.UserID, 10), cred.Role)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Int64("user_id", cred.UserID).Str("role", cred.Role.String()).Msg("login succeeded")
	return &ports.LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User: ports.UserSummary{
			ID:       cred.UserID,
			Username: cred.Username,
			Role:     cred.Role,
		},
	}, nil
}
