package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
	"github.com/fooddelivery/restaurant-api/internal/core/security"
)

const minPasswordLength = 6

type UserService struct {
	repo   ports.UserRepository
	roles  ports.RoleRepository
	hasher security.Hasher
	events eventSink
	log    zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	roles ports.RoleRepository,
	hasher security.Hasher,
	notifier ports.Notifier,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		repo:   repo,
		roles:  roles,
		hasher: hasher,
		events: newEventSink(notifier),
		log:    log,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	if len(in.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidRequest, minPasswordLength)
	}
	if err := s.checkRole(ctx, in.RoleID); err != nil {
		return nil, err
	}

	taken, err := s.repo.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	u := newUser(0, in)
	u.PasswordHash = hash
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.events.emit(ctx, domain.EventUserAdded, u.ID, u.Username)

	s.log.Info().Int64("user_id", u.ID).Str("username", u.Username).Msg("user created")
	return u, nil
}

// UpdateUser rewrites the profile. The password is re-hashed only when given;
// username uniqueness is checked only when the username changes.
func (s *UserService) UpdateUser(ctx context.Context, id int64, in ports.UserInput) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if in.Password != "" && len(in.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidRequest, minPasswordLength)
	}
	if err := s.checkRole(ctx, in.RoleID); err != nil {
		return err
	}

	if in.Username != current.Username {
		taken, err := s.repo.UsernameExists(ctx, in.Username)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrUsernameTaken
		}
	}

	u := newUser(id, in)
	if in.Password != "" {
		if u.PasswordHash, err = s.hasher.Hash(in.Password); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}
	s.events.emit(ctx, domain.EventUserUpdated, u.ID, u.Username)

	s.log.Info().Int64("user_id", id).Msg("user updated")
	return nil
}

func (s *UserService) ChangePassword(ctx context.Context, id int64, password string) error {
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: password cannot be empty", domain.ErrInvalidRequest)
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	if err := s.repo.UpdatePasswordHash(ctx, id, hash); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", id).Msg("password changed")
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) checkRole(ctx context.Context, roleID int64) error {
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return fmt.Errorf("%w: role with ID %d does not exist", domain.ErrInvalidRequest, roleID)
		}
		return err
	}
	return nil
}

func newUser(id int64, in ports.UserInput) *domain.User {
	return &domain.User{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Username:  in.Username,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		RoleID:    in.RoleID,
	}
}
