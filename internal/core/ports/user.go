package ports

import (
	"context"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

// UserRepository persists users. List and FindByID populate Orders without lines.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, u *domain.User) error
	// Update writes profile fields and the role; the password hash is written
	// only when u.PasswordHash is non-empty.
	Update(ctx context.Context, u *domain.User) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	// Delete removes the user, the user's orders and their lines.
	Delete(ctx context.Context, id int64) error
}

// UserInput carries the writable user fields. Password is plaintext and
// optional on update.
type UserInput struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
	Address   string
	Phone     string
	Email     string
	RoleID    int64
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, in UserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, in UserInput) error
	ChangePassword(ctx context.Context, id int64, password string) error
	DeleteUser(ctx context.Context, id int64) error
}
