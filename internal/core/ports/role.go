package ports

import (
	"context"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

// RoleRepository exposes the immutable role reference data.
type RoleRepository interface {
	List(ctx context.Context) ([]domain.RoleRecord, error)
	FindByID(ctx context.Context, id int64) (*domain.RoleRecord, error)
}

type RoleService interface {
	ListRoles(ctx context.Context) ([]domain.RoleRecord, error)
	GetRole(ctx context.Context, id int64) (*domain.RoleRecord, error)
}
