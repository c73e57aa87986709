package service

import (
	"context"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

type RoleService struct {
	repo ports.RoleRepository
}

func NewRoleService(repo ports.RoleRepository) *RoleService {
	return &RoleService{repo: repo}
}

func (s *RoleService) ListRoles(ctx context.Context) ([]domain.RoleRecord, error) {
	return s.repo.List(ctx)
}

func (s *RoleService) GetRole(ctx context.Context, id int64) (*domain.RoleRecord, error) {
	return s.repo.FindByID(ctx, id)
}
