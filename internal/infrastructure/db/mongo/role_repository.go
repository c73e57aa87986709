package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

type RoleRepository struct {
	col *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{col: db.Collection(collectionRoles)}
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.RoleRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, sortByID())
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	roles := []domain.RoleRecord{}
	if err := cur.All(ctx, &roles); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id int64) (*domain.RoleRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec domain.RoleRecord
	if err := r.col.FindOne(ctx, byID(id)).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &rec, nil
}
