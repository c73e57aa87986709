package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

type DishRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewDishRepository(db *mongo.Database) *DishRepository {
	return &DishRepository{db: db, col: db.Collection(collectionDishes)}
}

func (r *DishRepository) List(ctx context.Context) ([]domain.Dish, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findDishes(ctx, r.col, bson.M{})
}

func (r *DishRepository) FindByID(ctx context.Context, id int64) (*domain.Dish, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Dish
	if err := r.col.FindOne(ctx, byID(id)).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDishNotFound
		}
		return nil, fmt.Errorf("find dish: %w", err)
	}
	return &d, nil
}

func (r *DishRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	found, err := idsOf(ctx, r.col, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("lookup dishes: %w", err)
	}
	return found, nil
}

func (r *DishRepository) Create(ctx context.Context, d *domain.Dish) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionDishes)
	if err != nil {
		return err
	}
	d.ID = id
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("insert dish: %w", err)
	}
	return nil
}

func (r *DishRepository) Update(ctx context.Context, d *domain.Dish) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, byID(d.ID), bson.M{"$set": bson.M{
		"name":          d.Name,
		"description":   d.Description,
		"price":         d.Price,
		"category":      d.Category,
		"restaurant_id": d.RestaurantID,
	}})
	if err != nil {
		return fmt.Errorf("update dish: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDishNotFound
	}
	return nil
}

// Delete removes every order line referencing the dish, then the dish.
func (r *DishRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := exists(ctx, r.col, byID(id))
	if err != nil {
		return fmt.Errorf("dish exists: %w", err)
	}
	if !ok {
		return domain.ErrDishNotFound
	}

	if _, err := r.db.Collection(collectionOrderDishes).DeleteMany(ctx, bson.M{"dish_id": id}); err != nil {
		return fmt.Errorf("delete dish order lines: %w", err)
	}
	res, err := r.col.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("delete dish: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDishNotFound
	}
	return nil
}
