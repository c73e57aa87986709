package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

type RestaurantRepository struct {
	db     *mongo.Database
	col    *mongo.Collection
	dishes *mongo.Collection
}

func NewRestaurantRepository(db *mongo.Database) *RestaurantRepository {
	return &RestaurantRepository{
		db:     db,
		col:    db.Collection(collectionRestaurants),
		dishes: db.Collection(collectionDishes),
	}
}

// List returns every restaurant with its dishes.
func (r *RestaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, sortByID())
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	restaurants := []domain.Restaurant{}
	if err := cur.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("decode restaurants: %w", err)
	}

	dishes, err := findDishes(ctx, r.dishes, bson.M{})
	if err != nil {
		return nil, err
	}
	byRestaurant := make(map[int64][]domain.Dish, len(restaurants))
	for _, d := range dishes {
		byRestaurant[d.RestaurantID] = append(byRestaurant[d.RestaurantID], d)
	}
	for i := range restaurants {
		restaurants[i].Dishes = byRestaurant[restaurants[i].ID]
		if restaurants[i].Dishes == nil {
			restaurants[i].Dishes = []domain.Dish{}
		}
	}
	return restaurants, nil
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rest domain.Restaurant
	if err := r.col.FindOne(ctx, byID(id)).Decode(&rest); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("find restaurant: %w", err)
	}

	dishes, err := findDishes(ctx, r.dishes, bson.M{"restaurant_id": id})
	if err != nil {
		return nil, err
	}
	rest.Dishes = dishes
	return &rest, nil
}

func (r *RestaurantRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := exists(ctx, r.col, byID(id))
	if err != nil {
		return false, fmt.Errorf("restaurant exists: %w", err)
	}
	return ok, nil
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *domain.Restaurant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionRestaurants)
	if err != nil {
		return err
	}
	rest.ID = id
	if _, err := r.col.InsertOne(ctx, rest); err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	if rest.Dishes == nil {
		rest.Dishes = []domain.Dish{}
	}
	return nil
}

func (r *RestaurantRepository) Update(ctx context.Context, rest *domain.Restaurant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, byID(rest.ID), bson.M{"$set": bson.M{
		"name":     rest.Name,
		"address":  rest.Address,
		"phone":    rest.Phone,
		"rating":   rest.Rating,
		"category": rest.Category,
	}})
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

// Delete removes the restaurant's orders and their lines, the lines that
// reference its dishes, the dishes, and finally the restaurant.
func (r *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := exists(ctx, r.col, byID(id))
	if err != nil {
		return fmt.Errorf("restaurant exists: %w", err)
	}
	if !ok {
		return domain.ErrRestaurantNotFound
	}

	orders := r.db.Collection(collectionOrders)
	orderIDs, err := idsOf(ctx, orders, bson.M{"restaurant_id": id})
	if err != nil {
		return fmt.Errorf("collect restaurant orders: %w", err)
	}
	dishIDs, err := idsOf(ctx, r.dishes, bson.M{"restaurant_id": id})
	if err != nil {
		return fmt.Errorf("collect restaurant dishes: %w", err)
	}

	if _, err := r.db.Collection(collectionOrderDishes).DeleteMany(ctx, bson.M{"$or": bson.A{
		bson.M{"order_id": bson.M{"$in": orderIDs}},
		bson.M{"dish_id": bson.M{"$in": dishIDs}},
	}}); err != nil {
		return fmt.Errorf("delete restaurant order lines: %w", err)
	}
	if _, err := orders.DeleteMany(ctx, bson.M{"restaurant_id": id}); err != nil {
		return fmt.Errorf("delete restaurant orders: %w", err)
	}
	if _, err := r.dishes.DeleteMany(ctx, bson.M{"restaurant_id": id}); err != nil {
		return fmt.Errorf("delete restaurant dishes: %w", err)
	}

	res, err := r.col.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

func findDishes(ctx context.Context, col *mongo.Collection, filter bson.M) ([]domain.Dish, error) {
	cur, err := col.Find(ctx, filter, sortByID())
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	dishes := []domain.Dish{}
	if err := cur.All(ctx, &dishes); err != nil {
		return nil, fmt.Errorf("decode dishes: %w", err)
	}
	return dishes, nil
}
