package ports

import (
	"context"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

type DishRepository interface {
	List(ctx context.Context) ([]domain.Dish, error)
	FindByID(ctx context.Context, id int64) (*domain.Dish, error)
	// ExistingIDs returns the subset of ids that refer to stored dishes.
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
	Create(ctx context.Context, d *domain.Dish) error
	Update(ctx context.Context, d *domain.Dish) error
	// Delete removes the dish and every order line referencing it.
	Delete(ctx context.Context, id int64) error
}

// DishInput carries the writable dish fields.
type DishInput struct {
	Name         string
	Description  string
	Price        float64
	Category     string
	RestaurantID int64
}

type DishService interface {
	ListDishes(ctx context.Context) ([]domain.Dish, error)
	GetDish(ctx context.Context, id int64) (*domain.Dish, error)
	CreateDish(ctx context.Context, in DishInput) (*domain.Dish, error)
	UpdateDish(ctx context.Context, id int64, in DishInput) error
	DeleteDish(ctx context.Context, id int64) error
}
