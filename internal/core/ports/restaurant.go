package ports

import (
	"context"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

// RestaurantRepository persists restaurants. List and FindByID populate Dishes.
type RestaurantRepository interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	FindByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Create assigns r.ID.
	Create(ctx context.Context, r *domain.Restaurant) error
	// Update returns domain.ErrRestaurantNotFound when no row matched.
	Update(ctx context.Context, r *domain.Restaurant) error
	// Delete removes the restaurant together with its dishes, its orders and
	// every order line referencing either.
	Delete(ctx context.Context, id int64) error
}

// RestaurantCache holds the full restaurant listing with sliding expiration.
type RestaurantCache interface {
	// Get returns (nil, false, nil) on a miss. A hit extends the entry's lifetime.
	Get(ctx context.Context) ([]domain.Restaurant, bool, error)
	Set(ctx context.Context, restaurants []domain.Restaurant) error
	Invalidate(ctx context.Context) error
}

// RestaurantInput carries the writable restaurant fields.
type RestaurantInput struct {
	Name     string
	Address  string
	Phone    string
	Rating   float64
	Category string
}

type RestaurantService interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, in RestaurantInput) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id int64, in RestaurantInput) error
	DeleteRestaurant(ctx context.Context, id int64) error
}
