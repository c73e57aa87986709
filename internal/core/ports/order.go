package ports

import (
	"context"
	"time"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

// OrderRepository persists orders and their lines. List and FindByID populate Lines.
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	// Create assigns o.ID and stores o.Lines.
	Create(ctx context.Context, o *domain.Order) error
	// Update rewrites the order and replaces all of its lines.
	Update(ctx context.Context, o *domain.Order) error
	// Delete removes the order and its lines.
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (domain.OrderStats, error)
}

// OrderLineInput is one requested dish on an order.
type OrderLineInput struct {
	DishID   int64
	Quantity int
}

// OrderInput carries the writable order fields.
type OrderInput struct {
	UserID          int64
	RestaurantID    int64
	OrderDate       time.Time
	Status          string
	DeliveryAddress string
	Lines           []OrderLineInput
}

type OrderService interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	CreateOrder(ctx context.Context, in OrderInput) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id int64, in OrderInput) error
	DeleteOrder(ctx context.Context, id int64) error
	OrderStats(ctx context.Context) (domain.OrderStats, error)
}
