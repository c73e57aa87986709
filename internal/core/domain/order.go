package domain

import "time"

const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
)

// Order is a delivery request placed by a user at a restaurant.
type Order struct {
	ID              int64       `bson:"_id"`
	UserID          int64       `bson:"user_id"`
	RestaurantID    int64       `bson:"restaurant_id"`
	OrderDate       time.Time   `bson:"order_date"`
	DeliveryAddress string      `bson:"delivery_address"`
	Status          string      `bson:"status"`
	Lines           []OrderLine `bson:"-"`
}

// OrderLine is one dish on an order. (OrderID, DishID) is unique.
type OrderLine struct {
	OrderID  int64 `bson:"order_id"`
	DishID   int64 `bson:"dish_id"`
	Quantity int   `bson:"quantity"`
}

// OrderStats summarises orders by status.
type OrderStats struct {
	Total     int64
	Completed int64
	Pending   int64
}
