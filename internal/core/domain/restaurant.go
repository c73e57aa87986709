package domain

// Restaurant is a venue offering dishes for delivery.
type Restaurant struct {
	ID       int64   `bson:"_id"`
	Name     string  `bson:"name"`
	Address  string  `bson:"address"`
	Phone    string  `bson:"phone"`
	Rating   float64 `bson:"rating"`
	Category string  `bson:"category"`
	Dishes   []Dish  `bson:"-"`
}

// Dish is a menu item that belongs to exactly one restaurant.
type Dish struct {
	ID           int64   `bson:"_id"`
	Name         string  `bson:"name"`
	Description  string  `bson:"description"`
	Price        float64 `bson:"price"`
	Category     string  `bson:"category"`
	RestaurantID int64   `bson:"restaurant_id"`
}
