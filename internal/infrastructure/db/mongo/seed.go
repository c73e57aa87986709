package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

// PasswordHasher derives the stored digest for a seeded password.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

type seedUser struct {
	doc      mongoUser
	password string
}

var (
	seedRoles = []domain.RoleRecord{
		{ID: 1, Name: string(domain.RoleAdmin)},
		{ID: 2, Name: string(domain.RoleUser)},
	}

	seedRestaurants = []domain.Restaurant{
		{ID: 1, Name: "Pizza Place", Address: "123 Main St", Phone: "1234567890", Rating: 8.5, Category: "Italian"},
		{ID: 2, Name: "Sushi World", Address: "456 Ocean Ave", Phone: "0987654321", Rating: 9.0, Category: "Japanese"},
		{ID: 3, Name: "Burger House", Address: "789 Burger Blvd", Phone: "1122334455", Rating: 7.8, Category: "American"},
		{ID: 4, Name: "Taco Town", Address: "987 Taco St", Phone: "4455667788", Rating: 8.2, Category: "Mexican"},
		{ID: 5, Name: "Pasta Paradise", Address: "321 Pasta Rd", Phone: "5566778899", Rating: 9.1, Category: "Italian"},
		{ID: 6, Name: "BBQ Barn", Address: "654 BBQ Ln", Phone: "6677889900", Rating: 8.4, Category: "Barbecue"},
		{ID: 7, Name: "Salad Spot", Address: "111 Veggie Way", Phone: "7788990011", Rating: 8.7, Category: "Healthy"},
	}

	seedUsers = []seedUser{
		{mongoUser{ID: 1, FirstName: "Admin", LastName: "User", Username: "admin", Address: "Admin Lane", Phone: "1111111111", Email: "admin@example.com", RoleID: 1}, "admin123"},
		{mongoUser{ID: 2, FirstName: "John", LastName: "Doe", Username: "johndoe", Address: "User Lane", Phone: "2222222222", Email: "john@example.com", RoleID: 2}, "password1"},
		{mongoUser{ID: 3, FirstName: "Jane", LastName: "Smith", Username: "janesmith", Address: "User St", Phone: "3333333333", Email: "jane@example.com", RoleID: 2}, "password2"},
		{mongoUser{ID: 4, FirstName: "Emily", LastName: "Clark", Username: "emilyc", Address: "Clark Rd", Phone: "4444444444", Email: "emily@example.com", RoleID: 2}, "password3"},
		{mongoUser{ID: 5, FirstName: "Michael", LastName: "Brown", Username: "michaelb", Address: "Brown St", Phone: "5555555555", Email: "michael@example.com", RoleID: 2}, "password4"},
		{mongoUser{ID: 6, FirstName: "Sarah", LastName: "Taylor", Username: "saraht", Address: "Taylor Ave", Phone: "6666666666", Email: "sarah@example.com", RoleID: 2}, "password5"},
		{mongoUser{ID: 7, FirstName: "David", LastName: "Wilson", Username: "davidw", Address: "Wilson Dr", Phone: "7777777777", Email: "david@example.com", RoleID: 2}, "password6"},
	}

	seedDishes = []domain.Dish{
		{ID: 1, Name: "Margherita Pizza", Description: "Classic margherita with mozzarella and tomato", Price: 10.99, Category: "Pizza", RestaurantID: 1},
		{ID: 2, Name: "Pepperoni Pizza", Description: "Spicy pepperoni with cheese", Price: 12.99, Category: "Pizza", RestaurantID: 1},
		{ID: 3, Name: "Sushi Roll", Description: "Fresh salmon and avocado roll", Price: 15.99, Category: "Sushi", RestaurantID: 2},
		{ID: 4, Name: "Dragon Roll", Description: "Spicy tuna with crispy topping", Price: 18.99, Category: "Sushi", RestaurantID: 2},
		{ID: 5, Name: "Cheeseburger", Description: "Classic beef cheeseburger", Price: 8.99, Category: "Burger", RestaurantID: 3},
		{ID: 6, Name: "BBQ Burger", Description: "Beef burger with BBQ sauce", Price: 9.99, Category: "Burger", RestaurantID: 3},
		{ID: 7, Name: "Taco", Description: "Soft taco with beef and veggies", Price: 6.99, Category: "Mexican", RestaurantID: 4},
		{ID: 8, Name: "Quesadilla", Description: "Cheese quesadilla with salsa", Price: 7.99, Category: "Mexican", RestaurantID: 4},
		{ID: 9, Name: "Pasta Alfredo", Description: "Creamy Alfredo sauce with fettuccine", Price: 12.99, Category: "Pasta", RestaurantID: 5},
		{ID: 10, Name: "Pasta Carbonara", Description: "Pasta with bacon and creamy sauce", Price: 13.99, Category: "Pasta", RestaurantID: 5},
	}

	// daysAgo is relative to the seeding time.
	seedOrders = []struct {
		order   domain.Order
		daysAgo int
	}{
		{domain.Order{ID: 1, UserID: 2, RestaurantID: 1, DeliveryAddress: "User Lane 123", Status: domain.OrderStatusCompleted}, 1},
		{domain.Order{ID: 2, UserID: 3, RestaurantID: 2, DeliveryAddress: "User St 456", Status: domain.OrderStatusPending}, 2},
		{domain.Order{ID: 3, UserID: 4, RestaurantID: 3, DeliveryAddress: "Clark Rd 789", Status: domain.OrderStatusPending}, 3},
		{domain.Order{ID: 4, UserID: 5, RestaurantID: 4, DeliveryAddress: "Brown St 101", Status: domain.OrderStatusCompleted}, 4},
		{domain.Order{ID: 5, UserID: 6, RestaurantID: 5, DeliveryAddress: "Taylor Ave 202", Status: domain.OrderStatusPending}, 5},
	}

	seedOrderLines = []domain.OrderLine{
		{OrderID: 1, DishID: 1, Quantity: 2},
		{OrderID: 1, DishID: 2, Quantity: 3},
		{OrderID: 2, DishID: 3, Quantity: 2},
		{OrderID: 2, DishID: 4, Quantity: 1},
		{OrderID: 3, DishID: 5, Quantity: 2},
		{OrderID: 3, DishID: 6, Quantity: 2},
		{OrderID: 4, DishID: 7, Quantity: 3},
		{OrderID: 4, DishID: 8, Quantity: 1},
		{OrderID: 5, DishID: 9, Quantity: 2},
		{OrderID: 5, DishID: 10, Quantity: 3},
	}
)

// Seed loads the reference and demo data when the roles collection is empty.
// It reports whether anything was written.
func Seed(ctx context.Context, db *mongo.Database, hasher PasswordHasher, now time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := db.Collection(collectionRoles).CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("seed: count roles: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	users := make([]any, len(seedUsers))
	for i, su := range seedUsers {
		hash, err := hasher.Hash(su.password)
		if err != nil {
			return false, fmt.Errorf("seed: hash password for %s: %w", su.doc.Username, err)
		}
		doc := su.doc
		doc.PasswordHash = hash
		users[i] = doc
	}

	orders := make([]any, len(seedOrders))
	for i, so := range seedOrders {
		o := so.order
		o.OrderDate = now.AddDate(0, 0, -so.daysAgo).UTC()
		orders[i] = o
	}

	batches := []struct {
		coll string
		docs []any
	}{
		{collectionRoles, toDocs(seedRoles)},
		{collectionRestaurants, toDocs(seedRestaurants)},
		{collectionUsers, users},
		{collectionDishes, toDocs(seedDishes)},
		{collectionOrders, orders},
		{collectionOrderDishes, toDocs(seedOrderLines)},
	}
	for _, b := range batches {
		if _, err := db.Collection(b.coll).InsertMany(ctx, b.docs); err != nil {
			return false, fmt.Errorf("seed %s: %w", b.coll, err)
		}
	}

	counters := map[string]int64{
		collectionRestaurants: int64(len(seedRestaurants)),
		collectionUsers:       int64(len(seedUsers)),
		collectionDishes:      int64(len(seedDishes)),
		collectionOrders:      int64(len(seedOrders)),
	}
	for name, seq := range counters {
		if err := advanceCounter(ctx, db, name, seq); err != nil {
			return false, fmt.Errorf("seed: %w", err)
		}
	}
	return true, nil
}

func toDocs[T any](items []T) []any {
	docs := make([]any, len(items))
	for i, it := range items {
		docs[i] = it
	}
	return docs
}
