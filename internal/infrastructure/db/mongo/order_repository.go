package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

type OrderRepository struct {
	db    *mongo.Database
	col   *mongo.Collection
	lines *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		db:    db,
		col:   db.Collection(collectionOrders),
		lines: db.Collection(collectionOrderDishes),
	}
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	orders, err := findOrders(ctx, r.col, bson.M{})
	if err != nil {
		return nil, err
	}
	lines, err := r.findLines(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	byOrder := make(map[int64][]domain.OrderLine, len(orders))
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}
	for i := range orders {
		orders[i].Lines = byOrder[orders[i].ID]
		if orders[i].Lines == nil {
			orders[i].Lines = []domain.OrderLine{}
		}
	}
	return orders, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Order
	if err := r.col.FindOne(ctx, byID(id)).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	lines, err := r.findLines(ctx, bson.M{"order_id": id})
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionOrders)
	if err != nil {
		return err
	}
	o.ID = id
	if _, err := r.col.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertLines(ctx, o)
}

// Update rewrites the order fields and replaces the full set of lines.
func (r *OrderRepository) Update(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, byID(o.ID), bson.M{"$set": bson.M{
		"user_id":          o.UserID,
		"restaurant_id":    o.RestaurantID,
		"order_date":       o.OrderDate,
		"delivery_address": o.DeliveryAddress,
		"status":           o.Status,
	}})
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}

	if _, err := r.lines.DeleteMany(ctx, bson.M{"order_id": o.ID}); err != nil {
		return fmt.Errorf("clear order lines: %w", err)
	}
	return r.insertLines(ctx, o)
}

// Delete removes the order's lines, then the order.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := exists(ctx, r.col, byID(id))
	if err != nil {
		return fmt.Errorf("order exists: %w", err)
	}
	if !ok {
		return domain.ErrOrderNotFound
	}

	if _, err := r.lines.DeleteMany(ctx, bson.M{"order_id": id}); err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}
	res, err := r.col.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) Stats(ctx context.Context) (domain.OrderStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var stats domain.OrderStats
	var err error
	if stats.Total, err = r.col.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, fmt.Errorf("count orders: %w", err)
	}
	if stats.Completed, err = r.col.CountDocuments(ctx, bson.M{"status": domain.OrderStatusCompleted}); err != nil {
		return stats, fmt.Errorf("count completed orders: %w", err)
	}
	if stats.Pending, err = r.col.CountDocuments(ctx, bson.M{"status": domain.OrderStatusPending}); err != nil {
		return stats, fmt.Errorf("count pending orders: %w", err)
	}
	return stats, nil
}

func (r *OrderRepository) insertLines(ctx context.Context, o *domain.Order) error {
	if len(o.Lines) == 0 {
		return nil
	}
	docs := make([]any, len(o.Lines))
	for i := range o.Lines {
		o.Lines[i].OrderID = o.ID
		docs[i] = o.Lines[i]
	}
	if _, err := r.lines.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert order lines: %w", err)
	}
	return nil
}

func (r *OrderRepository) findLines(ctx context.Context, filter bson.M) ([]domain.OrderLine, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order_id", Value: 1}, {Key: "dish_id", Value: 1}})
	cur, err := r.lines.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	lines := []domain.OrderLine{}
	if err := cur.All(ctx, &lines); err != nil {
		return nil, fmt.Errorf("decode order lines: %w", err)
	}
	return lines, nil
}

func findOrders(ctx context.Context, col *mongo.Collection, filter bson.M) ([]domain.Order, error) {
	cur, err := col.Find(ctx, filter, sortByID())
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := []domain.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}
