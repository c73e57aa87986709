package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fooddelivery/restaurant-api/internal/api/metrics"
	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

const (
	restaurantListKey    = "restaurants:list"
	defaultRestaurantTTL = 10 * time.Minute
)

// RestaurantCache keeps the full restaurant listing in a single key.
// Every hit pushes the expiry out again (sliding expiration via GETEX).
type RestaurantCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRestaurantCache creates a RestaurantCache wrapping the given Redis client.
// If ttl <= 0, defaultRestaurantTTL is used.
func NewRestaurantCache(client *redis.Client, ttl time.Duration) *RestaurantCache {
	if ttl <= 0 {
		ttl = defaultRestaurantTTL
	}
	return &RestaurantCache{client: client, ttl: ttl}
}

func (c *RestaurantCache) Get(ctx context.Context) ([]domain.Restaurant, bool, error) {
	raw, err := c.client.GetEx(ctx, restaurantListKey, c.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RestaurantCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.RestaurantCacheTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("restaurant cache get: %w", err)
	}

	restaurants, err := decodeRestaurants(raw)
	if err != nil {
		metrics.RestaurantCacheTotal.WithLabelValues("error").Inc()
		return nil, false, err
	}
	metrics.RestaurantCacheTotal.WithLabelValues("hit").Inc()
	return restaurants, true, nil
}

func (c *RestaurantCache) Set(ctx context.Context, restaurants []domain.Restaurant) error {
	raw, err := encodeRestaurants(restaurants)
	if err != nil {
		return fmt.Errorf("restaurant cache encode: %w", err)
	}
	if err := c.client.Set(ctx, restaurantListKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("restaurant cache set: %w", err)
	}
	return nil
}

func (c *RestaurantCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, restaurantListKey).Err(); err != nil {
		return fmt.Errorf("restaurant cache invalidate: %w", err)
	}
	return nil
}

// cachedRestaurant is the JSON payload stored under restaurantListKey.
type cachedRestaurant struct {
	ID       int64        `json:"restaurant_id"`
	Name     string       `json:"name"`
	Address  string       `json:"address"`
	Phone    string       `json:"phone"`
	Rating   float64      `json:"rating"`
	Category string       `json:"category"`
	Dishes   []cachedDish `json:"dishes"`
}

type cachedDish struct {
	ID           int64   `json:"dish_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	RestaurantID int64   `json:"restaurant_id"`
}

func encodeRestaurants(restaurants []domain.Restaurant) ([]byte, error) {
	payload := make([]cachedRestaurant, len(restaurants))
	for i, r := range restaurants {
		dishes := make([]cachedDish, len(r.Dishes))
		for j, d := range r.Dishes {
			dishes[j] = cachedDish(d)
		}
		payload[i] = cachedRestaurant{
			ID:       r.ID,
			Name:     r.Name,
			Address:  r.Address,
			Phone:    r.Phone,
			Rating:   r.Rating,
			Category: r.Category,
			Dishes:   dishes,
		}
	}
	return json.Marshal(payload)
}

func decodeRestaurants(raw []byte) ([]domain.Restaurant, error) {
	var payload []cachedRestaurant
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("restaurant cache decode: %w", err)
	}
	restaurants := make([]domain.Restaurant, len(payload))
	for i, r := range payload {
		dishes := make([]domain.Dish, len(r.Dishes))
		for j, d := range r.Dishes {
			dishes[j] = domain.Dish(d)
		}
		restaurants[i] = domain.Restaurant{
			ID:       r.ID,
			Name:     r.Name,
			Address:  r.Address,
			Phone:    r.Phone,
			Rating:   r.Rating,
			Category: r.Category,
			Dishes:   dishes,
		}
	}
	return restaurants, nil
}
